package scratch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuffer(t *testing.T) {
	b := New(64)
	b.S("Draw calls: ").U(3).C(' ').I(-2).C(' ').F(1.23456, 2).R('µ')
	assert.Equal(t, "Draw calls: 3 -2 1.23µ", b.View())

	m := b.Mark()
	b.S("\nquads")
	assert.Equal(t, "\nquads", b.StringFrom(m))

	b.Reset()
	assert.Zero(t, b.Len())
	assert.Equal(t, "", b.View())
	assert.Equal(t, 64, b.Cap())
}

func TestBufferPad(t *testing.T) {
	var b Buffer
	b.S("ab").Pad(5).C('|')
	assert.Equal(t, "ab   |", b.View())

	b.Reset()
	b.S("long line\nx").Pad(3).C('|').Pad(2)
	assert.Equal(t, "long line\nx  |", b.View())
}
