package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#ff0000")
	require.NoError(t, err)
	assert.Equal(t, Red, c)

	c, err = ParseHex("00ff0080")
	require.NoError(t, err)
	assert.Equal(t, float32(0), c[0])
	assert.Equal(t, float32(1), c[1])
	assert.InDelta(t, 0.5, c[3], 0.01)

	_, err = ParseHex("#fff")
	assert.Error(t, err)
	_, err = ParseHex("#gggggg")
	assert.Error(t, err)
}

func TestPackRGBA8(t *testing.T) {
	assert.Equal(t, [4]byte{255, 255, 255, 255}, White.PackRGBA8())
	assert.Equal(t, [4]byte{0, 0, 0, 255}, Black.PackRGBA8())
	// out of range channels clamp when packed
	assert.Equal(t, [4]byte{255, 0, 128, 255}, Color{2, -1, 0.5, 1}.PackRGBA8())
}

func TestWithAlpha(t *testing.T) {
	c := Red.WithAlpha(0.25)
	assert.Equal(t, float32(0.25), c[3])
	assert.Equal(t, float32(1), Red[3], "receiver must be untouched")
}

func TestUnmarshalYAML(t *testing.T) {
	var doc struct {
		A Color `yaml:"a"`
		B Color `yaml:"b"`
		C Color `yaml:"c"`
	}
	err := yaml.Unmarshal([]byte("a: '#0000ff'\nb: [0.1, 0.2, 0.3]\nc: [1, 1, 1, 0]\n"), &doc)
	require.NoError(t, err)
	assert.Equal(t, Blue, doc.A)
	assert.Equal(t, Color{0.1, 0.2, 0.3, 1}, doc.B)
	assert.Equal(t, Color{1, 1, 1, 0}, doc.C)

	err = yaml.Unmarshal([]byte("a: [1, 2]\n"), &doc)
	assert.Error(t, err)
}
