// Package scratch provides a reusable byte buffer for text that is rebuilt
// every frame, such as overlay labels, without going through fmt.
package scratch

import (
	"strconv"
	"unicode/utf8"
	"unsafe"
)

// Buffer appends formatted values to a backing slice that is kept across
// Reset calls. The zero value is ready to use.
type Buffer struct {
	buf []byte
}

func New(capacity int) *Buffer { return &Buffer{buf: make([]byte, 0, capacity)} }

// Reset clears the buffer length without freeing memory.
func (b *Buffer) Reset() { b.buf = b.buf[:0] }

func (b *Buffer) Len() int { return len(b.buf) }
func (b *Buffer) Cap() int { return cap(b.buf) }

// Mark returns a bookmark to later slice the output.
func (b *Buffer) Mark() int { return len(b.buf) }

// StringFrom copies the bytes written since mark.
func (b *Buffer) StringFrom(mark int) string { return string(b.buf[mark:]) }

// ViewFrom is a zero-copy string over the bytes written since mark. It is
// valid only until the next append or Reset.
func (b *Buffer) ViewFrom(mark int) string {
	v := b.buf[mark:]
	if len(v) == 0 {
		return ""
	}
	return unsafe.String(&v[0], len(v))
}

// View is ViewFrom(0).
func (b *Buffer) View() string { return b.ViewFrom(0) }

func (b *Buffer) S(s string) *Buffer {
	b.buf = append(b.buf, s...)
	return b
}

func (b *Buffer) C(c byte) *Buffer {
	b.buf = append(b.buf, c)
	return b
}

func (b *Buffer) R(r rune) *Buffer {
	b.buf = utf8.AppendRune(b.buf, r)
	return b
}

// I appends a base-10 integer.
func (b *Buffer) I(v int64) *Buffer {
	b.buf = strconv.AppendInt(b.buf, v, 10)
	return b
}

// U appends an unsigned base-10 integer.
func (b *Buffer) U(v uint64) *Buffer {
	b.buf = strconv.AppendUint(b.buf, v, 10)
	return b
}

// F appends v with prec digits after the decimal point.
func (b *Buffer) F(v float64, prec int) *Buffer {
	b.buf = strconv.AppendFloat(b.buf, v, 'f', prec, 64)
	return b
}

// Pad appends spaces until the current line is at least n bytes long.
func (b *Buffer) Pad(n int) *Buffer {
	line := len(b.buf)
	for i := len(b.buf) - 1; i >= 0; i-- {
		if b.buf[i] == '\n' {
			line = len(b.buf) - i - 1
			break
		}
	}
	for ; line < n; line++ {
		b.buf = append(b.buf, ' ')
	}
	return b
}
