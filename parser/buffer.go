package parser

import "fmt"

// CharBuffer accumulates runes for token text. Truncating it with SetLen
// keeps the backing storage so the tokenizer can reuse one buffer for every
// token it builds.
type CharBuffer struct {
	buf []rune
}

// NewCharBuffer creates a buffer with room for capacity runes.
func NewCharBuffer(capacity int) *CharBuffer {
	if capacity < 1 {
		capacity = 1
	}
	return &CharBuffer{buf: make([]rune, 0, capacity)}
}

func (b *CharBuffer) grow(n int) {
	if n <= cap(b.buf) {
		return
	}
	size := cap(b.buf)
	if size == 0 {
		size = 16
	}
	for size < n {
		size <<= 1
	}
	buf := make([]rune, len(b.buf), size)
	copy(buf, b.buf)
	b.buf = buf
}

// Append appends a rune to the buffer.
func (b *CharBuffer) Append(r rune) {
	b.grow(len(b.buf) + 1)
	b.buf = append(b.buf, r)
}

// AppendString appends every rune of s to the buffer.
func (b *CharBuffer) AppendString(s string) {
	b.grow(len(b.buf) + len(s))
	for _, r := range s {
		b.buf = append(b.buf, r)
	}
}

// Len returns the number of runes in the buffer.
func (b *CharBuffer) Len() int {
	return len(b.buf)
}

// Cap returns the capacity of the backing storage.
func (b *CharBuffer) Cap() int {
	return cap(b.buf)
}

// SetLen changes the length of the buffer without reallocating. It panics if
// n is negative or larger than the capacity; grow the buffer first.
func (b *CharBuffer) SetLen(n int) {
	if n < 0 || n > cap(b.buf) {
		panic(fmt.Sprintf("parser: CharBuffer length %d out of range [0:%d]", n, cap(b.buf)))
	}
	b.buf = b.buf[:n]
}

// Reset truncates the buffer to zero length.
func (b *CharBuffer) Reset() {
	b.buf = b.buf[:0]
}

// At returns the rune at index i.
func (b *CharBuffer) At(i int) rune {
	return b.buf[i]
}

// Set replaces the rune at index i.
func (b *CharBuffer) Set(i int, r rune) {
	b.buf[i] = r
}

// Slice returns the runes in [i:j] as a string.
func (b *CharBuffer) Slice(i, j int) string {
	return string(b.buf[i:j])
}

func (b *CharBuffer) String() string {
	return string(b.buf)
}
