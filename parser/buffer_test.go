package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCharBuffer(t *testing.T) {
	b := NewCharBuffer(2)
	b.AppendString("héllo")
	b.Append('!')
	assert.Equal(t, "héllo!", b.String())
	assert.Equal(t, 6, b.Len())
	assert.GreaterOrEqual(t, b.Cap(), 6)
	assert.Equal(t, 'é', b.At(1))
	assert.Equal(t, "ll", b.Slice(2, 4))

	b.Set(0, 'H')
	assert.Equal(t, "Héllo!", b.String())

	c := b.Cap()
	b.SetLen(2)
	assert.Equal(t, "Hé", b.String())
	b.Reset()
	assert.Zero(t, b.Len())
	assert.Equal(t, c, b.Cap())
}

func TestCharBufferSetLenOutOfRange(t *testing.T) {
	b := NewCharBuffer(4)
	assert.Panics(t, func() { b.SetLen(-1) })
	assert.Panics(t, func() { b.SetLen(5) })
	assert.NotPanics(t, func() { b.SetLen(4) })
}

func TestNewCharBufferZeroCapacity(t *testing.T) {
	b := NewCharBuffer(0)
	b.AppendString("abc")
	assert.Equal(t, "abc", b.String())
}
