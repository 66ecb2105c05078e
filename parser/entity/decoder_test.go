package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// push feeds s to the decoder and returns the part that was rejected.
func push(d *Decoder, s string) string {
	for i, c := range s {
		if !d.Push(c) {
			return s[i:]
		}
	}
	return ""
}

func TestDecoder(t *testing.T) {
	tests := []struct {
		in      string
		raw     string
		matched string
		value   string
	}{
		{"&amp;", "&amp;", "&amp;", "&"},
		{"&amp", "&amp", "&amp", "&"},
		{"&lt;x", "&lt;", "&lt;", "<"},
		{"&notin;", "&notin;", "&notin;", "∉"},
		{"&notit;", "&notit;", "&not", "¬it;"},
		{"&copy=", "&copy", "&copy", "©"},
		{"&zzz;", "&zzz;", "", "&zzz;"},
		{"&;", "&", "", "&"},
		{"&#65;", "&#65;", "&#65;", "A"},
		{"&#65", "&#65", "&#65", "A"},
		{"&#x41;", "&#x41;", "&#x41;", "A"},
		{"&#X6a;", "&#X6a;", "&#X6a;", "j"},
		{"&#xg", "&#x", "", "&#x"},
		{"&#;", "&#", "", "&#"},
		{"&#0;", "&#0;", "&#0;", "�"},
		{"&#150;", "&#150;", "&#150;", "–"},
		{"&#1114112;", "&#1114112;", "&#1114112;", "�"},
		{"&semi;", "&semi;", "&semi;", ";"},
		{"&CounterClockwiseContourIntegral;", "&CounterClockwiseContourIntegral;", "&CounterClockwiseContourIntegral;", "∳"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			var d Decoder
			rest := push(&d, tt.in)
			assert.Equal(t, tt.in[len(tt.raw):], rest)
			assert.Equal(t, tt.raw, d.RawInput())
			assert.Equal(t, tt.matched, d.Matched())
			assert.Equal(t, tt.value, d.Value())
		})
	}
}

func TestDecoderTerminated(t *testing.T) {
	var d Decoder
	assert.Equal(t, "b", push(&d, "&a;b"))
	assert.False(t, d.Push(';'))
}

func TestDecoderFirstRune(t *testing.T) {
	var d Decoder
	assert.False(t, d.Push('a'))
	assert.Equal(t, "", d.RawInput())
}

func TestDecoderLimits(t *testing.T) {
	var d Decoder
	rest := push(&d, "&"+strings.Repeat("a", 40))
	assert.Len(t, rest, 40-maxNameLength)

	d.Reset()
	rest = push(&d, "&#"+strings.Repeat("1", 12))
	assert.Len(t, rest, 12-maxDecimalDigit)

	d.Reset()
	rest = push(&d, "&#x"+strings.Repeat("f", 10))
	assert.Len(t, rest, 10-maxHexDigits)
}

func TestDecoderReset(t *testing.T) {
	var d Decoder
	push(&d, "&#x41;")
	d.Reset()
	assert.Equal(t, "", d.RawInput())
	assert.Equal(t, "", push(&d, "&gt;"))
	assert.Equal(t, ">", d.Value())
}
