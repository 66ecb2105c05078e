// Package entity decodes HTML character references one rune at a time.
package entity

import (
	"strings"

	"golang.org/x/net/html"
)

const (
	// maxNameLength is long enough for the longest named reference,
	// "CounterClockwiseContourIntegral".
	maxNameLength   = 32
	maxDecimalDigit = 10
	maxHexDigits    = 8
)

// Decoder is an incremental character reference decoder. It is fed the '&'
// and the runes after it with Push, and reports when no further rune can
// belong to the reference. The zero value is ready to use.
type Decoder struct {
	raw        strings.Builder
	numeric    bool
	hex        bool
	digits     int
	nameLength int
	terminated bool
}

// Push offers the next rune. It returns true if the rune was accepted as
// part of the reference, false if the reference cannot extend any further.
// A rejected rune is not recorded.
func (d *Decoder) Push(c rune) bool {
	if d.terminated {
		return false
	}
	if d.raw.Len() == 0 {
		if c != '&' {
			return false
		}
		d.raw.WriteRune(c)
		return true
	}
	if d.numeric {
		return d.pushNumeric(c)
	}
	switch {
	case c == '#' && d.raw.Len() == 1:
		d.numeric = true
	case isAlphaNumeric(c):
		if d.nameLength == maxNameLength {
			return false
		}
		d.nameLength++
	case c == ';' && d.nameLength > 0:
		d.terminated = true
	default:
		return false
	}
	d.raw.WriteRune(c)
	return true
}

func (d *Decoder) pushNumeric(c rune) bool {
	switch {
	case (c == 'x' || c == 'X') && !d.hex && d.digits == 0:
		d.hex = true
	case isDigit(c, d.hex):
		if (d.hex && d.digits == maxHexDigits) || (!d.hex && d.digits == maxDecimalDigit) {
			return false
		}
		d.digits++
	case c == ';' && d.digits > 0:
		d.terminated = true
	default:
		return false
	}
	d.raw.WriteRune(c)
	return true
}

// RawInput returns every rune accepted so far, starting with the '&'.
func (d *Decoder) RawInput() string {
	return d.raw.String()
}

// Matched returns the prefix of RawInput that forms the longest reference
// that decodes, or "" if there is none.
func (d *Decoder) Matched() string {
	raw := d.raw.String()
	if d.numeric {
		if d.digits == 0 {
			return ""
		}
		return raw
	}
	for k := len(raw); k > 1; k-- {
		if isExactReference(raw[:k]) {
			return raw[:k]
		}
	}
	return ""
}

// Value returns the decoded longest match followed by the rest of the input
// unchanged. Without a match it returns RawInput.
func (d *Decoder) Value() string {
	raw := d.raw.String()
	m := d.Matched()
	if m == "" {
		return raw
	}
	return html.UnescapeString(m) + raw[len(m):]
}

// Reset clears the decoder for the next reference.
func (d *Decoder) Reset() {
	d.raw.Reset()
	d.numeric = false
	d.hex = false
	d.digits = 0
	d.nameLength = 0
	d.terminated = false
}

// isExactReference reports whether s, a '&' followed by a name and perhaps a
// ';', is a named reference on its own. UnescapeString falls back to
// decoding a prefix and copying the rest, which would leave the last rune of
// s at the end of the result; no named reference decodes to an ASCII letter
// or digit, and only "&semi;" decodes to ';'.
func isExactReference(s string) bool {
	u := html.UnescapeString(s)
	if u == s {
		return false
	}
	if s == "&semi;" {
		return true
	}
	return u[len(u)-1] != s[len(s)-1]
}

func isAlphaNumeric(c rune) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}

func isDigit(c rune, hex bool) bool {
	if '0' <= c && c <= '9' {
		return true
	}
	return hex && ('a' <= c && c <= 'f' || 'A' <= c && c <= 'F')
}
