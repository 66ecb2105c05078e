package parser

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// input is the tokenizer's view of its character source. It tracks the
// line and column of the next rune to be read.
type input struct {
	rs     io.RuneScanner
	line   int
	col    int
	err    error
	peeked bool
	next   rune
}

func newInput(r io.Reader) *input {
	rs, ok := r.(io.RuneScanner)
	if !ok {
		rs = bufio.NewReader(r)
	}
	return &input{rs: rs, line: 1, col: 1}
}

func (in *input) fill() bool {
	if in.peeked {
		return true
	}
	if in.err != nil {
		return false
	}
	r, _, err := in.rs.ReadRune()
	if err != nil {
		if err != io.EOF {
			err = errors.Wrap(err, "reading input")
		}
		in.err = err
		return false
	}
	in.next, in.peeked = r, true
	return true
}

// peek returns the next rune without consuming it. ok is false at the end
// of the input or after a read error.
func (in *input) peek() (r rune, ok bool) {
	if !in.fill() {
		return 0, false
	}
	return in.next, true
}

// read consumes the next rune.
func (in *input) read() (r rune, ok bool) {
	if !in.fill() {
		return 0, false
	}
	in.peeked = false
	if in.next == '\n' {
		in.line++
		in.col = 1
	} else {
		in.col++
	}
	return in.next, true
}

// failure returns the read error that ended the input, or nil at a clean
// end of file.
func (in *input) failure() error {
	if in.err == io.EOF {
		return nil
	}
	return in.err
}
