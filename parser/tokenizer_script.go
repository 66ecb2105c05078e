package parser

// Script data is one token from the <script> start tag to the matching end
// tag. The escape states only decide whether a "</script" in the text ends
// the element.

func (p *Tokenizer) scriptDataStateParser(r rune, eof bool) (bool, TokenizerState) {
	if eof {
		return p.emitContentEOF()
	}
	switch r {
	case '<':
		p.tagStart = p.data.Len()
		p.data.Append(r)
		return false, ScriptDataLessThanSignState
	case '\u0000':
		p.data.Append('�')
		return false, ScriptDataState
	default:
		p.data.Append(r)
		return false, ScriptDataState
	}
}

func (p *Tokenizer) scriptDataLessThanSignStateParser(r rune, eof bool) (bool, TokenizerState) {
	if eof {
		return true, ScriptDataState
	}
	switch r {
	case '/':
		p.data.Append(r)
		p.name.Reset()
		return false, ScriptDataEndTagOpenState
	case '!':
		p.data.Append(r)
		return false, ScriptDataEscapeStartState
	default:
		return true, ScriptDataState
	}
}

func (p *Tokenizer) scriptDataEndTagOpenStateParser(r rune, eof bool) (bool, TokenizerState) {
	if !eof && isASCIIAlpha(r) {
		return true, ScriptDataEndTagNameState
	}
	return true, ScriptDataState
}

func (p *Tokenizer) scriptDataEndTagNameStateParser(r rune, eof bool) (bool, TokenizerState) {
	return p.endTagNameParser(r, eof, ScriptDataState, "script")
}

func (p *Tokenizer) scriptDataEscapeStartStateParser(r rune, eof bool) (bool, TokenizerState) {
	if !eof && r == '-' {
		p.data.Append(r)
		return false, ScriptDataEscapeStartDashState
	}
	return true, ScriptDataState
}

func (p *Tokenizer) scriptDataEscapeStartDashStateParser(r rune, eof bool) (bool, TokenizerState) {
	if !eof && r == '-' {
		p.data.Append(r)
		return false, ScriptDataEscapedDashDashState
	}
	return true, ScriptDataState
}

func (p *Tokenizer) scriptDataEscapedStateParser(r rune, eof bool) (bool, TokenizerState) {
	if eof {
		return p.emitContentEOF()
	}
	switch r {
	case '-':
		p.data.Append(r)
		return false, ScriptDataEscapedDashState
	case '<':
		p.tagStart = p.data.Len()
		p.data.Append(r)
		return false, ScriptDataEscapedLessThanSignState
	case '\u0000':
		p.data.Append('�')
		return false, ScriptDataEscapedState
	default:
		p.data.Append(r)
		return false, ScriptDataEscapedState
	}
}

func (p *Tokenizer) scriptDataEscapedDashStateParser(r rune, eof bool) (bool, TokenizerState) {
	if eof {
		return p.emitContentEOF()
	}
	switch r {
	case '-':
		p.data.Append(r)
		return false, ScriptDataEscapedDashDashState
	case '<':
		p.tagStart = p.data.Len()
		p.data.Append(r)
		return false, ScriptDataEscapedLessThanSignState
	case '\u0000':
		p.data.Append('�')
		return false, ScriptDataEscapedState
	default:
		p.data.Append(r)
		return false, ScriptDataEscapedState
	}
}

func (p *Tokenizer) scriptDataEscapedDashDashStateParser(r rune, eof bool) (bool, TokenizerState) {
	if eof {
		return p.emitContentEOF()
	}
	switch r {
	case '-':
		p.data.Append(r)
		return false, ScriptDataEscapedDashDashState
	case '<':
		p.tagStart = p.data.Len()
		p.data.Append(r)
		return false, ScriptDataEscapedLessThanSignState
	case '>':
		p.data.Append(r)
		return false, ScriptDataState
	case '\u0000':
		p.data.Append('�')
		return false, ScriptDataEscapedState
	default:
		p.data.Append(r)
		return false, ScriptDataEscapedState
	}
}

func (p *Tokenizer) scriptDataEscapedLessThanSignStateParser(r rune, eof bool) (bool, TokenizerState) {
	switch {
	case eof:
		return true, ScriptDataEscapedState
	case r == '/':
		p.data.Append(r)
		p.name.Reset()
		return false, ScriptDataEscapedEndTagOpenState
	case isASCIIAlpha(r):
		p.name.Reset()
		return true, ScriptDataDoubleEscapeStartState
	default:
		return true, ScriptDataEscapedState
	}
}

func (p *Tokenizer) scriptDataEscapedEndTagOpenStateParser(r rune, eof bool) (bool, TokenizerState) {
	if !eof && isASCIIAlpha(r) {
		return true, ScriptDataEscapedEndTagNameState
	}
	return true, ScriptDataEscapedState
}

func (p *Tokenizer) scriptDataEscapedEndTagNameStateParser(r rune, eof bool) (bool, TokenizerState) {
	return p.endTagNameParser(r, eof, ScriptDataEscapedState, "script")
}

// doubleEscapeParser reads the name after "<" or "</" in escaped script data
// and moves to matched when it is "script".
func (p *Tokenizer) doubleEscapeParser(r rune, eof bool, unmatched, matched TokenizerState) (bool, TokenizerState) {
	switch {
	case eof:
		return true, unmatched
	case isASCIIWhitespace(r) || r == '/' || r == '>':
		p.data.Append(r)
		next := unmatched
		if asciiEqualFold(p.name.String(), "script") {
			next = matched
		}
		p.name.Reset()
		return false, next
	case isASCIIAlpha(r):
		p.data.Append(r)
		p.name.Append(r)
		return false, p.currentState
	default:
		p.name.Reset()
		return true, unmatched
	}
}

func (p *Tokenizer) scriptDataDoubleEscapeStartStateParser(r rune, eof bool) (bool, TokenizerState) {
	return p.doubleEscapeParser(r, eof, ScriptDataEscapedState, ScriptDataDoubleEscapedState)
}

func (p *Tokenizer) scriptDataDoubleEscapedStateParser(r rune, eof bool) (bool, TokenizerState) {
	if eof {
		return p.emitContentEOF()
	}
	switch r {
	case '-':
		p.data.Append(r)
		return false, ScriptDataDoubleEscapedDashState
	case '<':
		p.data.Append(r)
		return false, ScriptDataDoubleEscapedLessThanSignState
	case '\u0000':
		p.data.Append('�')
		return false, ScriptDataDoubleEscapedState
	default:
		p.data.Append(r)
		return false, ScriptDataDoubleEscapedState
	}
}

func (p *Tokenizer) scriptDataDoubleEscapedDashStateParser(r rune, eof bool) (bool, TokenizerState) {
	if eof {
		return p.emitContentEOF()
	}
	switch r {
	case '-':
		p.data.Append(r)
		return false, ScriptDataDoubleEscapedDashDashState
	case '<':
		p.data.Append(r)
		return false, ScriptDataDoubleEscapedLessThanSignState
	case '\u0000':
		p.data.Append('�')
		return false, ScriptDataDoubleEscapedState
	default:
		p.data.Append(r)
		return false, ScriptDataDoubleEscapedState
	}
}

func (p *Tokenizer) scriptDataDoubleEscapedDashDashStateParser(r rune, eof bool) (bool, TokenizerState) {
	if eof {
		return p.emitContentEOF()
	}
	switch r {
	case '-':
		p.data.Append(r)
		return false, ScriptDataDoubleEscapedDashDashState
	case '<':
		p.data.Append(r)
		return false, ScriptDataDoubleEscapedLessThanSignState
	case '>':
		p.data.Append(r)
		return false, ScriptDataState
	case '\u0000':
		p.data.Append('�')
		return false, ScriptDataDoubleEscapedState
	default:
		p.data.Append(r)
		return false, ScriptDataDoubleEscapedState
	}
}

func (p *Tokenizer) scriptDataDoubleEscapedLessThanSignStateParser(r rune, eof bool) (bool, TokenizerState) {
	if !eof && r == '/' {
		p.data.Append(r)
		p.name.Reset()
		return false, ScriptDataDoubleEscapeEndState
	}
	return true, ScriptDataDoubleEscapedState
}

func (p *Tokenizer) scriptDataDoubleEscapeEndStateParser(r rune, eof bool) (bool, TokenizerState) {
	return p.doubleEscapeParser(r, eof, ScriptDataDoubleEscapedState, ScriptDataEscapedState)
}
