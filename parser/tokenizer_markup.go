package parser

import "strings"

// matchAhead consumes runes after first for as long as they spell word.
// first must already match word[0]. It returns the text consumed, first
// included, and whether all of word was read. The rune that failed to match
// is left in the input.
func (p *Tokenizer) matchAhead(first rune, word string, fold bool) (string, bool) {
	var sb strings.Builder
	sb.WriteRune(first)
	for i := 1; i < len(word); i++ {
		c, ok := p.in.peek()
		if !ok {
			return sb.String(), false
		}
		want := rune(word[i])
		if fold {
			c, want = asciiLowerRune(c), asciiLowerRune(want)
		}
		if c != want {
			return sb.String(), false
		}
		c, _ = p.in.read()
		sb.WriteRune(c)
	}
	return sb.String(), true
}

func asciiLowerRune(r rune) rune {
	if 'A' <= r && r <= 'Z' {
		return r + 'a' - 'A'
	}
	return r
}

func (p *Tokenizer) emitComment(bogus bool) TokenizerState {
	p.emit(p.Factory.NewComment(p.name.String(), bogus, bogus && p.bang))
	p.bang = false
	p.data.Reset()
	p.name.Reset()
	return DataState
}

func (p *Tokenizer) markupDeclarationOpenStateParser(r rune, eof bool) (bool, TokenizerState) {
	if eof {
		p.bang = true
		p.name.Reset()
		return true, BogusCommentState
	}
	switch r {
	case '-':
		if c, ok := p.in.peek(); ok && c == '-' {
			p.in.read()
			p.data.Reset()
			p.name.Reset()
			return false, CommentStartState
		}
	case 'd', 'D':
		lit, ok := p.matchAhead(r, "doctype", true)
		if ok {
			p.data.Reset()
			p.name.Reset()
			p.value.Reset()
			p.doctype = p.Factory.NewDocType()
			return false, DocTypeState
		}
		return p.bogusBangComment(lit)
	case '[':
		lit, ok := p.matchAhead(r, "[CDATA[", false)
		if ok {
			p.data.Reset()
			p.cdataIndex = 0
			return false, CDataSectionState
		}
		return p.bogusBangComment(lit)
	}
	p.nonConforming(r, "'<!' not followed by a comment, DOCTYPE or CDATA section")
	p.bang = true
	p.name.Reset()
	return true, BogusCommentState
}

// bogusBangComment starts a <!...> bogus comment with the text already read
// while looking for a keyword.
func (p *Tokenizer) bogusBangComment(consumed string) (bool, TokenizerState) {
	p.nonConforming(rune(consumed[0]), "'<!' not followed by a comment, DOCTYPE or CDATA section")
	p.bang = true
	p.name.Reset()
	p.name.AppendString(consumed)
	return false, BogusCommentState
}

func (p *Tokenizer) bogusCommentStateParser(r rune, eof bool) (bool, TokenizerState) {
	if eof {
		p.emitComment(true)
		return false, EndOfFileState
	}
	switch r {
	case '>':
		return false, p.emitComment(true)
	case '\u0000':
		p.name.Append('�')
	default:
		p.name.Append(r)
	}
	return false, BogusCommentState
}

func (p *Tokenizer) commentStartStateParser(r rune, eof bool) (bool, TokenizerState) {
	if eof {
		p.emitComment(false)
		return false, EndOfFileState
	}
	switch r {
	case '-':
		return false, CommentStartDashState
	case '>':
		p.nonConforming(r, "abrupt end of empty comment")
		return false, p.emitComment(false)
	default:
		return true, CommentState
	}
}

func (p *Tokenizer) commentStartDashStateParser(r rune, eof bool) (bool, TokenizerState) {
	if eof {
		p.emitComment(false)
		return false, EndOfFileState
	}
	switch r {
	case '-':
		return false, CommentEndState
	case '>':
		p.nonConforming(r, "abrupt end of empty comment")
		return false, p.emitComment(false)
	default:
		p.name.Append('-')
		return true, CommentState
	}
}

func (p *Tokenizer) commentStateParser(r rune, eof bool) (bool, TokenizerState) {
	if eof {
		p.emitComment(false)
		return false, EndOfFileState
	}
	switch r {
	case '-':
		return false, CommentEndDashState
	case '\u0000':
		p.name.Append('�')
	default:
		p.name.Append(r)
	}
	return false, CommentState
}

func (p *Tokenizer) commentEndDashStateParser(r rune, eof bool) (bool, TokenizerState) {
	if eof {
		p.emitComment(false)
		return false, EndOfFileState
	}
	if r == '-' {
		return false, CommentEndState
	}
	p.name.Append('-')
	return true, CommentState
}

func (p *Tokenizer) commentEndStateParser(r rune, eof bool) (bool, TokenizerState) {
	if eof {
		p.emitComment(false)
		return false, EndOfFileState
	}
	switch r {
	case '>':
		return false, p.emitComment(false)
	case '!':
		return false, CommentEndBangState
	case '-':
		p.name.Append('-')
		return false, CommentEndState
	default:
		p.name.AppendString("--")
		return true, CommentState
	}
}

func (p *Tokenizer) commentEndBangStateParser(r rune, eof bool) (bool, TokenizerState) {
	if eof {
		p.emitComment(false)
		return false, EndOfFileState
	}
	switch r {
	case '-':
		p.name.AppendString("--!")
		return false, CommentEndDashState
	case '>':
		p.nonConforming(r, "comment closed by '--!>'")
		return false, p.emitComment(false)
	default:
		p.name.AppendString("--!")
		return true, CommentState
	}
}

func (p *Tokenizer) emitDocType() TokenizerState {
	p.emit(p.doctype)
	p.doctype = nil
	p.data.Reset()
	p.name.Reset()
	p.value.Reset()
	p.quote = 0
	return DataState
}

// docTypeEOF emits a DOCTYPE cut off by the end of the input.
func (p *Tokenizer) docTypeEOF() (bool, TokenizerState) {
	p.doctype.ForceQuirks = true
	p.emitDocType()
	return false, EndOfFileState
}

// bogusDocType marks the DOCTYPE as malformed and skips the rest of it.
func (p *Tokenizer) bogusDocType(r rune) (bool, TokenizerState) {
	p.nonConforming(r, "malformed DOCTYPE")
	p.doctype.ForceQuirks = true
	return true, BogusDocTypeState
}

func (p *Tokenizer) docTypeStateParser(r rune, eof bool) (bool, TokenizerState) {
	if eof {
		return p.docTypeEOF()
	}
	switch r {
	case '\t', '\n', '\f', '\r', ' ':
		return false, BeforeDocTypeNameState
	case '>':
		return true, BeforeDocTypeNameState
	default:
		p.nonConforming(r, "missing whitespace before DOCTYPE name")
		return true, BeforeDocTypeNameState
	}
}

func (p *Tokenizer) beforeDocTypeNameStateParser(r rune, eof bool) (bool, TokenizerState) {
	if eof {
		return p.docTypeEOF()
	}
	switch r {
	case '\t', '\n', '\f', '\r', ' ':
		return false, BeforeDocTypeNameState
	case '>':
		p.nonConforming(r, "missing DOCTYPE name")
		p.doctype.ForceQuirks = true
		return false, p.emitDocType()
	case '\u0000':
		p.name.Append('�')
		return false, DocTypeNameState
	default:
		p.name.Append(r)
		return false, DocTypeNameState
	}
}

func (p *Tokenizer) docTypeNameStateParser(r rune, eof bool) (bool, TokenizerState) {
	if eof {
		p.doctype.Name = p.name.String()
		return p.docTypeEOF()
	}
	switch r {
	case '\t', '\n', '\f', '\r', ' ':
		p.doctype.Name = p.name.String()
		p.name.Reset()
		return false, AfterDocTypeNameState
	case '>':
		p.doctype.Name = p.name.String()
		return false, p.emitDocType()
	case '\u0000':
		p.name.Append('�')
		return false, DocTypeNameState
	default:
		p.name.Append(r)
		return false, DocTypeNameState
	}
}

func (p *Tokenizer) afterDocTypeNameStateParser(r rune, eof bool) (bool, TokenizerState) {
	if eof {
		return p.docTypeEOF()
	}
	switch r {
	case '\t', '\n', '\f', '\r', ' ':
		return false, AfterDocTypeNameState
	case '>':
		return false, p.emitDocType()
	case 'p', 'P':
		if kw, ok := p.matchAhead(r, "public", true); ok {
			p.doctype.PublicKeyword = kw
			return false, AfterDocTypePublicKeywordState
		}
	case 's', 'S':
		if kw, ok := p.matchAhead(r, "system", true); ok {
			p.doctype.SystemKeyword = kw
			return false, AfterDocTypeSystemKeywordState
		}
	default:
		return p.bogusDocType(r)
	}
	// a partial keyword is consumed; the rune that broke it is still unread.
	p.nonConforming(r, "invalid keyword after DOCTYPE name")
	p.doctype.ForceQuirks = true
	return false, BogusDocTypeState
}

func (p *Tokenizer) beginDocTypeIdentifier(quote rune) {
	p.quote = quote
	p.value.Reset()
}

func (p *Tokenizer) takeDocTypeIdentifier() *string {
	v := p.value.String()
	p.value.Reset()
	p.quote = 0
	return &v
}

func (p *Tokenizer) afterDocTypePublicKeywordStateParser(r rune, eof bool) (bool, TokenizerState) {
	if eof {
		return p.docTypeEOF()
	}
	switch r {
	case '\t', '\n', '\f', '\r', ' ':
		return false, BeforeDocTypePublicIdentifierState
	case '"', '\'':
		p.nonConforming(r, "missing whitespace after PUBLIC keyword")
		p.beginDocTypeIdentifier(r)
		return false, DocTypePublicIdentifierQuotedState
	case '>':
		p.nonConforming(r, "missing public identifier")
		p.doctype.ForceQuirks = true
		return false, p.emitDocType()
	default:
		return p.bogusDocType(r)
	}
}

func (p *Tokenizer) beforeDocTypePublicIdentifierStateParser(r rune, eof bool) (bool, TokenizerState) {
	if eof {
		return p.docTypeEOF()
	}
	switch r {
	case '\t', '\n', '\f', '\r', ' ':
		return false, BeforeDocTypePublicIdentifierState
	case '"', '\'':
		p.beginDocTypeIdentifier(r)
		return false, DocTypePublicIdentifierQuotedState
	case '>':
		p.nonConforming(r, "missing public identifier")
		p.doctype.ForceQuirks = true
		return false, p.emitDocType()
	default:
		return p.bogusDocType(r)
	}
}

func (p *Tokenizer) docTypePublicIdentifierQuotedStateParser(r rune, eof bool) (bool, TokenizerState) {
	if eof {
		p.doctype.PublicIdentifier = p.takeDocTypeIdentifier()
		return p.docTypeEOF()
	}
	switch r {
	case p.quote:
		p.doctype.PublicIdentifier = p.takeDocTypeIdentifier()
		return false, AfterDocTypePublicIdentifierState
	case '\u0000':
		p.value.Append('�')
	case '>':
		p.nonConforming(r, "abrupt end of public identifier")
		p.doctype.PublicIdentifier = p.takeDocTypeIdentifier()
		p.doctype.ForceQuirks = true
		return false, p.emitDocType()
	default:
		p.value.Append(r)
	}
	return false, DocTypePublicIdentifierQuotedState
}

func (p *Tokenizer) afterDocTypePublicIdentifierStateParser(r rune, eof bool) (bool, TokenizerState) {
	if eof {
		return p.docTypeEOF()
	}
	switch r {
	case '\t', '\n', '\f', '\r', ' ':
		return false, BetweenDocTypePublicAndSystemIdentifiersState
	case '>':
		return false, p.emitDocType()
	case '"', '\'':
		p.nonConforming(r, "missing whitespace between DOCTYPE identifiers")
		p.beginDocTypeIdentifier(r)
		return false, DocTypeSystemIdentifierQuotedState
	default:
		return p.bogusDocType(r)
	}
}

func (p *Tokenizer) betweenDocTypePublicAndSystemIdentifiersStateParser(r rune, eof bool) (bool, TokenizerState) {
	if eof {
		return p.docTypeEOF()
	}
	switch r {
	case '\t', '\n', '\f', '\r', ' ':
		return false, BetweenDocTypePublicAndSystemIdentifiersState
	case '>':
		return false, p.emitDocType()
	case '"', '\'':
		p.beginDocTypeIdentifier(r)
		return false, DocTypeSystemIdentifierQuotedState
	default:
		return p.bogusDocType(r)
	}
}

func (p *Tokenizer) afterDocTypeSystemKeywordStateParser(r rune, eof bool) (bool, TokenizerState) {
	if eof {
		return p.docTypeEOF()
	}
	switch r {
	case '\t', '\n', '\f', '\r', ' ':
		return false, BeforeDocTypeSystemIdentifierState
	case '"', '\'':
		p.nonConforming(r, "missing whitespace after SYSTEM keyword")
		p.beginDocTypeIdentifier(r)
		return false, DocTypeSystemIdentifierQuotedState
	case '>':
		p.nonConforming(r, "missing system identifier")
		p.doctype.ForceQuirks = true
		return false, p.emitDocType()
	default:
		return p.bogusDocType(r)
	}
}

func (p *Tokenizer) beforeDocTypeSystemIdentifierStateParser(r rune, eof bool) (bool, TokenizerState) {
	if eof {
		return p.docTypeEOF()
	}
	switch r {
	case '\t', '\n', '\f', '\r', ' ':
		return false, BeforeDocTypeSystemIdentifierState
	case '"', '\'':
		p.beginDocTypeIdentifier(r)
		return false, DocTypeSystemIdentifierQuotedState
	case '>':
		p.nonConforming(r, "missing system identifier")
		p.doctype.ForceQuirks = true
		return false, p.emitDocType()
	default:
		return p.bogusDocType(r)
	}
}

func (p *Tokenizer) docTypeSystemIdentifierQuotedStateParser(r rune, eof bool) (bool, TokenizerState) {
	if eof {
		p.doctype.SystemIdentifier = p.takeDocTypeIdentifier()
		return p.docTypeEOF()
	}
	switch r {
	case p.quote:
		p.doctype.SystemIdentifier = p.takeDocTypeIdentifier()
		return false, AfterDocTypeSystemIdentifierState
	case '\u0000':
		p.value.Append('�')
	case '>':
		p.nonConforming(r, "abrupt end of system identifier")
		p.doctype.SystemIdentifier = p.takeDocTypeIdentifier()
		p.doctype.ForceQuirks = true
		return false, p.emitDocType()
	default:
		p.value.Append(r)
	}
	return false, DocTypeSystemIdentifierQuotedState
}

func (p *Tokenizer) afterDocTypeSystemIdentifierStateParser(r rune, eof bool) (bool, TokenizerState) {
	if eof {
		return p.docTypeEOF()
	}
	switch r {
	case '\t', '\n', '\f', '\r', ' ':
		return false, AfterDocTypeSystemIdentifierState
	case '>':
		return false, p.emitDocType()
	default:
		// trailing garbage does not make the DOCTYPE quirky.
		p.nonConforming(r, "unexpected character after system identifier")
		return true, BogusDocTypeState
	}
}

func (p *Tokenizer) bogusDocTypeStateParser(r rune, eof bool) (bool, TokenizerState) {
	if eof {
		return p.docTypeEOF()
	}
	if r == '>' {
		return false, p.emitDocType()
	}
	return false, BogusDocTypeState
}

// cdataSectionStateParser keeps the last three runes in a window so that
// "]]>" can be recognised; runes that leave the window are section text.
func (p *Tokenizer) cdataSectionStateParser(r rune, eof bool) (bool, TokenizerState) {
	if eof {
		for _, c := range p.cdata[:p.cdataIndex] {
			p.data.Append(c)
		}
		p.emitCData()
		return false, EndOfFileState
	}
	if p.cdataIndex == len(p.cdata) {
		p.data.Append(p.cdata[0])
		p.cdata[0], p.cdata[1] = p.cdata[1], p.cdata[2]
		p.cdataIndex--
	}
	p.cdata[p.cdataIndex] = r
	p.cdataIndex++
	if p.cdataIndex == len(p.cdata) && p.cdata == [3]rune{']', ']', '>'} {
		p.emitCData()
		return false, DataState
	}
	return false, CDataSectionState
}

func (p *Tokenizer) emitCData() {
	p.emit(p.Factory.NewCData(p.data.String()))
	p.data.Reset()
	p.cdataIndex = 0
}
