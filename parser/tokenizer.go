package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/heathj/htmltok/parser/entity"
)

// EntityDecoder decodes one character reference at a time. The tokenizer
// pushes the '&' and then every following rune until Push returns false;
// a rejected rune is left in the input for the next state.
type EntityDecoder interface {
	Push(c rune) bool
	Value() string
	RawInput() string
	Matched() string
	Reset()
}

// Tokenizer splits an HTML character stream into tokens. A Tokenizer owns
// all of its buffers and must not be used from more than one goroutine.
type Tokenizer struct {
	// DecodeCharacterReferences controls decoding of character references
	// in data and RCDATA. References in attribute values are always decoded.
	DecodeCharacterReferences bool
	// IgnoreTruncatedTags discards a tag cut off by the end of the input
	// instead of emitting its text as data.
	IgnoreTruncatedTags bool
	// Factory creates the emitted tokens.
	Factory TokenFactory
	// Logger receives state transitions at trace level and non-conforming
	// input at debug level.
	Logger *logrus.Logger

	in                        *input
	entity                    EntityDecoder
	currentState, returnState TokenizerState
	// content is the content model text is read in; it decides the kind of
	// the text tokens that get flushed.
	content TokenizerState

	data, name, value *CharBuffer
	// tagStart is the offset in data of the '<' that may open markup.
	tagStart int
	quote    rune
	hasValue bool
	isEndTag bool
	bang     bool

	tag           *TagToken
	doctype       *DocTypeToken
	activeTagName string

	cdata      [3]rune
	cdataIndex int

	namespace     Namespace
	emittedTokens []Token
	err           error
}

// NewTokenizer creates a Tokenizer reading from r. If r is not an
// io.RuneScanner it is buffered. NewTokenizer panics if r is nil.
func NewTokenizer(r io.Reader) *Tokenizer {
	if r == nil {
		panic("parser: NewTokenizer called with a nil reader")
	}
	return &Tokenizer{
		DecodeCharacterReferences: true,
		Factory:                   DefaultTokenFactory{},
		Logger:                    logrus.StandardLogger(),
		in:                        newInput(r),
		entity:                    &entity.Decoder{},
		currentState:              DataState,
		content:                   DataState,
		data:                      NewCharBuffer(2048),
		name:                      NewCharBuffer(32),
		value:                     NewCharBuffer(32),
	}
}

// SetEntityDecoder replaces the character reference decoder. A nil decoder
// restores the default one.
func (p *Tokenizer) SetEntityDecoder(d EntityDecoder) {
	if d == nil {
		d = &entity.Decoder{}
	}
	p.entity = d
}

// LineNumber returns the 1-based line of the next rune to be read.
func (p *Tokenizer) LineNumber() int { return p.in.line }

// LinePosition returns the 1-based column of the next rune to be read.
func (p *Tokenizer) LinePosition() int { return p.in.col }

// State returns the current tokenizer state.
func (p *Tokenizer) State() TokenizerState { return p.currentState }

// Namespace returns the namespace declared by the xmlns attribute of the
// last <html> start tag, HTMLNamespace by default.
func (p *Tokenizer) Namespace() Namespace { return p.namespace }

// Err returns the error that stopped the tokenizer, or nil if it stopped at
// the end of the input.
func (p *Tokenizer) Err() error { return p.err }

// ReadNextToken returns the next token. ok is false once the input is
// exhausted and every token has been returned, or after a read error.
func (p *Tokenizer) ReadNextToken() (tok Token, ok bool) {
	// some states emit more than one token at a time and others none.
	// loop until at least one token is queued.
	for {
		if tok := p.takeEmittedToken(); tok != nil {
			return tok, true
		}
		if p.currentState == EndOfFileState {
			return nil, false
		}

		r, ok := p.in.read()
		if !ok && p.err == nil {
			p.err = p.in.failure()
		}
		p.processRune(r, !ok)
	}
}

func (p *Tokenizer) takeEmittedToken() Token {
	if len(p.emittedTokens) == 0 {
		return nil
	}
	tok := p.emittedTokens[0]
	p.emittedTokens[0] = nil
	p.emittedTokens = p.emittedTokens[1:]
	return tok
}

func (p *Tokenizer) logger() *logrus.Logger {
	if p.Logger == nil {
		return logrus.StandardLogger()
	}
	return p.Logger
}

func (p *Tokenizer) processRune(r rune, eof bool) {
	log := p.logger()
	trace := log.IsLevelEnabled(logrus.TraceLevel)
	reconsume := true
	for reconsume {
		prev := p.currentState
		reconsume, p.currentState = p.stateToParser(p.currentState)(r, eof)
		if trace {
			log.WithFields(logrus.Fields{
				"rune": fmt.Sprintf("%q", r),
				"eof":  eof,
				"from": prev,
				"to":   p.currentState,
			}).Trace("tokenizer transition")
		}
	}
}

// nonConforming records input that the tokenizer accepts but that a
// validator would flag.
func (p *Tokenizer) nonConforming(r rune, msg string) {
	log := p.logger()
	if !log.IsLevelEnabled(logrus.DebugLevel) {
		return
	}
	log.WithFields(logrus.Fields{
		"line":  p.in.line,
		"col":   p.in.col,
		"state": p.currentState,
		"rune":  fmt.Sprintf("%q", r),
	}).Debug(msg)
}

func (p *Tokenizer) emit(tok Token) {
	p.emittedTokens = append(p.emittedTokens, tok)
}

// flushText emits the first n runes of the data buffer as a text token of
// the current content model and keeps the rest, which is the literal text of
// the markup being read.
func (p *Tokenizer) flushText(n int) {
	if n > 0 {
		text := p.data.Slice(0, n)
		switch p.content {
		case ScriptDataState:
			p.emit(p.Factory.NewScriptData(text))
		case DataState, RCDataState:
			p.emit(p.Factory.NewData(text, p.DecodeCharacterReferences))
		default:
			p.emit(p.Factory.NewData(text, false))
		}
		rest := p.data.Slice(n, p.data.Len())
		p.data.Reset()
		p.data.AppendString(rest)
	}
	p.tagStart = 0
}

// emitContentEOF flushes all pending text at the end of the input.
func (p *Tokenizer) emitContentEOF() (bool, TokenizerState) {
	p.flushText(p.data.Len())
	return false, EndOfFileState
}

// emitTruncated handles the end of the input inside a tag.
func (p *Tokenizer) emitTruncated() (bool, TokenizerState) {
	if !p.IgnoreTruncatedTags && p.data.Len() > 0 {
		p.emit(p.Factory.NewData(p.data.String(), false))
	}
	p.tag = nil
	p.data.Reset()
	p.name.Reset()
	p.value.Reset()
	return false, EndOfFileState
}

func (p *Tokenizer) beginTag() {
	name := p.name.String()
	p.tag = p.Factory.NewTag(name, TagNameToID(name), p.isEndTag)
	p.name.Reset()
}

func (p *Tokenizer) beginAttribute() {
	p.name.Reset()
	p.value.Reset()
	p.hasValue = false
}

func (p *Tokenizer) commitAttribute() {
	var value *string
	if p.hasValue {
		v := p.value.String()
		value = &v
	}
	p.tag.Attributes.Add(p.Factory.NewAttribute(p.name.String(), value))
	p.beginAttribute()
}

// emitCurrentTag emits the tag being built and returns the state for the
// content that follows it.
func (p *Tokenizer) emitCurrentTag() TokenizerState {
	tag := p.tag
	p.tag = nil
	p.data.Reset()
	p.name.Reset()
	p.value.Reset()
	p.quote = 0
	p.emit(tag)

	next := DataState
	if !tag.IsEndTag && !tag.IsEmptyElement {
		switch tag.ID {
		case StyleTag, XmpTag, IFrameTag, NoEmbedTag, NoFramesTag, NoScriptTag:
			p.activeTagName = asciiLower(tag.Name)
			next = RawTextState
		case TitleTag, TextAreaTag:
			p.activeTagName = asciiLower(tag.Name)
			next = RCDataState
		case PlainTextTag:
			next = PlainTextState
		case ScriptTag:
			p.activeTagName = "script"
			next = ScriptDataState
		case HtmlTag:
			p.detectNamespace(tag)
		}
	}
	p.content = next
	return next
}

func (p *Tokenizer) detectNamespace(tag *TagToken) {
	for i := tag.Attributes.Len() - 1; i >= 0; i-- {
		a := tag.Attributes.At(i)
		if a.ID != XmlNSAttribute {
			continue
		}
		if ns, ok := ParseNamespace(a.Val()); ok {
			p.namespace = ns
		}
		return
	}
}

func isASCIIWhitespace(r rune) bool {
	switch r {
	case '\t', '\n', '\f', '\r', ' ':
		return true
	default:
		return false
	}
}

func isASCIIAlpha(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}

func isASCIIAlphaNumeric(r rune) bool {
	return isASCIIAlpha(r) || '0' <= r && r <= '9'
}

func (p *Tokenizer) dataStateParser(r rune, eof bool) (bool, TokenizerState) {
	if eof {
		return p.emitContentEOF()
	}
	switch r {
	case '&':
		if p.DecodeCharacterReferences {
			p.returnState = DataState
			return false, CharacterReferenceState
		}
		p.data.Append(r)
		return false, DataState
	case '<':
		p.tagStart = p.data.Len()
		p.data.Append(r)
		return false, TagOpenState
	default:
		p.data.Append(r)
		return false, DataState
	}
}

func (p *Tokenizer) rcDataStateParser(r rune, eof bool) (bool, TokenizerState) {
	if eof {
		return p.emitContentEOF()
	}
	switch r {
	case '&':
		if p.DecodeCharacterReferences {
			p.returnState = RCDataState
			return false, CharacterReferenceState
		}
		p.data.Append(r)
		return false, RCDataState
	case '<':
		p.tagStart = p.data.Len()
		p.data.Append(r)
		return false, RCDataLessThanSignState
	case '\u0000':
		p.data.Append('�')
		return false, RCDataState
	default:
		p.data.Append(r)
		return false, RCDataState
	}
}

func (p *Tokenizer) rawTextStateParser(r rune, eof bool) (bool, TokenizerState) {
	if eof {
		return p.emitContentEOF()
	}
	switch r {
	case '<':
		p.tagStart = p.data.Len()
		p.data.Append(r)
		return false, RawTextLessThanSignState
	case '\u0000':
		p.data.Append('�')
		return false, RawTextState
	default:
		p.data.Append(r)
		return false, RawTextState
	}
}

func (p *Tokenizer) plainTextStateParser(r rune, eof bool) (bool, TokenizerState) {
	if eof {
		return p.emitContentEOF()
	}
	if r == '\u0000' {
		r = '�'
	}
	p.data.Append(r)
	return false, PlainTextState
}

func (p *Tokenizer) tagOpenStateParser(r rune, eof bool) (bool, TokenizerState) {
	if eof {
		return true, DataState
	}
	switch {
	case r == '!':
		p.flushText(p.tagStart)
		p.data.Append(r)
		return false, MarkupDeclarationOpenState
	case r == '/':
		p.data.Append(r)
		return false, EndTagOpenState
	case isASCIIAlpha(r):
		p.flushText(p.tagStart)
		p.isEndTag = false
		p.name.Reset()
		return true, TagNameState
	case r == '?':
		p.nonConforming(r, "processing instruction treated as a bogus comment")
		p.flushText(p.tagStart)
		p.bang = false
		p.name.Reset()
		return true, BogusCommentState
	default:
		p.nonConforming(r, "'<' not followed by a tag name")
		return true, DataState
	}
}

func (p *Tokenizer) endTagOpenStateParser(r rune, eof bool) (bool, TokenizerState) {
	if eof {
		return true, DataState
	}
	switch {
	case isASCIIAlpha(r):
		p.flushText(p.tagStart)
		p.isEndTag = true
		p.name.Reset()
		return true, TagNameState
	case r == '>':
		p.nonConforming(r, "end tag without a name")
		p.data.SetLen(p.tagStart)
		p.tagStart = 0
		return false, DataState
	default:
		p.nonConforming(r, "end tag name does not start with a letter")
		p.flushText(p.tagStart)
		p.bang = false
		p.name.Reset()
		return true, BogusCommentState
	}
}

func (p *Tokenizer) tagNameStateParser(r rune, eof bool) (bool, TokenizerState) {
	if eof {
		return p.emitTruncated()
	}
	p.data.Append(r)
	switch r {
	case '\t', '\n', '\f', '\r', ' ': // tab, line feed, form feed, carriage return, space
		p.beginTag()
		return false, BeforeAttributeNameState
	case '/':
		p.beginTag()
		return false, SelfClosingStartTagState
	case '>':
		p.beginTag()
		return false, p.emitCurrentTag()
	case '\u0000':
		p.name.Append('�')
		return false, TagNameState
	default:
		p.name.Append(r)
		return false, TagNameState
	}
}

func (p *Tokenizer) isAppropriateEndTag(expected string) bool {
	return expected != "" && asciiEqualFold(p.name.String(), expected)
}

// endTagNameParser matches a candidate end tag inside raw text, RCDATA or
// script data. The candidate's text is already in the data buffer, so on a
// mismatch the tokenizer just goes back to the text state.
func (p *Tokenizer) endTagNameParser(r rune, eof bool, text TokenizerState, expected string) (bool, TokenizerState) {
	if eof {
		return true, text
	}
	switch {
	case isASCIIAlpha(r):
		p.data.Append(r)
		p.name.Append(r)
		return false, p.currentState
	case isASCIIWhitespace(r) || r == '/' || r == '>':
		if !p.isAppropriateEndTag(expected) {
			return true, text
		}
		p.flushText(p.tagStart)
		p.data.Append(r)
		p.isEndTag = true
		p.beginTag()
		switch r {
		case '/':
			return false, SelfClosingStartTagState
		case '>':
			return false, p.emitCurrentTag()
		default:
			return false, BeforeAttributeNameState
		}
	default:
		return true, text
	}
}

func (p *Tokenizer) rcDataLessThanSignStateParser(r rune, eof bool) (bool, TokenizerState) {
	if !eof && r == '/' {
		p.data.Append(r)
		p.name.Reset()
		return false, RCDataEndTagOpenState
	}
	return true, RCDataState
}

func (p *Tokenizer) rcDataEndTagOpenStateParser(r rune, eof bool) (bool, TokenizerState) {
	if !eof && isASCIIAlpha(r) {
		return true, RCDataEndTagNameState
	}
	return true, RCDataState
}

func (p *Tokenizer) rcDataEndTagNameStateParser(r rune, eof bool) (bool, TokenizerState) {
	return p.endTagNameParser(r, eof, RCDataState, p.activeTagName)
}

func (p *Tokenizer) rawTextLessThanSignStateParser(r rune, eof bool) (bool, TokenizerState) {
	if !eof && r == '/' {
		p.data.Append(r)
		p.name.Reset()
		return false, RawTextEndTagOpenState
	}
	return true, RawTextState
}

func (p *Tokenizer) rawTextEndTagOpenStateParser(r rune, eof bool) (bool, TokenizerState) {
	if !eof && isASCIIAlpha(r) {
		return true, RawTextEndTagNameState
	}
	return true, RawTextState
}

func (p *Tokenizer) rawTextEndTagNameStateParser(r rune, eof bool) (bool, TokenizerState) {
	return p.endTagNameParser(r, eof, RawTextState, p.activeTagName)
}

func (p *Tokenizer) beforeAttributeNameStateParser(r rune, eof bool) (bool, TokenizerState) {
	if eof {
		return p.emitTruncated()
	}
	switch r {
	case '\t', '\n', '\f', '\r', ' ':
		p.data.Append(r)
		return false, BeforeAttributeNameState
	case '/':
		p.data.Append(r)
		return false, SelfClosingStartTagState
	case '>':
		p.data.Append(r)
		return false, p.emitCurrentTag()
	case '=':
		// the '=' becomes the first character of the attribute's name.
		p.nonConforming(r, "attribute name starts with '='")
		p.beginAttribute()
		p.data.Append(r)
		p.name.Append(r)
		return false, AttributeNameState
	default:
		p.beginAttribute()
		return true, AttributeNameState
	}
}

func (p *Tokenizer) attributeNameStateParser(r rune, eof bool) (bool, TokenizerState) {
	if eof {
		return p.emitTruncated()
	}
	p.data.Append(r)
	switch r {
	case '\t', '\n', '\f', '\r', ' ':
		return false, AfterAttributeNameState
	case '/':
		p.commitAttribute()
		return false, SelfClosingStartTagState
	case '>':
		p.commitAttribute()
		return false, p.emitCurrentTag()
	case '=':
		return false, BeforeAttributeValueState
	case '\u0000':
		p.name.Append('�')
		return false, AttributeNameState
	case '"', '\'', '<':
		p.nonConforming(r, "unexpected character in attribute name")
		p.name.Append(r)
		return false, AttributeNameState
	default:
		p.name.Append(r)
		return false, AttributeNameState
	}
}

func (p *Tokenizer) afterAttributeNameStateParser(r rune, eof bool) (bool, TokenizerState) {
	if eof {
		return p.emitTruncated()
	}
	switch r {
	case '\t', '\n', '\f', '\r', ' ':
		p.data.Append(r)
		return false, AfterAttributeNameState
	case '/':
		p.data.Append(r)
		p.commitAttribute()
		return false, SelfClosingStartTagState
	case '=':
		p.data.Append(r)
		return false, BeforeAttributeValueState
	case '>':
		p.data.Append(r)
		p.commitAttribute()
		return false, p.emitCurrentTag()
	default:
		p.commitAttribute()
		return true, AttributeNameState
	}
}

func (p *Tokenizer) beforeAttributeValueStateParser(r rune, eof bool) (bool, TokenizerState) {
	if eof {
		return p.emitTruncated()
	}
	switch r {
	case '\t', '\n', '\f', '\r', ' ':
		p.data.Append(r)
		return false, BeforeAttributeValueState
	case '"', '\'':
		p.data.Append(r)
		p.quote = r
		p.hasValue = true
		return false, AttributeValueQuotedState
	case '>':
		p.nonConforming(r, "missing attribute value")
		p.data.Append(r)
		p.hasValue = true
		p.commitAttribute()
		return false, p.emitCurrentTag()
	default:
		p.quote = 0
		p.hasValue = true
		return true, AttributeValueUnquotedState
	}
}

func (p *Tokenizer) attributeValueQuotedStateParser(r rune, eof bool) (bool, TokenizerState) {
	if eof {
		return p.emitTruncated()
	}
	switch r {
	case p.quote:
		p.data.Append(r)
		p.commitAttribute()
		p.quote = 0
		return false, AfterAttributeValueQuotedState
	case '&':
		p.returnState = AttributeValueQuotedState
		return false, CharacterReferenceState
	case '\u0000':
		p.data.Append(r)
		p.value.Append('�')
		return false, AttributeValueQuotedState
	default:
		p.data.Append(r)
		p.value.Append(r)
		return false, AttributeValueQuotedState
	}
}

func (p *Tokenizer) attributeValueUnquotedStateParser(r rune, eof bool) (bool, TokenizerState) {
	if eof {
		return p.emitTruncated()
	}
	switch r {
	case '\t', '\n', '\f', '\r', ' ':
		p.data.Append(r)
		p.commitAttribute()
		return false, BeforeAttributeNameState
	case '&':
		p.returnState = AttributeValueUnquotedState
		return false, CharacterReferenceState
	case '>':
		p.data.Append(r)
		p.commitAttribute()
		return false, p.emitCurrentTag()
	case '\u0000':
		p.data.Append(r)
		p.value.Append('�')
		return false, AttributeValueUnquotedState
	case '"', '\'', '<', '=', '`':
		p.nonConforming(r, "unexpected character in unquoted attribute value")
		p.data.Append(r)
		p.value.Append(r)
		return false, AttributeValueUnquotedState
	default:
		p.data.Append(r)
		p.value.Append(r)
		return false, AttributeValueUnquotedState
	}
}

func (p *Tokenizer) afterAttributeValueQuotedStateParser(r rune, eof bool) (bool, TokenizerState) {
	if eof {
		return p.emitTruncated()
	}
	switch r {
	case '\t', '\n', '\f', '\r', ' ':
		p.data.Append(r)
		return false, BeforeAttributeNameState
	case '/':
		p.data.Append(r)
		return false, SelfClosingStartTagState
	case '>':
		p.data.Append(r)
		return false, p.emitCurrentTag()
	default:
		p.nonConforming(r, "missing whitespace between attributes")
		return true, BeforeAttributeNameState
	}
}

func (p *Tokenizer) selfClosingStartTagStateParser(r rune, eof bool) (bool, TokenizerState) {
	if eof {
		return p.emitTruncated()
	}
	if r == '>' {
		p.data.Append(r)
		p.tag.IsEmptyElement = true
		return false, p.emitCurrentTag()
	}
	p.nonConforming(r, "unexpected '/' in tag")
	return true, BeforeAttributeNameState
}

func (p *Tokenizer) inAttributeValue() bool {
	return p.returnState == AttributeValueQuotedState || p.returnState == AttributeValueUnquotedState
}

// appendReference adds a decoded character reference to the buffer of the
// state that asked for it. Inside a tag the literal text also goes to the
// data buffer.
func (p *Tokenizer) appendReference(raw, decoded string) {
	if p.inAttributeValue() {
		p.data.AppendString(raw)
		p.value.AppendString(decoded)
		return
	}
	p.data.AppendString(decoded)
}

func (p *Tokenizer) characterReferenceStateParser(r rune, eof bool) (bool, TokenizerState) {
	if eof {
		p.appendReference("&", "&")
		return true, p.returnState
	}

	// not a character reference; nothing but the '&' is consumed.
	notReference := isASCIIWhitespace(r) || r == '<' || r == '&'
	if p.inAttributeValue() {
		notReference = notReference || r == p.quote || (p.quote == 0 && r == '>')
	}
	if notReference {
		p.appendReference("&", "&")
		return true, p.returnState
	}

	d := p.entity
	d.Reset()
	d.Push('&')
	if !d.Push(r) {
		d.Reset()
		p.appendReference("&", "&")
		return true, p.returnState
	}

	var (
		next rune
		more bool
	)
	for {
		next, more = p.in.peek()
		if !more || !d.Push(next) {
			break
		}
		p.in.read()
	}

	raw, decoded := d.RawInput(), d.Value()
	if p.inAttributeValue() {
		// a legacy reference without ';' followed by '=' or an alphanumeric
		// stays as written.
		if m := d.Matched(); m != "" && !strings.HasSuffix(m, ";") {
			var follow rune
			if len(m) < len(raw) {
				follow = rune(raw[len(m)])
			} else if more {
				follow = next
			}
			if follow == '=' || isASCIIAlphaNumeric(follow) {
				p.nonConforming(follow, "ambiguous ampersand in attribute value")
				decoded = raw
			}
		}
	}
	p.appendReference(raw, decoded)
	d.Reset()
	return false, p.returnState
}

// a parserStateHandler is called with the current rune, or eof set at the end
// of the input. It returns whether the rune must be reconsumed and the next
// state.
type parserStateHandler func(r rune, eof bool) (bool, TokenizerState)

func (p *Tokenizer) stateToParser(state TokenizerState) parserStateHandler {
	switch state {
	case DataState:
		return p.dataStateParser
	case RCDataState:
		return p.rcDataStateParser
	case RawTextState:
		return p.rawTextStateParser
	case ScriptDataState:
		return p.scriptDataStateParser
	case PlainTextState:
		return p.plainTextStateParser
	case CharacterReferenceState:
		return p.characterReferenceStateParser
	case TagOpenState:
		return p.tagOpenStateParser
	case EndTagOpenState:
		return p.endTagOpenStateParser
	case TagNameState:
		return p.tagNameStateParser
	case RCDataLessThanSignState:
		return p.rcDataLessThanSignStateParser
	case RCDataEndTagOpenState:
		return p.rcDataEndTagOpenStateParser
	case RCDataEndTagNameState:
		return p.rcDataEndTagNameStateParser
	case RawTextLessThanSignState:
		return p.rawTextLessThanSignStateParser
	case RawTextEndTagOpenState:
		return p.rawTextEndTagOpenStateParser
	case RawTextEndTagNameState:
		return p.rawTextEndTagNameStateParser
	case ScriptDataLessThanSignState:
		return p.scriptDataLessThanSignStateParser
	case ScriptDataEndTagOpenState:
		return p.scriptDataEndTagOpenStateParser
	case ScriptDataEndTagNameState:
		return p.scriptDataEndTagNameStateParser
	case ScriptDataEscapeStartState:
		return p.scriptDataEscapeStartStateParser
	case ScriptDataEscapeStartDashState:
		return p.scriptDataEscapeStartDashStateParser
	case ScriptDataEscapedState:
		return p.scriptDataEscapedStateParser
	case ScriptDataEscapedDashState:
		return p.scriptDataEscapedDashStateParser
	case ScriptDataEscapedDashDashState:
		return p.scriptDataEscapedDashDashStateParser
	case ScriptDataEscapedLessThanSignState:
		return p.scriptDataEscapedLessThanSignStateParser
	case ScriptDataEscapedEndTagOpenState:
		return p.scriptDataEscapedEndTagOpenStateParser
	case ScriptDataEscapedEndTagNameState:
		return p.scriptDataEscapedEndTagNameStateParser
	case ScriptDataDoubleEscapeStartState:
		return p.scriptDataDoubleEscapeStartStateParser
	case ScriptDataDoubleEscapedState:
		return p.scriptDataDoubleEscapedStateParser
	case ScriptDataDoubleEscapedDashState:
		return p.scriptDataDoubleEscapedDashStateParser
	case ScriptDataDoubleEscapedDashDashState:
		return p.scriptDataDoubleEscapedDashDashStateParser
	case ScriptDataDoubleEscapedLessThanSignState:
		return p.scriptDataDoubleEscapedLessThanSignStateParser
	case ScriptDataDoubleEscapeEndState:
		return p.scriptDataDoubleEscapeEndStateParser
	case BeforeAttributeNameState:
		return p.beforeAttributeNameStateParser
	case AttributeNameState:
		return p.attributeNameStateParser
	case AfterAttributeNameState:
		return p.afterAttributeNameStateParser
	case BeforeAttributeValueState:
		return p.beforeAttributeValueStateParser
	case AttributeValueQuotedState:
		return p.attributeValueQuotedStateParser
	case AttributeValueUnquotedState:
		return p.attributeValueUnquotedStateParser
	case AfterAttributeValueQuotedState:
		return p.afterAttributeValueQuotedStateParser
	case SelfClosingStartTagState:
		return p.selfClosingStartTagStateParser
	case BogusCommentState:
		return p.bogusCommentStateParser
	case MarkupDeclarationOpenState:
		return p.markupDeclarationOpenStateParser
	case CommentStartState:
		return p.commentStartStateParser
	case CommentStartDashState:
		return p.commentStartDashStateParser
	case CommentState:
		return p.commentStateParser
	case CommentEndDashState:
		return p.commentEndDashStateParser
	case CommentEndState:
		return p.commentEndStateParser
	case CommentEndBangState:
		return p.commentEndBangStateParser
	case DocTypeState:
		return p.docTypeStateParser
	case BeforeDocTypeNameState:
		return p.beforeDocTypeNameStateParser
	case DocTypeNameState:
		return p.docTypeNameStateParser
	case AfterDocTypeNameState:
		return p.afterDocTypeNameStateParser
	case AfterDocTypePublicKeywordState:
		return p.afterDocTypePublicKeywordStateParser
	case BeforeDocTypePublicIdentifierState:
		return p.beforeDocTypePublicIdentifierStateParser
	case DocTypePublicIdentifierQuotedState:
		return p.docTypePublicIdentifierQuotedStateParser
	case AfterDocTypePublicIdentifierState:
		return p.afterDocTypePublicIdentifierStateParser
	case BetweenDocTypePublicAndSystemIdentifiersState:
		return p.betweenDocTypePublicAndSystemIdentifiersStateParser
	case AfterDocTypeSystemKeywordState:
		return p.afterDocTypeSystemKeywordStateParser
	case BeforeDocTypeSystemIdentifierState:
		return p.beforeDocTypeSystemIdentifierStateParser
	case DocTypeSystemIdentifierQuotedState:
		return p.docTypeSystemIdentifierQuotedStateParser
	case AfterDocTypeSystemIdentifierState:
		return p.afterDocTypeSystemIdentifierStateParser
	case BogusDocTypeState:
		return p.bogusDocTypeStateParser
	case CDataSectionState:
		return p.cdataSectionStateParser
	case EndOfFileState:
		return p.endOfFileStateParser
	}
	panic(fmt.Sprintf("parser: no handler for tokenizer state %v", state))
}

func (p *Tokenizer) endOfFileStateParser(r rune, eof bool) (bool, TokenizerState) {
	return false, EndOfFileState
}

//go:generate stringer -type=TokenizerState
type TokenizerState uint

const (
	DataState TokenizerState = iota
	RCDataState
	RawTextState
	ScriptDataState
	PlainTextState
	CharacterReferenceState
	TagOpenState
	EndTagOpenState
	TagNameState
	RCDataLessThanSignState
	RCDataEndTagOpenState
	RCDataEndTagNameState
	RawTextLessThanSignState
	RawTextEndTagOpenState
	RawTextEndTagNameState
	ScriptDataLessThanSignState
	ScriptDataEndTagOpenState
	ScriptDataEndTagNameState
	ScriptDataEscapeStartState
	ScriptDataEscapeStartDashState
	ScriptDataEscapedState
	ScriptDataEscapedDashState
	ScriptDataEscapedDashDashState
	ScriptDataEscapedLessThanSignState
	ScriptDataEscapedEndTagOpenState
	ScriptDataEscapedEndTagNameState
	ScriptDataDoubleEscapeStartState
	ScriptDataDoubleEscapedState
	ScriptDataDoubleEscapedDashState
	ScriptDataDoubleEscapedDashDashState
	ScriptDataDoubleEscapedLessThanSignState
	ScriptDataDoubleEscapeEndState
	BeforeAttributeNameState
	AttributeNameState
	AfterAttributeNameState
	BeforeAttributeValueState
	AttributeValueQuotedState
	AttributeValueUnquotedState
	AfterAttributeValueQuotedState
	SelfClosingStartTagState
	BogusCommentState
	MarkupDeclarationOpenState
	CommentStartState
	CommentStartDashState
	CommentState
	CommentEndDashState
	CommentEndState
	CommentEndBangState
	DocTypeState
	BeforeDocTypeNameState
	DocTypeNameState
	AfterDocTypeNameState
	AfterDocTypePublicKeywordState
	BeforeDocTypePublicIdentifierState
	DocTypePublicIdentifierQuotedState
	AfterDocTypePublicIdentifierState
	BetweenDocTypePublicAndSystemIdentifiersState
	AfterDocTypeSystemKeywordState
	BeforeDocTypeSystemIdentifierState
	DocTypeSystemIdentifierQuotedState
	AfterDocTypeSystemIdentifierState
	BogusDocTypeState
	CDataSectionState
	EndOfFileState
)
