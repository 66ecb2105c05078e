package parser

// TokenFactory creates the tokens a Tokenizer emits. Embedders can supply
// their own to decorate or pool tokens. NewTag and NewDocType return the
// in-progress token that the tokenizer fills in before emitting it.
type TokenFactory interface {
	NewTag(name string, id TagID, isEndTag bool) *TagToken
	NewAttribute(name string, value *string) Attribute
	NewDocType() *DocTypeToken
	NewData(text string, encodeOnWrite bool) Token
	NewCData(text string) Token
	NewScriptData(text string) Token
	NewComment(text string, bogus, bang bool) Token
}

// DefaultTokenFactory creates the plain token types of this package.
type DefaultTokenFactory struct{}

func (DefaultTokenFactory) NewTag(name string, id TagID, isEndTag bool) *TagToken {
	return &TagToken{Name: name, ID: id, IsEndTag: isEndTag}
}

func (DefaultTokenFactory) NewAttribute(name string, value *string) Attribute {
	return NewAttribute(name, value)
}

func (DefaultTokenFactory) NewDocType() *DocTypeToken {
	return &DocTypeToken{}
}

func (DefaultTokenFactory) NewData(text string, encodeOnWrite bool) Token {
	return &DataToken{Text: text, EncodeOnWrite: encodeOnWrite}
}

func (DefaultTokenFactory) NewCData(text string) Token {
	return NewTextToken(CDataKind, text)
}

func (DefaultTokenFactory) NewScriptData(text string) Token {
	return NewTextToken(ScriptDataKind, text)
}

func (DefaultTokenFactory) NewComment(text string, bogus, bang bool) Token {
	return &CommentToken{Text: text, IsBogus: bogus, IsBang: bang}
}
