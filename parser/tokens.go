package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"go4.org/bytereplacer"
	"golang.org/x/net/html"
)

//go:generate stringer -type=TokenKind
type TokenKind uint

const (
	TagKind TokenKind = iota
	DataKind
	CDataKind
	ScriptDataKind
	CommentKind
	DocTypeKind
)

// ErrNilWriter is returned when a token is written to a nil writer.
var ErrNilWriter = errors.New("parser: nil writer")

// Token is a lexical token produced by the Tokenizer. Every token can write
// itself back out as markup.
type Token interface {
	Kind() TokenKind
	WriteTo(w io.Writer) (int64, error)
	String() string
}

// TagToken is a start or end tag.
type TagToken struct {
	Name           string
	ID             TagID
	Attributes     AttributeTable
	IsEndTag       bool
	IsEmptyElement bool
}

// DataToken is character data. EncodeOnWrite is set when character
// references were decoded while reading it, so the text has to be escaped
// again when written out.
type DataToken struct {
	Text          string
	EncodeOnWrite bool
}

// CDataToken is the content of a <![CDATA[...]]> section.
type CDataToken struct {
	Text string
}

// ScriptDataToken is the content of a <script> element.
type ScriptDataToken struct {
	Text string
}

// CommentToken is a comment. Bogus comments come from <?...>, </...> with a
// non-letter, or <!...> that is neither a comment, a DOCTYPE nor a CDATA
// section; IsBang marks the last kind.
type CommentToken struct {
	Text    string
	IsBogus bool
	IsBang  bool
}

// DocTypeToken is a DOCTYPE declaration. The identifiers are nil when they
// were not given; the keywords keep the case they were written in.
type DocTypeToken struct {
	Name             string
	ForceQuirks      bool
	PublicKeyword    string
	PublicIdentifier *string
	SystemKeyword    string
	SystemIdentifier *string
}

// NewTextToken creates a Data, CData or ScriptData token. It panics for any
// other kind.
func NewTextToken(kind TokenKind, text string) Token {
	switch kind {
	case DataKind:
		return &DataToken{Text: text}
	case CDataKind:
		return &CDataToken{Text: text}
	case ScriptDataKind:
		return &ScriptDataToken{Text: text}
	}
	panic(fmt.Sprintf("parser: %v is not a text token kind", kind))
}

func (*TagToken) Kind() TokenKind        { return TagKind }
func (*DataToken) Kind() TokenKind       { return DataKind }
func (*CDataToken) Kind() TokenKind      { return CDataKind }
func (*ScriptDataToken) Kind() TokenKind { return ScriptDataKind }
func (*CommentToken) Kind() TokenKind    { return CommentKind }
func (*DocTypeToken) Kind() TokenKind    { return DocTypeKind }

var attributeEscaper = bytereplacer.New(
	"&", "&amp;",
	`"`, "&quot;",
	"<", "&lt;",
	">", "&gt;",
)

func writeString(w io.Writer, s string) (int64, error) {
	if w == nil {
		return 0, ErrNilWriter
	}
	n, err := io.WriteString(w, s)
	if err != nil {
		return int64(n), errors.Wrap(err, "writing token")
	}
	return int64(n), nil
}

func (t *TagToken) markup() string {
	var sb strings.Builder
	sb.WriteByte('<')
	if t.IsEndTag {
		sb.WriteByte('/')
	}
	sb.WriteString(t.Name)
	for _, a := range t.Attributes.All() {
		sb.WriteByte(' ')
		sb.WriteString(a.Name)
		if a.Value != nil {
			sb.WriteString(`="`)
			sb.Write(attributeEscaper.Replace([]byte(*a.Value)))
			sb.WriteByte('"')
		}
	}
	if t.IsEmptyElement {
		sb.WriteString("/>")
	} else {
		sb.WriteByte('>')
	}
	return sb.String()
}

func (t *TagToken) WriteTo(w io.Writer) (int64, error) { return writeString(w, t.markup()) }
func (t *TagToken) String() string                     { return t.markup() }

func (t *DataToken) markup() string {
	if t.EncodeOnWrite {
		return html.EscapeString(t.Text)
	}
	return t.Text
}

func (t *DataToken) WriteTo(w io.Writer) (int64, error) { return writeString(w, t.markup()) }
func (t *DataToken) String() string                     { return t.markup() }

func (t *CDataToken) markup() string {
	return "<![CDATA[" + t.Text + "]]>"
}

func (t *CDataToken) WriteTo(w io.Writer) (int64, error) { return writeString(w, t.markup()) }
func (t *CDataToken) String() string                     { return t.markup() }

func (t *ScriptDataToken) WriteTo(w io.Writer) (int64, error) { return writeString(w, t.Text) }
func (t *ScriptDataToken) String() string                     { return t.Text }

func (t *CommentToken) markup() string {
	switch {
	case !t.IsBogus:
		return "<!--" + t.Text + "-->"
	case t.IsBang:
		return "<!" + t.Text + ">"
	case strings.HasPrefix(t.Text, "?"):
		return "<" + t.Text + ">"
	default:
		return "</" + t.Text + ">"
	}
}

func (t *CommentToken) WriteTo(w io.Writer) (int64, error) { return writeString(w, t.markup()) }
func (t *CommentToken) String() string                     { return t.markup() }

func quoteIdentifier(sb *strings.Builder, id string) {
	q := byte('"')
	if strings.IndexByte(id, '"') >= 0 {
		q = '\''
	}
	sb.WriteByte(' ')
	sb.WriteByte(q)
	sb.WriteString(id)
	sb.WriteByte(q)
}

func (t *DocTypeToken) markup() string {
	var sb strings.Builder
	sb.WriteString("<!DOCTYPE")
	if t.Name != "" {
		sb.WriteByte(' ')
		sb.WriteString(t.Name)
	}
	if t.PublicIdentifier != nil {
		kw := t.PublicKeyword
		if kw == "" {
			kw = "PUBLIC"
		}
		sb.WriteByte(' ')
		sb.WriteString(kw)
		quoteIdentifier(&sb, *t.PublicIdentifier)
		if t.SystemIdentifier != nil {
			if t.SystemKeyword != "" {
				sb.WriteByte(' ')
				sb.WriteString(t.SystemKeyword)
			}
			quoteIdentifier(&sb, *t.SystemIdentifier)
		}
	} else if t.SystemIdentifier != nil {
		kw := t.SystemKeyword
		if kw == "" {
			kw = "SYSTEM"
		}
		sb.WriteByte(' ')
		sb.WriteString(kw)
		quoteIdentifier(&sb, *t.SystemIdentifier)
	}
	sb.WriteByte('>')
	return sb.String()
}

func (t *DocTypeToken) WriteTo(w io.Writer) (int64, error) { return writeString(w, t.markup()) }
func (t *DocTypeToken) String() string                     { return t.markup() }
