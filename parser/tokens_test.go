package parser

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenMarkup(t *testing.T) {
	img := startTag("img", attr("alt", `a "b" <c> & d`), NewAttribute("ismap", nil))
	img.IsEmptyElement = true

	tests := []struct {
		name string
		tok  Token
		kind TokenKind
		want string
	}{
		{"start tag", startTag("p", attr("class", "a")), TagKind, `<p class="a">`},
		{"end tag", endTag("p"), TagKind, "</p>"},
		{"escaped attribute", img, TagKind, `<img alt="a &quot;b&quot; &lt;c&gt; &amp; d" ismap/>`},
		{"decoded data", text("a < b & c"), DataKind, "a &lt; b &amp; c"},
		{"literal data", literal("a < b"), DataKind, "a < b"},
		{"cdata", &CDataToken{Text: "x"}, CDataKind, "<![CDATA[x]]>"},
		{"script data", &ScriptDataToken{Text: "a < b"}, ScriptDataKind, "a < b"},
		{"comment", &CommentToken{Text: " c "}, CommentKind, "<!-- c -->"},
		{"bang comment", &CommentToken{Text: "ELEMENT", IsBogus: true, IsBang: true}, CommentKind, "<!ELEMENT>"},
		{"processing instruction", &CommentToken{Text: "?xml?", IsBogus: true}, CommentKind, "<?xml?>"},
		{"bogus end tag", &CommentToken{Text: " x", IsBogus: true}, CommentKind, "</ x>"},
		{"doctype", &DocTypeToken{Name: "html"}, DocTypeKind, "<!DOCTYPE html>"},
		{"empty doctype", &DocTypeToken{}, DocTypeKind, "<!DOCTYPE>"},
		{"doctype public", &DocTypeToken{
			Name:             "html",
			PublicIdentifier: strPtr("-//W3C//DTD HTML 4.01//EN"),
			SystemIdentifier: strPtr("http://www.w3.org/TR/html4/strict.dtd"),
		}, DocTypeKind, `<!DOCTYPE html PUBLIC "-//W3C//DTD HTML 4.01//EN" "http://www.w3.org/TR/html4/strict.dtd">`},
		{"doctype system", &DocTypeToken{Name: "html", SystemKeyword: "system", SystemIdentifier: strPtr("about:legacy-compat")},
			DocTypeKind, `<!DOCTYPE html system "about:legacy-compat">`},
		{"doctype quote in identifier", &DocTypeToken{Name: "html", SystemIdentifier: strPtr(`a"b`)},
			DocTypeKind, `<!DOCTYPE html SYSTEM 'a"b'>`},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.kind, tt.tok.Kind())
			assert.Equal(t, tt.want, tt.tok.String())

			var sb strings.Builder
			n, err := tt.tok.WriteTo(&sb)
			require.NoError(t, err)
			assert.Equal(t, int64(len(tt.want)), n)
			assert.Equal(t, tt.want, sb.String())
		})
	}
}

func TestWriteToNilWriter(t *testing.T) {
	toks := []Token{
		startTag("p"),
		text("x"),
		&CDataToken{},
		&ScriptDataToken{},
		&CommentToken{},
		&DocTypeToken{},
	}
	for _, tok := range toks {
		_, err := tok.WriteTo(nil)
		assert.ErrorIs(t, err, ErrNilWriter, "%v", tok.Kind())
	}
}

func TestWriteToError(t *testing.T) {
	boom := errors.New("boom")
	w := &failingWriter{err: boom}
	_, err := startTag("p").WriteTo(w)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "writing token")
}

type failingWriter struct{ err error }

func (w *failingWriter) Write(p []byte) (int, error) { return 0, w.err }

func TestNewTextToken(t *testing.T) {
	assert.Equal(t, &DataToken{Text: "a"}, NewTextToken(DataKind, "a"))
	assert.Equal(t, &CDataToken{Text: "a"}, NewTextToken(CDataKind, "a"))
	assert.Equal(t, &ScriptDataToken{Text: "a"}, NewTextToken(ScriptDataKind, "a"))
	for _, kind := range []TokenKind{TagKind, CommentKind, DocTypeKind} {
		assert.Panics(t, func() { NewTextToken(kind, "a") }, kind.String())
	}
}

func TestTokenKindString(t *testing.T) {
	assert.Equal(t, "ScriptDataKind", ScriptDataKind.String())
	assert.Equal(t, "TokenKind(42)", TokenKind(42).String())
	assert.Equal(t, "CDataSectionState", CDataSectionState.String())
}
