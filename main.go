// The htmltok command tokenizes an HTML document and prints the tokens. It
// reads the file named on the command line, or standard input.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"

	"github.com/heathj/htmltok/parser"
)

func main() {
	cfg, args, err := parseConfig(os.Args[1:])
	if err == flag.ErrHelp {
		os.Exit(0)
	}
	if err != nil {
		logrus.Fatal(err)
	}
	log := newLogger(cfg)
	if err := run(cfg, args, os.Stdin, os.Stdout, log); err != nil {
		log.WithError(err).Fatal("tokenizing failed")
	}
}

func run(cfg *config, args []string, stdin io.Reader, stdout io.Writer, log *logrus.Logger) error {
	in, name := stdin, "standard input"
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return errors.Wrap(err, "opening input")
		}
		defer f.Close()
		in, name = f, args[0]
	}

	r, err := decodeInput(in, cfg.Charset)
	if err != nil {
		return err
	}

	p := parser.NewTokenizer(r)
	p.DecodeCharacterReferences = cfg.DecodeCharacterReferences
	p.IgnoreTruncatedTags = cfg.IgnoreTruncatedTags
	p.Logger = log

	w := bufio.NewWriter(stdout)
	write := newPrinter(cfg.Format, w)
	n := 0
	for tok := range p.All() {
		if err := write(tok); err != nil {
			return errors.Wrap(err, "writing output")
		}
		n++
	}
	if err := p.Err(); err != nil {
		return errors.Wrapf(err, "reading %s", name)
	}
	log.WithFields(logrus.Fields{"input": name, "tokens": n}).Debug("done")
	return errors.Wrap(w.Flush(), "writing output")
}

// decodeInput converts the input to UTF-8. Without a label the encoding is
// sniffed from the start of the document.
func decodeInput(in io.Reader, label string) (io.Reader, error) {
	if label == "" {
		r, err := charset.NewReader(in, "")
		return r, errors.Wrap(err, "detecting charset")
	}
	e, err := htmlindex.Get(label)
	if err != nil {
		return nil, errors.Wrapf(err, "charset %q", label)
	}
	return transform.NewReader(in, e.NewDecoder()), nil
}

func newPrinter(format string, w io.Writer) func(parser.Token) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		return func(tok parser.Token) error { return enc.Encode(newTokenJSON(tok)) }
	case "html":
		return func(tok parser.Token) error {
			_, err := tok.WriteTo(w)
			return err
		}
	default:
		return func(tok parser.Token) error {
			kind := strings.TrimSuffix(tok.Kind().String(), "Kind")
			_, err := fmt.Fprintf(w, "%-10s %q\n", kind, tok.String())
			return err
		}
	}
}

type attributeJSON struct {
	Name  string  `json:"name"`
	Value *string `json:"value,omitempty"`
}

type tokenJSON struct {
	Kind             string          `json:"kind"`
	Name             string          `json:"name,omitempty"`
	EndTag           bool            `json:"end_tag,omitempty"`
	Empty            bool            `json:"empty,omitempty"`
	Attributes       []attributeJSON `json:"attributes,omitempty"`
	Text             string          `json:"text,omitempty"`
	Bogus            bool            `json:"bogus,omitempty"`
	ForceQuirks      bool            `json:"force_quirks,omitempty"`
	PublicIdentifier *string         `json:"public_id,omitempty"`
	SystemIdentifier *string         `json:"system_id,omitempty"`
}

func newTokenJSON(tok parser.Token) tokenJSON {
	out := tokenJSON{Kind: strings.ToLower(strings.TrimSuffix(tok.Kind().String(), "Kind"))}
	switch t := tok.(type) {
	case *parser.TagToken:
		out.Name, out.EndTag, out.Empty = t.Name, t.IsEndTag, t.IsEmptyElement
		for _, a := range t.Attributes.All() {
			out.Attributes = append(out.Attributes, attributeJSON{Name: a.Name, Value: a.Value})
		}
	case *parser.DataToken:
		out.Text = t.Text
	case *parser.CDataToken:
		out.Text = t.Text
	case *parser.ScriptDataToken:
		out.Text = t.Text
	case *parser.CommentToken:
		out.Text, out.Bogus = t.Text, t.IsBogus
	case *parser.DocTypeToken:
		out.Name, out.ForceQuirks = t.Name, t.ForceQuirks
		out.PublicIdentifier, out.SystemIdentifier = t.PublicIdentifier, t.SystemIdentifier
	}
	return out
}
