package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func runString(t *testing.T, cfg config, in string) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, run(&cfg, nil, strings.NewReader(in), &out, quietLogger()))
	return out.String()
}

func TestRunText(t *testing.T) {
	got := runString(t, defaultConfig(), `<p class="a">hi</p>`)
	want := "Tag        \"<p class=\\\"a\\\">\"\n" +
		"Data       \"hi\"\n" +
		"Tag        \"</p>\"\n"
	assert.Equal(t, want, got)
}

func TestRunHTML(t *testing.T) {
	cfg := defaultConfig()
	cfg.Format = "html"
	in := `<!DOCTYPE html><p title="x &amp; y">a &lt; b</p><!--c-->`
	assert.Equal(t, in, runString(t, cfg, in))
}

func TestRunJSON(t *testing.T) {
	cfg := defaultConfig()
	cfg.Format = "json"
	got := runString(t, cfg, `<!DOCTYPE html><input disabled value=1><![CDATA[x]]>`)

	var toks []tokenJSON
	dec := json.NewDecoder(strings.NewReader(got))
	for dec.More() {
		var tok tokenJSON
		require.NoError(t, dec.Decode(&tok))
		toks = append(toks, tok)
	}
	require.Len(t, toks, 3)
	assert.Equal(t, "doctype", toks[0].Kind)
	assert.Equal(t, "html", toks[0].Name)
	assert.Equal(t, "tag", toks[1].Kind)
	require.Len(t, toks[1].Attributes, 2)
	assert.Nil(t, toks[1].Attributes[0].Value)
	assert.Equal(t, "1", *toks[1].Attributes[1].Value)
	assert.Equal(t, "cdata", toks[2].Kind)
	assert.Equal(t, "x", toks[2].Text)
}

func TestRunOptions(t *testing.T) {
	cfg := defaultConfig()
	cfg.Format = "html"
	cfg.DecodeCharacterReferences = false
	cfg.IgnoreTruncatedTags = true
	assert.Equal(t, "&amp;x", runString(t, cfg, "&amp;x<di"))
}

func TestRunCharset(t *testing.T) {
	cfg := defaultConfig()
	cfg.Format = "html"
	cfg.Charset = "iso-8859-1"
	assert.Equal(t, "<p>café</p>", runString(t, cfg, "<p>caf\xe9</p>"))

	cfg.Charset = "no-such-charset"
	err := run(&cfg, nil, strings.NewReader(""), io.Discard, quietLogger())
	assert.Error(t, err)
}

func TestRunFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.html")
	require.NoError(t, os.WriteFile(path, []byte("<b>x</b>"), 0o644))

	cfg := defaultConfig()
	cfg.Format = "html"
	var out bytes.Buffer
	require.NoError(t, run(&cfg, []string{path}, nil, &out, quietLogger()))
	assert.Equal(t, "<b>x</b>", out.String())

	err := run(&cfg, []string{filepath.Join(t.TempDir(), "missing.html")}, nil, &out, quietLogger())
	assert.Error(t, err)
}

func TestParseConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "htmltok.yaml")
	conf := "decode_character_references: false\nformat: json\nlog_level: debug\ncharset: utf-8\n"
	require.NoError(t, os.WriteFile(path, []byte(conf), 0o644))

	cfg, args, err := parseConfig([]string{"-config", path, "-format", "html", "in.html"})
	require.NoError(t, err)
	assert.Equal(t, []string{"in.html"}, args)
	assert.False(t, cfg.DecodeCharacterReferences)
	assert.Equal(t, "html", cfg.Format)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "utf-8", cfg.Charset)
	assert.Equal(t, logrus.DebugLevel, newLogger(cfg).GetLevel())
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, args, err := parseConfig(nil)
	require.NoError(t, err)
	assert.Empty(t, args)
	assert.Equal(t, defaultConfig(), *cfg)
}

func TestParseConfigErrors(t *testing.T) {
	dir := t.TempDir()
	unknown := filepath.Join(dir, "unknown.yaml")
	require.NoError(t, os.WriteFile(unknown, []byte("colour: red\n"), 0o644))

	for _, args := range [][]string{
		{"-format", "xml"},
		{"-log-level", "loud"},
		{"-config", filepath.Join(dir, "missing.yaml")},
		{"-config", unknown},
	} {
		_, _, err := parseConfig(args)
		assert.Error(t, err, strings.Join(args, " "))
	}
}
