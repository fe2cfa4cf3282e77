package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heathj/tagsoup/parser"
)

const sampleConfig = `
skip_comment: true
allow_unquoted_attribute_value: false
raw_text: [textarea, xmp]
`

func TestParseFileConfig(t *testing.T) {
	fc, err := parseFileConfig([]byte(sampleConfig))
	require.NoError(t, err)

	want := parser.DefaultConfig()
	want.SkipComment = true
	want.AllowUnquotedAttributeValue = false
	assert.Equal(t, want, fc.Config)
	assert.Equal(t, []string{"textarea", "xmp"}, fc.RawText)

	_, err = parseFileConfig([]byte("skip_text: [nope"))
	assert.Error(t, err)
}

func TestLoadFileConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tagsoup.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o644))

	fc, err := loadFileConfig(path)
	require.NoError(t, err)
	assert.True(t, fc.SkipComment)

	_, err = loadFileConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not read config")
}

func TestParserConfig(t *testing.T) {
	cfg := &MainConfig{}
	assert.Equal(t, parser.DefaultConfig(), cfg.parserConfig())

	fc, err := parseFileConfig([]byte("skip_text: true\n"))
	require.NoError(t, err)
	cfg = &MainConfig{File: fc, Strict: true, SkipPI: true}
	want := parser.Config{SkipText: true, SkipPI: true}
	assert.Equal(t, want, cfg.parserConfig())
}

func TestRawTextElements(t *testing.T) {
	assert.Nil(t, (&MainConfig{}).rawTextElements())
	assert.Equal(t, []string{"textarea", "xmp"}, (&MainConfig{Raw: "textarea, xmp,"}).rawTextElements())

	fc, err := parseFileConfig([]byte(sampleConfig))
	require.NoError(t, err)
	assert.Equal(t, []string{"textarea", "xmp"}, (&MainConfig{File: fc}).rawTextElements())
	assert.Equal(t, []string{"pre"}, (&MainConfig{File: fc, Raw: "pre"}).rawTextElements())
}

func TestNewRecord(t *testing.T) {
	tok := parser.OpenTag{Name: "a", Attributes: []parser.Attribute{{Name: "x", Value: "1"}, {Name: "x", Value: "2"}}}
	rec := newRecord("f.html", tok, parser.Position{Line: 1, Column: 4})
	want := record{
		File:       "f.html",
		Kind:       "OpenTag",
		Line:       2,
		Column:     5,
		Name:       "a",
		Attributes: []attribute{{"x", "1"}, {"x", "2"}},
		Attrs:      map[string]string{"x": "2"},
	}
	if diff := cmp.Diff(want, rec); diff != "" {
		t.Errorf("record mismatch (-want +got):\n%s", diff)
	}

	rec = newRecord("", parser.ProcessingInstruction{Target: "xml", Body: "v"}, parser.Position{})
	assert.Equal(t, "xml", rec.Target)
	assert.Equal(t, "v", rec.Content)

	rec = newRecord("", parser.Unknown{Message: "bad", Line: 3, Column: 7}, parser.Position{Line: 2, Column: 6})
	assert.Equal(t, "Unknown", rec.Kind)
	assert.Equal(t, "bad", rec.Message)
	assert.Equal(t, 3, rec.Line)
	assert.Equal(t, 7, rec.Column)
}

func TestFilter(t *testing.T) {
	f, err := compileFilter(`Kind == "OpenTag" && "href" in Attrs`)
	require.NoError(t, err)

	link := newRecord("", parser.OpenTag{Name: "a", Attributes: []parser.Attribute{{Name: "href", Value: "/"}}}, parser.Position{})
	ok, err := f.match(link)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.match(newRecord("", parser.OpenTag{Name: "a"}, parser.Position{}))
	require.NoError(t, err)
	assert.False(t, ok)

	all, err := compileFilter("")
	require.NoError(t, err)
	ok, err = all.match(link)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = compileFilter("Line +")
	assert.Error(t, err)
	_, err = compileFilter("Line + 1")
	assert.Error(t, err, "non boolean expressions are rejected")
	_, err = compileFilter("Nope == 1")
	assert.Error(t, err, "unknown fields are rejected")
}

func TestWriteTokens(t *testing.T) {
	const in = `<a href="x">hi</a>`
	tests := []struct {
		name  string
		where string
		want  string
	}{
		{"all", "", "1:1\tOpenTag\t<a href=\"x\">\n1:13\tText\tText(\"hi\")\n1:15\tClosingTag\t</a>\n"},
		{"where", `Kind == "Text"`, "1:13\tText\tText(\"hi\")\n"},
		{"where name", `Name == "a" && Line == 1`, "1:1\tOpenTag\t<a href=\"x\">\n1:15\tClosingTag\t</a>\n"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f, err := compileFilter(tt.where)
			require.NoError(t, err)
			var out bytes.Buffer
			cfg := &TokensConfig{MainConfig: &MainConfig{}}
			require.NoError(t, writeTokens(&out, strings.NewReader(in), "", cfg, f, plainPalette()))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestWriteTokensFileName(t *testing.T) {
	var out bytes.Buffer
	cfg := &TokensConfig{MainConfig: &MainConfig{}}
	require.NoError(t, writeTokens(&out, strings.NewReader("<br/>"), "p.html", cfg, filter{}, plainPalette()))
	assert.Equal(t, "p.html:1:1\tEmptyTag\t<br/>\n", out.String())
}

func TestWriteTokensYAML(t *testing.T) {
	var out bytes.Buffer
	cfg := &TokensConfig{MainConfig: &MainConfig{}, YAML: true}
	in := "<a x='1' y=2/>\n<!--c-->"
	require.NoError(t, writeTokens(&out, strings.NewReader(in), "", cfg, filter{}, plainPalette()))

	var got []record
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &got))
	want := []record{
		{Kind: "EmptyTag", Line: 1, Column: 1, Name: "a", Attributes: []attribute{{"x", "1"}, {"y", "2"}}},
		{Kind: "Text", Line: 1, Column: 15, Content: "\n"},
		{Kind: "Comment", Line: 2, Column: 1, Content: "c"},
	}
	if diff := cmp.Diff(want, got, cmpopts.IgnoreFields(record{}, "Attrs")); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteTokensStopsOnMalformed(t *testing.T) {
	var out bytes.Buffer
	cfg := &TokensConfig{MainConfig: &MainConfig{Strict: true}}
	err := writeTokens(&out, strings.NewReader("<a>\n<b c=d>"), "", cfg, filter{}, plainPalette())
	require.Error(t, err)
	assert.ErrorIs(t, err, parser.ErrMalformed)
	assert.Equal(t, "1:1\tOpenTag\t<a>\n1:4\tText\tText(\"\\n\")\n", out.String())
}

func TestCheckReader(t *testing.T) {
	var out bytes.Buffer
	n, err := checkReader(&out, strings.NewReader("<a>\n<1>\n<!-- x"), "f.html", &MainConfig{}, plainPalette())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "f.html:2:2: expecting '!', '?', '/' or a name start character, found '1' in tag open\n"+
		"f.html: unterminated markup at 3:1: unexpected end of input\n", out.String())

	out.Reset()
	n, err = checkReader(&out, strings.NewReader("<p>fine</p>"), "ok.html", &MainConfig{}, plainPalette())
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, out.String())
}

func TestCheckReaderRespectsConfig(t *testing.T) {
	var out bytes.Buffer
	in := `<a x=1 y="<">`
	n, err := checkReader(&out, strings.NewReader(in), "f", &MainConfig{}, plainPalette())
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = checkReader(&out, strings.NewReader(in), "f", &MainConfig{Strict: true}, plainPalette())
	require.NoError(t, err)
	assert.Equal(t, 2, n, "the unquoted value and the '<' opening nothing")
}

func TestColorize(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, (&MainConfig{}).colorize(&buf))
	assert.True(t, (&MainConfig{Color: true}).colorize(&buf))
}

func TestColorPalette(t *testing.T) {
	pal := colorPalette()
	s := pal.kind(parser.OpenTagToken, "%s", "OpenTag")
	assert.Contains(t, s, "OpenTag")
	assert.NotEqual(t, "OpenTag", s)
	assert.Equal(t, "Text", pal.kind(parser.TextToken, "%s", "Text"))
	assert.Equal(t, "Text", plainPalette().kind(parser.TextToken, "%s", "Text"))
}
