package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenStrings(t *testing.T) {
	tests := []struct {
		tok  Token
		kind TokenKind
		want string
	}{
		{OpenTag{Name: "a", Attributes: []Attribute{{"href", "x"}, {"id", `"q"`}}}, OpenTagToken, `<a href="x" id="\"q\"">`},
		{ClosingTag{Name: "a"}, ClosingTagToken, "</a>"},
		{EmptyTag{Name: "br"}, EmptyTagToken, "<br/>"},
		{Text{Content: "a\nb"}, TextToken, `Text("a\nb")`},
		{Comment{Content: " c "}, CommentToken, `Comment(" c ")`},
		{CData{Content: "x"}, CDataToken, `CData("x")`},
		{ProcessingInstruction{Target: "xml", Body: "v"}, ProcessingInstructionToken, `PI(xml "v")`},
		{Doctype{Name: "html"}, DoctypeToken, `Doctype("html")`},
		{Unknown{Message: "boom"}, UnknownToken, "Unknown(boom)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.kind, tt.tok.Kind())
		assert.Equal(t, tt.want, tt.tok.String())
	}
	assert.Equal(t, "ProcessingInstruction", ProcessingInstructionToken.String())
	assert.Equal(t, "TokenKind(42)", TokenKind(42).String())
}

func TestTokenBuilderPending(t *testing.T) {
	var b tokenBuilder
	b.WriteData('a')
	b.WritePending('-')
	b.WritePending('-')
	b.FlushOnePending()
	b.WritePending('-')
	b.DropPending()
	assert.Equal(t, Comment{Content: "a-"}, b.Comment())

	b = tokenBuilder{skipData: true}
	b.WriteData('a')
	b.WritePending(']')
	b.FlushPending()
	assert.Equal(t, CData{}, b.CData())
}

func TestPosition(t *testing.T) {
	var p Position
	assert.Equal(t, "1:1", p.String())
	p.Advance([]byte("ab\ncd"))
	assert.Equal(t, Position{Line: 1, Column: 2}, p)
	assert.Equal(t, "2:3", p.String())
	p.Advance([]byte("\n"))
	assert.Equal(t, Position{Line: 2}, p)
}

func TestConfig(t *testing.T) {
	def := DefaultConfig()
	assert.False(t, def.SkipText || def.SkipCDATA || def.SkipComment || def.SkipPI)
	assert.True(t, def.AllowUnquotedAttributeValue && def.AllowConcatenatedAttribute)

	def.SkipComment = true
	strict := def.Strict()
	assert.Equal(t, Config{SkipComment: true}, strict)
	assert.True(t, def.AllowWeakDoubleQuoteCoding, "Strict returns a copy")
}
