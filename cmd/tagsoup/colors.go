package main

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/heathj/tagsoup/parser"
)

type sprintf func(string, ...any) string

type palette struct {
	Pos   sprintf
	Error sprintf
	Kinds map[parser.TokenKind]sprintf
}

func plainPalette() *palette {
	return &palette{
		Pos:   fmt.Sprintf,
		Error: fmt.Sprintf,
		Kinds: map[parser.TokenKind]sprintf{},
	}
}

func colorPalette() *palette {
	enabled := func(c *color.Color) sprintf {
		c.EnableColor()
		return c.SprintfFunc()
	}
	return &palette{
		Pos:   enabled(color.New(color.Faint)),
		Error: enabled(color.New(color.FgRed, color.Bold)),
		Kinds: map[parser.TokenKind]sprintf{
			parser.OpenTagToken:               enabled(color.RGB(74, 92, 138)),
			parser.EmptyTagToken:              enabled(color.RGB(74, 92, 138)),
			parser.ClosingTagToken:            enabled(color.RGB(255, 0, 196)),
			parser.CommentToken:               enabled(color.New(color.FgBlue)),
			parser.CDataToken:                 enabled(color.RGB(128, 216, 236)),
			parser.ProcessingInstructionToken: enabled(color.RGB(196, 96, 16)),
			parser.DoctypeToken:               enabled(color.New(color.FgMagenta)),
			parser.UnknownToken:               enabled(color.New(color.FgRed)),
		},
	}
}

func (p *palette) kind(k parser.TokenKind, format string, args ...any) string {
	if f, ok := p.Kinds[k]; ok {
		return f(format, args...)
	}
	return fmt.Sprintf(format, args...)
}
