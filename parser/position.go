package parser

import "fmt"

// Position counts the lines and columns consumed so far. The zero value is
// the start of a document. Line is the number of newlines consumed and Column
// the number of bytes consumed since the last newline, so the next byte sits
// at the 1-based location (Line+1, Column+1).
type Position struct {
	Line   int
	Column int
}

// Advance moves p over b.
func (p *Position) Advance(b []byte) {
	for _, c := range b {
		p.advance(c)
	}
}

func (p *Position) advance(c byte) {
	if c == '\n' {
		p.Line++
		p.Column = 0
		return
	}
	p.Column++
}

// String returns the 1-based location of the next byte.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line+1, p.Column+1)
}
