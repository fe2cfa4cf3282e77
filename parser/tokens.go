package parser

import (
	"fmt"
	"strings"
)

// TokenKind identifies which variant a Token is.
type TokenKind uint

const (
	UnknownToken TokenKind = iota
	OpenTagToken
	ClosingTagToken
	EmptyTagToken
	TextToken
	CommentToken
	CDataToken
	ProcessingInstructionToken
	DoctypeToken
)

func (k TokenKind) String() string {
	switch k {
	case UnknownToken:
		return "Unknown"
	case OpenTagToken:
		return "OpenTag"
	case ClosingTagToken:
		return "ClosingTag"
	case EmptyTagToken:
		return "EmptyTag"
	case TextToken:
		return "Text"
	case CommentToken:
		return "Comment"
	case CDataToken:
		return "CData"
	case ProcessingInstructionToken:
		return "ProcessingInstruction"
	case DoctypeToken:
		return "Doctype"
	}
	return fmt.Sprintf("TokenKind(%d)", uint(k))
}

// Token is one recognized lexical unit. The set of implementations is closed:
// OpenTag, ClosingTag, EmptyTag, Text, Comment, CData, ProcessingInstruction,
// Doctype and Unknown.
type Token interface {
	Kind() TokenKind
	String() string
	token()
}

// Attribute is a name/value pair in source order. Duplicates are kept.
type Attribute struct {
	Name  string
	Value string
}

// OpenTag is <name attrs...>.
type OpenTag struct {
	Name       string
	Attributes []Attribute
}

// ClosingTag is </name>.
type ClosingTag struct {
	Name string
}

// EmptyTag is the self-closing form <name attrs.../>.
type EmptyTag struct {
	Name       string
	Attributes []Attribute
}

// Text is a run of character data up to the next '<'.
type Text struct {
	Content string
}

// Comment is <!--content-->.
type Comment struct {
	Content string
}

// CData is <![CDATA[content]]>.
type CData struct {
	Content string
}

// ProcessingInstruction is <?target body?>.
type ProcessingInstruction struct {
	Target string
	Body   string
}

// Doctype is <!DOCTYPE name>. Name is the opaque declaration body up to the
// first '>', verbatim except that leading and trailing whitespace is dropped.
type Doctype struct {
	Name string
}

// Unknown carries a diagnostic. Err is ErrIncomplete or a *SyntaxError.
type Unknown struct {
	Message string
	Line    int
	Column  int
	Err     error
}

func (OpenTag) Kind() TokenKind               { return OpenTagToken }
func (ClosingTag) Kind() TokenKind            { return ClosingTagToken }
func (EmptyTag) Kind() TokenKind              { return EmptyTagToken }
func (Text) Kind() TokenKind                  { return TextToken }
func (Comment) Kind() TokenKind               { return CommentToken }
func (CData) Kind() TokenKind                 { return CDataToken }
func (ProcessingInstruction) Kind() TokenKind { return ProcessingInstructionToken }
func (Doctype) Kind() TokenKind               { return DoctypeToken }
func (Unknown) Kind() TokenKind               { return UnknownToken }

func (OpenTag) token()               {}
func (ClosingTag) token()            {}
func (EmptyTag) token()              {}
func (Text) token()                  {}
func (Comment) token()               {}
func (CData) token()                 {}
func (ProcessingInstruction) token() {}
func (Doctype) token()               {}
func (Unknown) token()               {}

func (t OpenTag) String() string {
	return "<" + t.Name + formatAttributes(t.Attributes) + ">"
}

func (t ClosingTag) String() string {
	return "</" + t.Name + ">"
}

func (t EmptyTag) String() string {
	return "<" + t.Name + formatAttributes(t.Attributes) + "/>"
}

func (t Text) String() string {
	return fmt.Sprintf("Text(%q)", t.Content)
}

func (t Comment) String() string {
	return fmt.Sprintf("Comment(%q)", t.Content)
}

func (t CData) String() string {
	return fmt.Sprintf("CData(%q)", t.Content)
}

func (t ProcessingInstruction) String() string {
	return fmt.Sprintf("PI(%s %q)", t.Target, t.Body)
}

func (t Doctype) String() string {
	return fmt.Sprintf("Doctype(%q)", t.Name)
}

func (t Unknown) String() string {
	return "Unknown(" + t.Message + ")"
}

func formatAttributes(attrs []Attribute) string {
	var sb strings.Builder
	for _, a := range attrs {
		fmt.Fprintf(&sb, " %s=%q", a.Name, a.Value)
	}
	return sb.String()
}

// tokenBuilder builds up the pieces of a token while the state machine runs.
type tokenBuilder struct {
	attributes     []Attribute
	attributeName  strings.Builder
	attributeValue strings.Builder
	name           strings.Builder
	data           strings.Builder
	// pending holds bytes that may belong to a terminator such as "-->".
	pending  []byte
	skipData bool
}

// WriteName appends a byte to the tag or target name.
func (b *tokenBuilder) WriteName(c byte) {
	b.name.WriteByte(c)
}

// WriteAttributeName appends a byte to the current attribute's name.
func (b *tokenBuilder) WriteAttributeName(c byte) {
	b.attributeName.WriteByte(c)
}

// WriteAttributeValue appends a byte to the current attribute's value.
func (b *tokenBuilder) WriteAttributeValue(c byte) {
	b.attributeValue.WriteByte(c)
}

// WriteData appends a byte to the content unless content is being skipped.
func (b *tokenBuilder) WriteData(c byte) {
	if b.skipData {
		return
	}
	b.data.WriteByte(c)
}

// WritePending holds back a byte that may start a terminator.
func (b *tokenBuilder) WritePending(c byte) {
	b.pending = append(b.pending, c)
}

// FlushPending moves held back bytes into the content; the terminator
// candidate turned out to be a false start.
func (b *tokenBuilder) FlushPending() {
	for _, c := range b.pending {
		b.WriteData(c)
	}
	b.pending = b.pending[:0]
}

// FlushOnePending releases the oldest held back byte while keeping the rest,
// so "--->" still ends a comment after writing one '-'.
func (b *tokenBuilder) FlushOnePending() {
	if len(b.pending) == 0 {
		return
	}
	b.WriteData(b.pending[0])
	b.pending = append(b.pending[:0], b.pending[1:]...)
}

// DropPending discards held back bytes once the terminator is confirmed.
func (b *tokenBuilder) DropPending() {
	b.pending = b.pending[:0]
}

// CommitAttribute ends the current name/value pair by appending it to the
// attribute list and clearing the name and value buffers.
func (b *tokenBuilder) CommitAttribute() {
	b.attributes = append(b.attributes, Attribute{
		Name:  b.attributeName.String(),
		Value: b.attributeValue.String(),
	})
	b.attributeName.Reset()
	b.attributeValue.Reset()
}

func (b *tokenBuilder) OpenTag() OpenTag {
	return OpenTag{Name: b.name.String(), Attributes: b.attributes}
}

func (b *tokenBuilder) EmptyTag() EmptyTag {
	return EmptyTag{Name: b.name.String(), Attributes: b.attributes}
}

func (b *tokenBuilder) ClosingTag() ClosingTag {
	return ClosingTag{Name: b.name.String()}
}

func (b *tokenBuilder) Text() Text {
	return Text{Content: b.data.String()}
}

func (b *tokenBuilder) Comment() Comment {
	return Comment{Content: b.data.String()}
}

func (b *tokenBuilder) CData() CData {
	return CData{Content: b.data.String()}
}

func (b *tokenBuilder) ProcessingInstruction() ProcessingInstruction {
	return ProcessingInstruction{Target: b.name.String(), Body: b.data.String()}
}

func (b *tokenBuilder) Doctype() Doctype {
	return Doctype{Name: strings.TrimFunc(b.data.String(), isSpaceRune)}
}

func isSpaceRune(r rune) bool {
	return r < 0x80 && isSpace(byte(r))
}
