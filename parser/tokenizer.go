package parser

import "fmt"

type tokenizerState uint

const (
	initialState tokenizerState = iota
	textState
	tagOpenState

	markupDeclarationOpenState
	commentStartDashState
	commentState
	commentEndDashState
	commentEndState
	cdataKeywordState
	cdataSectionState
	cdataSectionBracketState
	cdataSectionEndState
	doctypeKeywordState
	doctypeState

	processingInstructionOpenState
	processingInstructionTargetState
	processingInstructionBeforeBodyState
	processingInstructionBodyState
	processingInstructionQuestionMarkState

	endTagOpenState
	endTagNameState
	afterEndTagNameState

	tagNameState
	selfClosingStartTagState
	beforeAttributeNameState
	attributeNameState
	afterAttributeNameState
	beforeAttributeValueState
	attributeValueDoubleQuotedState
	attributeValueSingleQuotedState
	attributeValueUnquotedState
	afterAttributeValueQuotedState

	// accepting states
	textEndState
	openTagState
	closingTagState
	emptyTagState
	commentEndedState
	cdataEndedState
	doctypeEndedState
	processingInstructionEndedState

	errorState
)

var stateNames = map[tokenizerState]string{
	initialState:                           "initial",
	textState:                              "text",
	tagOpenState:                           "tag open",
	markupDeclarationOpenState:             "markup declaration open",
	commentStartDashState:                  "comment start dash",
	commentState:                           "comment",
	commentEndDashState:                    "comment end dash",
	commentEndState:                        "comment end",
	cdataKeywordState:                      "CDATA keyword",
	cdataSectionState:                      "CDATA section",
	cdataSectionBracketState:               "CDATA section bracket",
	cdataSectionEndState:                   "CDATA section end",
	doctypeKeywordState:                    "DOCTYPE keyword",
	doctypeState:                           "DOCTYPE",
	processingInstructionOpenState:         "processing instruction open",
	processingInstructionTargetState:       "processing instruction target",
	processingInstructionBeforeBodyState:   "before processing instruction body",
	processingInstructionBodyState:         "processing instruction body",
	processingInstructionQuestionMarkState: "processing instruction question mark",
	endTagOpenState:                        "end tag open",
	endTagNameState:                        "end tag name",
	afterEndTagNameState:                   "after end tag name",
	tagNameState:                           "tag name",
	selfClosingStartTagState:               "self-closing start tag",
	beforeAttributeNameState:               "before attribute name",
	attributeNameState:                     "attribute name",
	afterAttributeNameState:                "after attribute name",
	beforeAttributeValueState:              "before attribute value",
	attributeValueDoubleQuotedState:        "attribute value (double-quoted)",
	attributeValueSingleQuotedState:        "attribute value (single-quoted)",
	attributeValueUnquotedState:            "attribute value (unquoted)",
	afterAttributeValueQuotedState:         "after attribute value (quoted)",
	textEndState:                           "text end",
	openTagState:                           "open tag",
	closingTagState:                        "closing tag",
	emptyTagState:                          "empty tag",
	commentEndedState:                      "comment ended",
	cdataEndedState:                        "CDATA ended",
	doctypeEndedState:                      "DOCTYPE ended",
	processingInstructionEndedState:        "processing instruction ended",
	errorState:                             "error",
}

func (s tokenizerState) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("tokenizerState(%d)", uint(s))
}

func (s tokenizerState) accepting() bool {
	return s >= textEndState && s < errorState
}

// expectations describes, per state, what would have been accepted. States
// that accept every byte have no entry.
var expectations = map[tokenizerState]string{
	tagOpenState:                     "'!', '?', '/' or a name start character",
	markupDeclarationOpenState:       "'-', '[' or 'D'",
	commentStartDashState:            "'-'",
	processingInstructionOpenState:   "a name start character",
	processingInstructionTargetState: "a name character, whitespace or '?'",
	endTagOpenState:                  "a name start character",
	endTagNameState:                  "a name character, whitespace or '>'",
	afterEndTagNameState:             "whitespace or '>'",
	tagNameState:                     "a name character, whitespace, '/' or '>'",
	selfClosingStartTagState:         "'>'",
	beforeAttributeNameState:         "whitespace, a name start character, '/' or '>'",
	attributeNameState:               "a name character, whitespace, '=', '/' or '>'",
	afterAttributeNameState:          "whitespace, a name start character, '=', '/' or '>'",
	beforeAttributeValueState:        `whitespace, '"' or '\''`,
	attributeValueDoubleQuotedState:  `an attribute value character or '"'`,
	attributeValueSingleQuotedState:  `an attribute value character or '\''`,
	afterAttributeValueQuotedState:   "whitespace, '/' or '>'",
}

const (
	cdataKeyword   = "CDATA["
	doctypeKeyword = "DOCTYPE"
)

type stateParser func(c byte) tokenizerState

// tokenizer holds the state of a single Recognize call.
type tokenizer struct {
	cfg Config
	b   tokenBuilder
	// matched counts keyword bytes seen in the keyword states.
	matched int
}

// Recognize recognizes the single token at the start of input.
//
// On success it returns the number of bytes the token spans and advances pos
// over them. A text run ends before the '<' that follows it, and that '<' is
// not counted.
//
// When input ends before any token is complete it returns 0, an Unknown token
// and ErrIncomplete, leaving pos untouched: supply more input and call again
// from the same start.
//
// On a byte with no valid transition it returns the offset of that byte, an
// Unknown token carrying the diagnostic and a *SyntaxError; pos is advanced up
// to the offending byte.
func (c Config) Recognize(input []byte, pos *Position) (int, Token, error) {
	t := &tokenizer{cfg: c}
	at := *pos
	state := initialState

	i := 0
	for i < len(input) && !state.accepting() {
		ch := input[i]
		next := t.stateToParser(state)(ch)
		if next == errorState {
			err := &SyntaxError{
				State:    state.String(),
				Expected: t.expected(state),
				Found:    ch,
				Line:     at.Line + 1,
				Column:   at.Column + 1,
			}
			*pos = at
			return i, unknownToken(err, at), err
		}
		state = next
		if state == textEndState {
			break
		}
		at.advance(ch)
		i++
	}

	if !state.accepting() {
		return 0, unknownToken(ErrIncomplete, *pos), ErrIncomplete
	}
	*pos = at
	return i, t.emit(state), nil
}

func unknownToken(err error, at Position) Unknown {
	return Unknown{
		Message: err.Error(),
		Line:    at.Line + 1,
		Column:  at.Column + 1,
		Err:     err,
	}
}

func (t *tokenizer) emit(state tokenizerState) Token {
	switch state {
	case textEndState:
		return t.b.Text()
	case openTagState:
		return t.b.OpenTag()
	case closingTagState:
		return t.b.ClosingTag()
	case emptyTagState:
		return t.b.EmptyTag()
	case commentEndedState:
		return t.b.Comment()
	case cdataEndedState:
		return t.b.CData()
	case doctypeEndedState:
		return t.b.Doctype()
	case processingInstructionEndedState:
		return t.b.ProcessingInstruction()
	}
	panic("parser: emit from non-accepting state " + state.String())
}

func (t *tokenizer) expected(state tokenizerState) string {
	switch state {
	case cdataKeywordState:
		return fmt.Sprintf("'%c'", cdataKeyword[t.matched])
	case doctypeKeywordState:
		return fmt.Sprintf("'%c'", doctypeKeyword[t.matched])
	case beforeAttributeValueState:
		if t.cfg.AllowUnquotedAttributeValue {
			return expectations[state] + " or an unquoted value"
		}
	case afterAttributeValueQuotedState:
		if t.cfg.AllowConcatenatedAttribute {
			return "whitespace, a name start character, '/' or '>'"
		}
	}
	if e, ok := expectations[state]; ok {
		return e
	}
	return "any character"
}

func (t *tokenizer) stateToParser(state tokenizerState) stateParser {
	switch state {
	case initialState:
		return t.initialStateParser
	case textState:
		return t.textStateParser
	case tagOpenState:
		return t.tagOpenStateParser
	case markupDeclarationOpenState:
		return t.markupDeclarationOpenStateParser
	case commentStartDashState:
		return t.commentStartDashStateParser
	case commentState:
		return t.commentStateParser
	case commentEndDashState:
		return t.commentEndDashStateParser
	case commentEndState:
		return t.commentEndStateParser
	case cdataKeywordState:
		return t.cdataKeywordStateParser
	case cdataSectionState:
		return t.cdataSectionStateParser
	case cdataSectionBracketState:
		return t.cdataSectionBracketStateParser
	case cdataSectionEndState:
		return t.cdataSectionEndStateParser
	case doctypeKeywordState:
		return t.doctypeKeywordStateParser
	case doctypeState:
		return t.doctypeStateParser
	case processingInstructionOpenState:
		return t.processingInstructionOpenStateParser
	case processingInstructionTargetState:
		return t.processingInstructionTargetStateParser
	case processingInstructionBeforeBodyState:
		return t.processingInstructionBeforeBodyStateParser
	case processingInstructionBodyState:
		return t.processingInstructionBodyStateParser
	case processingInstructionQuestionMarkState:
		return t.processingInstructionQuestionMarkStateParser
	case endTagOpenState:
		return t.endTagOpenStateParser
	case endTagNameState:
		return t.endTagNameStateParser
	case afterEndTagNameState:
		return t.afterEndTagNameStateParser
	case tagNameState:
		return t.tagNameStateParser
	case selfClosingStartTagState:
		return t.selfClosingStartTagStateParser
	case beforeAttributeNameState:
		return t.beforeAttributeNameStateParser
	case attributeNameState:
		return t.attributeNameStateParser
	case afterAttributeNameState:
		return t.afterAttributeNameStateParser
	case beforeAttributeValueState:
		return t.beforeAttributeValueStateParser
	case attributeValueDoubleQuotedState:
		return t.attributeValueDoubleQuotedStateParser
	case attributeValueSingleQuotedState:
		return t.attributeValueSingleQuotedStateParser
	case attributeValueUnquotedState:
		return t.attributeValueUnquotedStateParser
	case afterAttributeValueQuotedState:
		return t.afterAttributeValueQuotedStateParser
	}
	panic("parser: no parser for state " + state.String())
}

func (t *tokenizer) initialStateParser(c byte) tokenizerState {
	if c == '<' {
		return tagOpenState
	}
	t.b.skipData = t.cfg.SkipText
	t.b.WriteData(c)
	return textState
}

func (t *tokenizer) textStateParser(c byte) tokenizerState {
	if c == '<' {
		return textEndState
	}
	t.b.WriteData(c)
	return textState
}

func (t *tokenizer) tagOpenStateParser(c byte) tokenizerState {
	switch {
	case c == '!':
		return markupDeclarationOpenState
	case c == '?':
		return processingInstructionOpenState
	case c == '/':
		return endTagOpenState
	case isNameStart(c):
		t.b.WriteName(c)
		return tagNameState
	default:
		return errorState
	}
}
