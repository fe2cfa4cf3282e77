package parser

import "strings"

type rawTextState uint

const (
	rawTextDataState rawTextState = iota
	rawTextLessThanSignState
	rawTextEndTagOpenState
	rawTextEndTagNameState
	rawTextAfterEndTagNameState
	rawTextEndState
)

// RawText is the content of a raw-text element.
type RawText struct {
	// Text is the content verbatim, without the closing tag.
	Text string
	// EndTag is the closing tag name as written in the input.
	EndTag string
}

// rawTextScanner holds the state of a single ScanRawText call.
type rawTextScanner struct {
	accept func(name string) bool
	text   strings.Builder
	// name and space hold the candidate closing tag until it is accepted or
	// proven wrong.
	name  strings.Builder
	space strings.Builder
}

// ScanRawText accumulates input verbatim until a closing tag whose name is
// accepted by accept, such as the </script> ending a script element. Case
// handling is up to accept.
//
// On success it returns the number of bytes up to and including the closing
// tag's '>' and advances pos over them. Closing tags that are not accepted, and
// anything that only looks like the start of one, stay part of the text.
//
// When input ends first it returns len(input), everything scanned as text and
// ErrIncomplete, leaving pos untouched. Retry from the same start with more
// input, or at the true end of the stream keep the text and call pos.Advance.
func (c Config) ScanRawText(input []byte, accept func(name string) bool, pos *Position) (int, RawText, error) {
	s := &rawTextScanner{accept: accept}
	at := *pos
	state := rawTextDataState

	i := 0
	for i < len(input) && state != rawTextEndState {
		state = s.stateToParser(state)(input[i])
		at.advance(input[i])
		i++
	}

	if state != rawTextEndState {
		s.flushCandidate(state)
		return i, RawText{Text: s.text.String()}, ErrIncomplete
	}
	*pos = at
	return i, RawText{Text: s.text.String(), EndTag: s.name.String()}, nil
}

// MatchName returns an acceptance predicate for ScanRawText matching any of
// names, ignoring ASCII case.
func MatchName(names ...string) func(string) bool {
	return func(name string) bool {
		for _, n := range names {
			if strings.EqualFold(n, name) {
				return true
			}
		}
		return false
	}
}

type rawTextStateParser func(c byte) rawTextState

func (s *rawTextScanner) stateToParser(state rawTextState) rawTextStateParser {
	switch state {
	case rawTextDataState:
		return s.rawTextDataStateParser
	case rawTextLessThanSignState:
		return s.rawTextLessThanSignStateParser
	case rawTextEndTagOpenState:
		return s.rawTextEndTagOpenStateParser
	case rawTextEndTagNameState:
		return s.rawTextEndTagNameStateParser
	case rawTextAfterEndTagNameState:
		return s.rawTextAfterEndTagNameStateParser
	}
	panic("parser: no raw text parser for state")
}

// flushCandidate writes the bytes of an abandoned closing tag candidate back
// into the text.
func (s *rawTextScanner) flushCandidate(state rawTextState) {
	switch state {
	case rawTextLessThanSignState:
		s.text.WriteByte('<')
	case rawTextEndTagOpenState, rawTextEndTagNameState, rawTextAfterEndTagNameState:
		s.text.WriteString("</")
	}
	s.text.WriteString(s.name.String())
	s.text.WriteString(s.space.String())
	s.name.Reset()
	s.space.Reset()
}

// mismatch abandons the candidate at c. The candidate and c, even a '<', are
// kept as text and scanning resumes after c.
func (s *rawTextScanner) mismatch(state rawTextState, c byte) rawTextState {
	s.flushCandidate(state)
	s.text.WriteByte(c)
	return rawTextDataState
}

func (s *rawTextScanner) rawTextDataStateParser(c byte) rawTextState {
	if c == '<' {
		return rawTextLessThanSignState
	}
	s.text.WriteByte(c)
	return rawTextDataState
}

func (s *rawTextScanner) rawTextLessThanSignStateParser(c byte) rawTextState {
	if c == '/' {
		return rawTextEndTagOpenState
	}
	return s.mismatch(rawTextLessThanSignState, c)
}

func (s *rawTextScanner) rawTextEndTagOpenStateParser(c byte) rawTextState {
	if isNameStart(c) {
		s.name.WriteByte(c)
		return rawTextEndTagNameState
	}
	return s.mismatch(rawTextEndTagOpenState, c)
}

func (s *rawTextScanner) rawTextEndTagNameStateParser(c byte) rawTextState {
	switch {
	case isName(c):
		s.name.WriteByte(c)
		return rawTextEndTagNameState
	case isSpace(c):
		s.space.WriteByte(c)
		return rawTextAfterEndTagNameState
	case c == '>' && s.accept(s.name.String()):
		return rawTextEndState
	}
	return s.mismatch(rawTextEndTagNameState, c)
}

func (s *rawTextScanner) rawTextAfterEndTagNameStateParser(c byte) rawTextState {
	switch {
	case isSpace(c):
		s.space.WriteByte(c)
		return rawTextAfterEndTagNameState
	case c == '>' && s.accept(s.name.String()):
		return rawTextEndState
	}
	return s.mismatch(rawTextAfterEndTagNameState, c)
}
