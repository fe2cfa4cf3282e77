package parser

import (
	"io"
	"iter"
	"slices"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const defaultBufferSize = 4096

// MalformedPolicy decides what a Scanner does with malformed markup.
type MalformedPolicy uint

const (
	// HaltOnMalformed stops the scan and reports the *SyntaxError from Err.
	HaltOnMalformed MalformedPolicy = iota
	// SkipMalformed emits an Unknown token, skips the offending byte and
	// carries on.
	SkipMalformed
)

// ScannerOption configures a Scanner.
type ScannerOption func(*Scanner)

// WithConfig sets the tokenizer configuration. The default is DefaultConfig().
func WithConfig(cfg Config) ScannerOption {
	return func(s *Scanner) { s.cfg = cfg }
}

// WithBufferSize sets the minimum number of bytes read from the source at a
// time. While a token stays incomplete each read grows to the size of the
// buffered input, so long tokens cost a logarithmic number of retries.
func WithBufferSize(n int) ScannerOption {
	return func(s *Scanner) {
		if n > 0 {
			s.bufferSize = n
		}
	}
}

// WithRawTextElements sets the elements whose content is scanned as raw text
// up to their closing tag. The default is script and style.
func WithRawTextElements(names ...string) ScannerOption {
	return func(s *Scanner) { s.rawText = MatchName(names...) }
}

// WithLogger sets the logger. The default is logrus.StandardLogger().
func WithLogger(l logrus.FieldLogger) ScannerOption {
	return func(s *Scanner) { s.log = l }
}

// WithMalformedPolicy sets what happens on malformed markup.
func WithMalformedPolicy(p MalformedPolicy) ScannerOption {
	return func(s *Scanner) { s.policy = p }
}

type positionedToken struct {
	tok Token
	pos Position
}

// Scanner drives the tokenizer over an io.Reader. It owns the buffering:
// when a token is incomplete it reads more input and retries from the same
// start, and it switches to raw-text scanning inside elements such as script.
type Scanner struct {
	reader io.Reader
	cfg    Config
	log    logrus.FieldLogger
	policy MalformedPolicy

	rawText func(name string) bool
	// rawTag is the raw-text element whose content comes next.
	rawTag string

	buf        []byte
	bufStart   int // absolute offset where buf starts
	bufPos     int // current position within buf
	bufferSize int
	eof        bool
	// readErr is a read failure held back until the buffered input is drained.
	readErr error

	pos    Position // position of buf[bufPos]
	tok    Token
	tokPos Position
	queue  []positionedToken
	err    error
	done   bool
}

// NewScanner creates a Scanner reading markup from r.
func NewScanner(r io.Reader, opts ...ScannerOption) *Scanner {
	s := &Scanner{
		reader:     r,
		cfg:        DefaultConfig(),
		log:        logrus.StandardLogger(),
		rawText:    MatchName("script", "style"),
		bufferSize: defaultBufferSize,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Next advances to the next token. It returns false at the end of the input
// or on an error; check Err to tell them apart.
func (s *Scanner) Next() bool {
	if len(s.queue) > 0 {
		s.tok, s.tokPos = s.queue[0].tok, s.queue[0].pos
		s.queue = s.queue[1:]
		return true
	}
	for !s.done {
		var emitted bool
		if s.rawTag != "" {
			emitted = s.stepRawText()
		} else {
			emitted = s.stepToken()
		}
		if emitted {
			return true
		}
	}
	return false
}

// Token returns the token found by the last call to Next.
func (s *Scanner) Token() Token {
	return s.tok
}

// Pos returns the position at which the current token starts.
func (s *Scanner) Pos() Position {
	return s.tokPos
}

// Err returns the error that ended the scan, if any. A read error is reported
// only after every token complete in the input read before it.
func (s *Scanner) Err() error {
	return s.err
}

// All iterates over the remaining tokens. A scan ending in an error yields
// one final (nil, err) pair.
func (s *Scanner) All() iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		for s.Next() {
			if !yield(s.tok, nil) {
				return
			}
		}
		if s.err != nil {
			yield(nil, s.err)
		}
	}
}

// Tokenize reads all tokens from r.
func Tokenize(r io.Reader, opts ...ScannerOption) ([]Token, error) {
	s := NewScanner(r, opts...)
	var tokens []Token
	for s.Next() {
		tokens = append(tokens, s.Token())
	}
	return tokens, s.Err()
}

func (s *Scanner) emit(tok Token, at Position) {
	s.tok = tok
	s.tokPos = at
}

func (s *Scanner) fail(err error) {
	s.err = err
	s.done = true
}

func (s *Scanner) stepToken() bool {
	input := s.buf[s.bufPos:]
	start := s.pos
	n, tok, err := s.cfg.Recognize(input, &s.pos)
	switch {
	case err == nil:
		s.bufPos += n
		s.emit(tok, start)
		if open, ok := tok.(OpenTag); ok && s.rawText(open.Name) {
			s.rawTag = open.Name
			s.log.WithFields(logrus.Fields{
				"element": open.Name,
				"pos":     s.pos.String(),
			}).Debug("switching to raw text")
		}
		return true
	case errors.Is(err, ErrIncomplete):
		if !s.eof {
			s.fill()
			return false
		}
		if s.readErr != nil {
			s.fail(s.readErr)
			return false
		}
		return s.finish(input, start)
	default:
		s.bufPos += n
		return s.malformed(tok, err)
	}
}

// finish handles what is left once the source is exhausted.
func (s *Scanner) finish(rest []byte, start Position) bool {
	s.done = true
	if len(rest) == 0 {
		return false
	}
	if rest[0] != '<' {
		var text Text
		if !s.cfg.SkipText {
			text.Content = string(rest)
		}
		s.pos.Advance(rest)
		s.bufPos += len(rest)
		s.emit(text, start)
		return true
	}
	s.fail(errors.Wrapf(ErrUnexpectedEOF, "unterminated markup at %s", start))
	return false
}

func (s *Scanner) malformed(tok Token, err error) bool {
	if s.policy == HaltOnMalformed {
		s.fail(errors.WithStack(err))
		return false
	}
	s.log.WithFields(logrus.Fields{
		"pos":    s.pos.String(),
		"offset": s.bufStart + s.bufPos,
	}).Warn(err.Error())
	s.emit(tok, s.pos)
	s.pos.advance(s.buf[s.bufPos])
	s.bufPos++
	return true
}

func (s *Scanner) stepRawText() bool {
	input := s.buf[s.bufPos:]
	start := s.pos
	n, raw, err := s.cfg.ScanRawText(input, MatchName(s.rawTag), &s.pos)
	if errors.Is(err, ErrIncomplete) {
		if !s.eof {
			s.fill()
			return false
		}
		if s.readErr != nil {
			s.fail(s.readErr)
			return false
		}
		s.pos.Advance(input)
		s.bufPos += n
		s.fail(errors.Wrapf(ErrUnexpectedEOF, "unterminated <%s> element at %s", s.rawTag, start))
		s.rawTag = ""
		if raw.Text == "" {
			return false
		}
		s.emit(s.rawTextToken(raw), start)
		return true
	}

	s.bufPos += n
	s.rawTag = ""
	closing := ClosingTag{Name: raw.EndTag}
	closingPos := start
	closingPos.Advance([]byte(raw.Text))
	if raw.Text == "" {
		s.emit(closing, closingPos)
		return true
	}
	s.emit(s.rawTextToken(raw), start)
	s.queue = append(s.queue, positionedToken{tok: closing, pos: closingPos})
	return true
}

func (s *Scanner) rawTextToken(raw RawText) Text {
	if s.cfg.SkipText {
		return Text{}
	}
	return Text{Content: raw.Text}
}

// fill reads more input, first dropping the consumed part of the buffer. The
// read is at least as large as what is already buffered, so the window
// doubles while one token stays incomplete.
func (s *Scanner) fill() {
	if s.bufPos > 0 {
		remaining := copy(s.buf, s.buf[s.bufPos:])
		s.buf = s.buf[:remaining]
		s.bufStart += s.bufPos
		s.bufPos = 0
	}

	size := max(s.bufferSize, len(s.buf))
	s.buf = slices.Grow(s.buf, size)
	n, err := s.reader.Read(s.buf[len(s.buf) : len(s.buf)+size])
	s.buf = s.buf[:len(s.buf)+n]
	s.log.WithFields(logrus.Fields{
		"read":     n,
		"buffered": len(s.buf),
		"offset":   s.bufStart,
	}).Debug("filled buffer")

	switch {
	case err == io.EOF:
		s.eof = true
	case err != nil:
		s.eof = true
		s.readErr = errors.Wrap(err, "reading markup")
	}
}
