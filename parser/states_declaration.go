package parser

// Comments, CDATA sections and DOCTYPE declarations: everything after "<!".

func (t *tokenizer) markupDeclarationOpenStateParser(c byte) tokenizerState {
	switch {
	case c == '-':
		return commentStartDashState
	case c == '[':
		t.matched = 0
		return cdataKeywordState
	case toUpper(c) == doctypeKeyword[0]:
		t.matched = 1
		return doctypeKeywordState
	default:
		return errorState
	}
}

func (t *tokenizer) commentStartDashStateParser(c byte) tokenizerState {
	if c != '-' {
		return errorState
	}
	t.b.skipData = t.cfg.SkipComment
	return commentState
}

func (t *tokenizer) commentChar(c byte) bool {
	return isChar(c) || t.cfg.AllowWeakCommentCoding
}

func (t *tokenizer) commentStateParser(c byte) tokenizerState {
	switch {
	case c == '-':
		t.b.WritePending(c)
		return commentEndDashState
	case t.commentChar(c):
		t.b.WriteData(c)
		return commentState
	default:
		return errorState
	}
}

func (t *tokenizer) commentEndDashStateParser(c byte) tokenizerState {
	switch {
	case c == '-':
		t.b.WritePending(c)
		return commentEndState
	case t.commentChar(c):
		t.b.FlushPending()
		t.b.WriteData(c)
		return commentState
	default:
		return errorState
	}
}

func (t *tokenizer) commentEndStateParser(c byte) tokenizerState {
	switch {
	case c == '>':
		t.b.DropPending()
		return commentEndedState
	case c == '-':
		t.b.FlushOnePending()
		t.b.WritePending(c)
		return commentEndState
	case t.commentChar(c):
		t.b.FlushPending()
		t.b.WriteData(c)
		return commentState
	default:
		return errorState
	}
}

// The CDATA keyword is matched case-sensitively.
func (t *tokenizer) cdataKeywordStateParser(c byte) tokenizerState {
	if c != cdataKeyword[t.matched] {
		return errorState
	}
	t.matched++
	if t.matched < len(cdataKeyword) {
		return cdataKeywordState
	}
	t.b.skipData = t.cfg.SkipCDATA
	return cdataSectionState
}

func (t *tokenizer) cdataSectionStateParser(c byte) tokenizerState {
	if c == ']' {
		t.b.WritePending(c)
		return cdataSectionBracketState
	}
	t.b.WriteData(c)
	return cdataSectionState
}

func (t *tokenizer) cdataSectionBracketStateParser(c byte) tokenizerState {
	if c == ']' {
		t.b.WritePending(c)
		return cdataSectionEndState
	}
	t.b.FlushPending()
	t.b.WriteData(c)
	return cdataSectionState
}

func (t *tokenizer) cdataSectionEndStateParser(c byte) tokenizerState {
	switch c {
	case '>':
		t.b.DropPending()
		return cdataEndedState
	case ']':
		t.b.FlushOnePending()
		t.b.WritePending(c)
		return cdataSectionEndState
	default:
		t.b.FlushPending()
		t.b.WriteData(c)
		return cdataSectionState
	}
}

// The DOCTYPE keyword is matched case-insensitively.
func (t *tokenizer) doctypeKeywordStateParser(c byte) tokenizerState {
	if toUpper(c) != doctypeKeyword[t.matched] {
		return errorState
	}
	t.matched++
	if t.matched < len(doctypeKeyword) {
		return doctypeKeywordState
	}
	t.b.skipData = false
	return doctypeState
}

// doctypeStateParser keeps everything up to the first '>' as the opaque
// declaration body. Brackets and quotes are not tracked.
func (t *tokenizer) doctypeStateParser(c byte) tokenizerState {
	if c == '>' {
		return doctypeEndedState
	}
	t.b.WriteData(c)
	return doctypeState
}
