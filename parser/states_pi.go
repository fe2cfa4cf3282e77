package parser

func (t *tokenizer) piChar(c byte) bool {
	return isChar(c) || t.cfg.AllowWeakPICoding
}

func (t *tokenizer) processingInstructionOpenStateParser(c byte) tokenizerState {
	if !isNameStart(c) {
		return errorState
	}
	t.b.WriteName(c)
	return processingInstructionTargetState
}

func (t *tokenizer) processingInstructionTargetStateParser(c byte) tokenizerState {
	switch {
	case isName(c):
		t.b.WriteName(c)
		return processingInstructionTargetState
	case isSpace(c):
		t.b.skipData = t.cfg.SkipPI
		return processingInstructionBeforeBodyState
	case c == '?':
		t.b.skipData = t.cfg.SkipPI
		t.b.WritePending(c)
		return processingInstructionQuestionMarkState
	default:
		return errorState
	}
}

func (t *tokenizer) processingInstructionBeforeBodyStateParser(c byte) tokenizerState {
	switch {
	case isSpace(c):
		return processingInstructionBeforeBodyState
	case c == '?':
		t.b.WritePending(c)
		return processingInstructionQuestionMarkState
	case t.piChar(c):
		t.b.WriteData(c)
		return processingInstructionBodyState
	default:
		return errorState
	}
}

func (t *tokenizer) processingInstructionBodyStateParser(c byte) tokenizerState {
	switch {
	case c == '?':
		t.b.WritePending(c)
		return processingInstructionQuestionMarkState
	case t.piChar(c):
		t.b.WriteData(c)
		return processingInstructionBodyState
	default:
		return errorState
	}
}

func (t *tokenizer) processingInstructionQuestionMarkStateParser(c byte) tokenizerState {
	switch {
	case c == '>':
		t.b.DropPending()
		return processingInstructionEndedState
	case c == '?':
		t.b.FlushOnePending()
		t.b.WritePending(c)
		return processingInstructionQuestionMarkState
	case t.piChar(c):
		t.b.FlushPending()
		t.b.WriteData(c)
		return processingInstructionBodyState
	default:
		return errorState
	}
}
