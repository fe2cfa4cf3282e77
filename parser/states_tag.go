package parser

// Closing tags, opening tags and their attributes.

func (t *tokenizer) endTagOpenStateParser(c byte) tokenizerState {
	if !isNameStart(c) {
		return errorState
	}
	t.b.WriteName(c)
	return endTagNameState
}

func (t *tokenizer) endTagNameStateParser(c byte) tokenizerState {
	switch {
	case isName(c):
		t.b.WriteName(c)
		return endTagNameState
	case isSpace(c):
		return afterEndTagNameState
	case c == '>':
		return closingTagState
	default:
		return errorState
	}
}

func (t *tokenizer) afterEndTagNameStateParser(c byte) tokenizerState {
	switch {
	case isSpace(c):
		return afterEndTagNameState
	case c == '>':
		return closingTagState
	default:
		return errorState
	}
}

func (t *tokenizer) tagNameStateParser(c byte) tokenizerState {
	switch {
	case isName(c):
		t.b.WriteName(c)
		return tagNameState
	case isSpace(c):
		return beforeAttributeNameState
	case c == '/':
		return selfClosingStartTagState
	case c == '>':
		return openTagState
	default:
		return errorState
	}
}

func (t *tokenizer) selfClosingStartTagStateParser(c byte) tokenizerState {
	if c == '>' {
		return emptyTagState
	}
	return errorState
}

func (t *tokenizer) beforeAttributeNameStateParser(c byte) tokenizerState {
	switch {
	case isSpace(c):
		return beforeAttributeNameState
	case c == '/':
		return selfClosingStartTagState
	case c == '>':
		return openTagState
	case isNameStart(c):
		t.b.WriteAttributeName(c)
		return attributeNameState
	default:
		return errorState
	}
}

func (t *tokenizer) attributeNameStateParser(c byte) tokenizerState {
	switch {
	case isName(c):
		t.b.WriteAttributeName(c)
		return attributeNameState
	case isSpace(c):
		return afterAttributeNameState
	case c == '=':
		return beforeAttributeValueState
	case c == '/':
		t.b.CommitAttribute()
		return selfClosingStartTagState
	case c == '>':
		t.b.CommitAttribute()
		return openTagState
	default:
		return errorState
	}
}

func (t *tokenizer) afterAttributeNameStateParser(c byte) tokenizerState {
	switch {
	case isSpace(c):
		return afterAttributeNameState
	case c == '=':
		return beforeAttributeValueState
	case c == '/':
		t.b.CommitAttribute()
		return selfClosingStartTagState
	case c == '>':
		t.b.CommitAttribute()
		return openTagState
	case isNameStart(c):
		t.b.CommitAttribute()
		t.b.WriteAttributeName(c)
		return attributeNameState
	default:
		return errorState
	}
}

func (t *tokenizer) beforeAttributeValueStateParser(c byte) tokenizerState {
	switch {
	case isSpace(c):
		return beforeAttributeValueState
	case c == '"':
		return attributeValueDoubleQuotedState
	case c == '\'':
		return attributeValueSingleQuotedState
	case !t.cfg.AllowUnquotedAttributeValue:
		return errorState
	case c == '>':
		t.b.CommitAttribute()
		return openTagState
	default:
		t.b.WriteAttributeValue(c)
		return attributeValueUnquotedState
	}
}

func (t *tokenizer) attributeValueDoubleQuotedStateParser(c byte) tokenizerState {
	switch {
	case c == '"':
		t.b.CommitAttribute()
		return afterAttributeValueQuotedState
	case c == '<' && !t.cfg.AllowWeakDoubleQuoteCoding:
		return errorState
	default:
		t.b.WriteAttributeValue(c)
		return attributeValueDoubleQuotedState
	}
}

func (t *tokenizer) attributeValueSingleQuotedStateParser(c byte) tokenizerState {
	switch {
	case c == '\'':
		t.b.CommitAttribute()
		return afterAttributeValueQuotedState
	case c == '<' && !t.cfg.AllowWeakSingleQuoteCoding:
		return errorState
	default:
		t.b.WriteAttributeValue(c)
		return attributeValueSingleQuotedState
	}
}

func (t *tokenizer) attributeValueUnquotedStateParser(c byte) tokenizerState {
	switch {
	case isSpace(c):
		t.b.CommitAttribute()
		return beforeAttributeNameState
	case c == '/':
		t.b.CommitAttribute()
		return selfClosingStartTagState
	case c == '>':
		t.b.CommitAttribute()
		return openTagState
	default:
		t.b.WriteAttributeValue(c)
		return attributeValueUnquotedState
	}
}

func (t *tokenizer) afterAttributeValueQuotedStateParser(c byte) tokenizerState {
	switch {
	case isSpace(c):
		return beforeAttributeNameState
	case c == '/':
		return selfClosingStartTagState
	case c == '>':
		return openTagState
	case isNameStart(c) && t.cfg.AllowConcatenatedAttribute:
		t.b.WriteAttributeName(c)
		return attributeNameState
	default:
		return errorState
	}
}
