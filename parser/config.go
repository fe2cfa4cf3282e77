package parser

// Config holds the toggles that widen or narrow what the tokenizer accepts.
// It is read-only while a token is being recognized and is passed by value,
// so every scan session can own and mutate its own copy.
type Config struct {
	// SkipText keeps recognizing text runs but drops their content.
	SkipText bool `yaml:"skip_text"`
	// SkipCDATA keeps recognizing CDATA sections but drops their content.
	SkipCDATA bool `yaml:"skip_cdata"`
	// SkipComment keeps recognizing comments but drops their content.
	SkipComment bool `yaml:"skip_comment"`
	// SkipPI keeps the target of processing instructions but drops the body.
	SkipPI bool `yaml:"skip_pi"`

	// AllowWeakCommentCoding tolerates any content in comment bodies.
	// Every byte is already a valid comment body byte.
	AllowWeakCommentCoding bool `yaml:"allow_weak_comment_coding"`
	// AllowWeakPICoding tolerates any content in processing instruction bodies.
	// Every byte is already a valid body byte.
	AllowWeakPICoding bool `yaml:"allow_weak_pi_coding"`
	// AllowWeakDoubleQuoteCoding accepts '<' inside a double quoted attribute value.
	AllowWeakDoubleQuoteCoding bool `yaml:"allow_weak_double_quote_coding"`
	// AllowWeakSingleQuoteCoding accepts '<' inside a single quoted attribute value.
	AllowWeakSingleQuoteCoding bool `yaml:"allow_weak_single_quote_coding"`
	// AllowUnquotedAttributeValue accepts values delimited by whitespace, '/' or '>'.
	AllowUnquotedAttributeValue bool `yaml:"allow_unquoted_attribute_value"`
	// AllowConcatenatedAttribute accepts an attribute name directly after a
	// quoted value, as in <a x="1"y="2">.
	AllowConcatenatedAttribute bool `yaml:"allow_concated_attribute"`
}

// DefaultConfig returns a configuration that keeps all content and enables
// every tolerance.
func DefaultConfig() Config {
	return Config{
		AllowWeakCommentCoding:      true,
		AllowWeakPICoding:           true,
		AllowWeakDoubleQuoteCoding:  true,
		AllowWeakSingleQuoteCoding:  true,
		AllowUnquotedAttributeValue: true,
		AllowConcatenatedAttribute:  true,
	}
}

// Strict returns a copy of c with every tolerance disabled. Skip flags are kept.
func (c Config) Strict() Config {
	c.AllowWeakCommentCoding = false
	c.AllowWeakPICoding = false
	c.AllowWeakDoubleQuoteCoding = false
	c.AllowWeakSingleQuoteCoding = false
	c.AllowUnquotedAttributeValue = false
	c.AllowConcatenatedAttribute = false
	return c
}
