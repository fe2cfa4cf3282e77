package parser

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// isNameStart reports whether c may start a tag, attribute or target name.
func isNameStart(c byte) bool {
	return isLetter(c)
}

// isName reports whether c may continue a name.
func isName(c byte) bool {
	return isLetter(c) || isDigit(c) || c == '.' || c == '-'
}

// isChar accepts every byte.
func isChar(byte) bool {
	return true
}

func toUpper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}
