package grammar

import "github.com/DjordjeVuckovic/html-validator/internal/token"

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlphabet(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isWordSeparator(c byte) bool {
	return token.IsWordSeparator(c)
}

// trim strips word separators from both ends of s.
func trim(s string) string {
	start, end := 0, len(s)
	for start < end && isWordSeparator(s[start]) {
		start++
	}
	for end > start && isWordSeparator(s[end-1]) {
		end--
	}
	return s[start:end]
}
