package report

import (
	"strings"

	"github.com/DjordjeVuckovic/html-validator/internal/apperr"
)

// Location points at the offending token inside the document text.
// Line and Column are 1-based; Line is 0 when the token could not be found.
type Location struct {
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Length   int    `json:"length"`
	LineText string `json:"-"`
}

func (l Location) Found() bool {
	return l.Line > 0
}

// Locate resolves the position of a malformed-document error. The token offset
// recorded by the tokenizer is used when it still matches the text; otherwise
// the text is re-scanned line by line for the first occurrence of the token.
func Locate(text string, me *apperr.MalformedError) Location {
	if me == nil {
		return Location{}
	}
	if me.Offset >= 0 && me.Offset+len(me.Token) <= len(text) && text[me.Offset:me.Offset+len(me.Token)] == me.Token {
		return LocateOffset(text, me.Offset, len(me.Token))
	}
	return Scan(text, me.Token)
}

// LocateOffset converts a byte offset into a line/column pair.
func LocateOffset(text string, offset, length int) Location {
	before := text[:offset]
	lineStart := strings.LastIndexByte(before, '\n') + 1
	lineEnd := strings.IndexByte(text[offset:], '\n')
	if lineEnd < 0 {
		lineEnd = len(text)
	} else {
		lineEnd += offset
	}

	// a token spanning lines is marked up to the end of its first line
	length = min(length, lineEnd-offset)

	return Location{
		Line:     strings.Count(before, "\n") + 1,
		Column:   offset - lineStart + 1,
		Length:   length,
		LineText: strings.TrimSuffix(text[lineStart:lineEnd], "\r"),
	}
}

// Scan finds the first line containing tok. This can point at an earlier,
// unrelated occurrence of the same text.
func Scan(text, tok string) Location {
	first, _, _ := strings.Cut(tok, "\n")
	if first == "" {
		return Location{}
	}

	for i, line := range strings.Split(text, "\n") {
		if col := strings.Index(line, first); col >= 0 {
			return Location{
				Line:     i + 1,
				Column:   col + 1,
				Length:   len(first),
				LineText: strings.TrimSuffix(line, "\r"),
			}
		}
	}
	return Location{}
}
