package report

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/DjordjeVuckovic/html-validator/internal/apperr"
)

type TextOptions struct {
	// Context limits how many lines up to and including the error line are
	// printed. Zero prints every line from the top of the document.
	Context int
}

// WriteText renders the outcome the way a terminal user reads it: the numbered
// source lines leading to the problem, a caret marker under the offending token
// and a one-line summary.
func WriteText(w io.Writer, source, text string, err error, opts TextOptions) error {
	if err == nil {
		_, werr := fmt.Fprintf(w, "%s is a valid HTML file according to the given grammar.\n", source)
		return werr
	}

	var me *apperr.MalformedError
	if !errors.As(err, &me) {
		_, werr := fmt.Fprintf(w, "ERROR: %s\n", err)
		return werr
	}

	loc := Locate(text, me)
	if !loc.Found() {
		_, werr := fmt.Fprintf(w, "[ERROR] %s %s\n", me.Token, me.Reason)
		return werr
	}

	var b strings.Builder
	b.WriteString("\n")

	lines := strings.Split(text, "\n")
	first := 1
	if opts.Context > 0 {
		first = max(1, loc.Line-opts.Context+1)
	}
	for n := first; n < loc.Line; n++ {
		fmt.Fprintf(&b, "%d: %s\n", n, strings.TrimSuffix(lines[n-1], "\r"))
	}

	prefix := fmt.Sprintf("%d: ", loc.Line)
	fmt.Fprintf(&b, "%s%s\n", prefix, loc.LineText)
	b.WriteString(strings.Repeat(" ", len(prefix)))
	b.WriteString(indent(loc.LineText, loc.Column-1))
	b.WriteString(strings.Repeat("^", max(markerWidth(loc.LineText, loc.Column-1, loc.Length), 1)))
	b.WriteString("\n")

	fmt.Fprintf(&b, "[ERROR] Line %d: %s %s\n", loc.Line, me.Token, me.Reason)

	_, werr := io.WriteString(w, b.String())
	return werr
}

// indent covers the first n bytes of line with one column per rune, keeping
// tabs so the caret lines up with the printed source line.
func indent(line string, n int) string {
	n = min(n, len(line))
	var b strings.Builder
	for _, r := range line[:n] {
		if r == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// markerWidth is the number of runes in the length bytes of line starting at
// byte offset start.
func markerWidth(line string, start, length int) int {
	if start < 0 || start >= len(line) {
		return length
	}
	end := min(start+length, len(line))
	return utf8.RuneCountInString(line[start:end])
}
