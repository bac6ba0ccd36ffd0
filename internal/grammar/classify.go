// Package grammar classifies tag tokens against the minimal HTML grammar:
//
//	tag      = open | close | empty
//	open     = "<" ws* name ws* ">"
//	close    = "</" ws* name ws* ">"
//	empty    = "<" ws* name ws* "/>"
//	name     = alpha (alpha | digit)*
//	ws       = " " | "\t" | "\n"
//
// Open and empty tag names must also belong to the Vocabulary. Close tag
// names are only checked for shape; a close tag naming an unknown element
// surfaces later as a mismatch or an orphan.
//
// All classifiers are pure and safe for concurrent use.
package grammar

import "strings"

type Kind int

const (
	Invalid Kind = iota
	Content
	Open
	Close
	Empty
	UnknownTag
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "INVALID"
	case Content:
		return "CONTENT"
	case Open:
		return "OPEN"
	case Close:
		return "CLOSE"
	case Empty:
		return "EMPTY"
	case UnknownTag:
		return "UNKNOWN_TAG"
	default:
		return "UNKNOWN"
	}
}

// Classification is the derived shape of a single token.
// Name is the trimmed text between the delimiters for tag shapes.
type Classification struct {
	Kind Kind
	Name string
}

// Grammar binds the shape rules to a vocabulary.
type Grammar struct {
	vocabulary Vocabulary
}

func New(vocabulary Vocabulary) *Grammar {
	return &Grammar{vocabulary: vocabulary}
}

// Default returns the grammar over DefaultVocabulary.
func Default() *Grammar {
	return New(DefaultVocabulary())
}

func (g *Grammar) Vocabulary() Vocabulary {
	return g.vocabulary
}

// Classify checks the open, close and empty shapes in that order.
func (g *Grammar) Classify(s string) Classification {
	if name, ok := openInterior(s); ok {
		return g.named(Open, name)
	}
	if name, ok := closeInterior(s); ok {
		if !IsTagName(name) {
			return Classification{Kind: Invalid, Name: name}
		}
		return Classification{Kind: Close, Name: name}
	}
	if name, ok := emptyInterior(s); ok {
		return g.named(Empty, name)
	}
	if IsCharData(s) {
		return Classification{Kind: Content}
	}
	return Classification{Kind: Invalid}
}

func (g *Grammar) named(kind Kind, name string) Classification {
	if !g.ValidateTag(name) || !IsTagName(name) {
		return Classification{Kind: UnknownTag, Name: name}
	}
	return Classification{Kind: kind, Name: name}
}

// ValidateTag reports whether name is part of the vocabulary.
func (g *Grammar) ValidateTag(name string) bool {
	return g.vocabulary.Contains(name)
}

// IsTagOpen reports whether s is "<name>" with a recognized name.
func (g *Grammar) IsTagOpen(s string) bool {
	return g.Classify(s).Kind == Open
}

// IsTagClose reports whether s is "</name>" with a well-formed name.
func (g *Grammar) IsTagClose(s string) bool {
	return g.Classify(s).Kind == Close
}

// IsTagEmpty reports whether s is "<name/>" with a recognized name.
func (g *Grammar) IsTagEmpty(s string) bool {
	return g.Classify(s).Kind == Empty
}

// IsTagName reports whether s matches [A-Za-z][A-Za-z0-9]*.
func IsTagName(s string) bool {
	if s == "" {
		return false
	}
	for i := len(s) - 1; i > 0; i-- {
		if !isAlphabet(s[i]) && !isDigit(s[i]) {
			return false
		}
	}
	return isAlphabet(s[0])
}

// IsCharData reports whether s can appear as text between tags.
func IsCharData(s string) bool {
	return !strings.ContainsRune(s, '<')
}

// CompareTags reports whether an open and a close token name the same element.
func CompareTags(open, close string) bool {
	openName, ok := openInterior(open)
	if !ok {
		return false
	}
	closeName, ok := closeInterior(close)
	if !ok {
		return false
	}
	return openName == closeName
}

func openInterior(s string) (string, bool) {
	n := len(s)
	if n < 2 || s[0] != '<' || s[n-1] != '>' || s[n-2] == '/' || s[1] == '/' {
		return "", false
	}
	return trim(s[1 : n-1]), true
}

func closeInterior(s string) (string, bool) {
	n := len(s)
	if n < 3 || s[0] != '<' || s[1] != '/' || s[n-1] != '>' || s[n-2] == '/' {
		return "", false
	}
	return trim(s[2 : n-1]), true
}

func emptyInterior(s string) (string, bool) {
	n := len(s)
	if n < 3 || s[0] != '<' || s[n-2] != '/' || s[n-1] != '>' {
		return "", false
	}
	return trim(s[1 : n-2]), true
}

var std = Default()

func Classify(s string) Classification { return std.Classify(s) }
func ValidateTag(name string) bool     { return std.ValidateTag(name) }
func IsTagOpen(s string) bool          { return std.IsTagOpen(s) }
func IsTagClose(s string) bool         { return std.IsTagClose(s) }
func IsTagEmpty(s string) bool         { return std.IsTagEmpty(s) }
