package grammar

// Vocabulary is the closed set of tag names accepted by the grammar.
// It is built once and only ever read, so it can be shared between runs.
type Vocabulary struct {
	names map[string]struct{}
	order []string
}

var defaultVocabulary = NewVocabulary("html", "head", "body", "p", "br", "li", "h1", "h2", "ul", "ol")

func NewVocabulary(names ...string) Vocabulary {
	v := Vocabulary{
		names: make(map[string]struct{}, len(names)),
		order: make([]string, 0, len(names)),
	}
	for _, n := range names {
		if _, ok := v.names[n]; ok {
			continue
		}
		v.names[n] = struct{}{}
		v.order = append(v.order, n)
	}
	return v
}

// DefaultVocabulary returns the ten tag names recognized by the validator.
func DefaultVocabulary() Vocabulary {
	return defaultVocabulary
}

// Contains is a case-sensitive exact match.
func (v Vocabulary) Contains(name string) bool {
	_, ok := v.names[name]
	return ok
}

// Names returns a copy of the vocabulary in declaration order.
func (v Vocabulary) Names() []string {
	out := make([]string, len(v.order))
	copy(out, v.order)
	return out
}

func (v Vocabulary) Len() int {
	return len(v.order)
}
