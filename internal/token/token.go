package token

type Kind int

const (
	Content Kind = iota
	Tag
)

func (k Kind) String() string {
	switch k {
	case Content:
		return "CONTENT"
	case Tag:
		return "TAG"
	default:
		return "UNKNOWN"
	}
}

// Token is a slice of the source text together with the byte offset it starts at.
type Token struct {
	Value  string
	Offset int
}

// Kind is derived from the text: tag tokens are always closed by '>',
// content tokens never contain one.
func (t Token) Kind() Kind {
	if n := len(t.Value); n > 0 && t.Value[n-1] == '>' {
		return Tag
	}
	return Content
}

func (t Token) End() int {
	return t.Offset + len(t.Value)
}

func (t Token) String() string {
	return t.Kind().String() + "(" + t.Value + ")"
}
