package token

// HTMLTokenizer splits a document into tag and content tokens in a single pass.
// It never fails: malformed tag shapes are left for the grammar classifiers.
// It holds no state, so one instance may be shared between goroutines.
type HTMLTokenizer struct{}

func NewHTMLTokenizer() *HTMLTokenizer {
	return &HTMLTokenizer{}
}

// Tokenize converts the input string into a slice of Tokens in document order.
// Example: Input: `<p> hi </p>` Output: [TAG(<p>) CONTENT( hi ) TAG(</p>)]
func (t *HTMLTokenizer) Tokenize(input string) []Token {
	sc := scan{input: input}
	tokens := make([]Token, 0)

	for ; sc.pos < len(sc.input); sc.pos++ {
		switch sc.input[sc.pos] {
		case '>':
			tokens = append(tokens, sc.emit(sc.pos+1))
			sc.start = sc.pos + 1
		case '<':
			if sc.pos > 0 {
				if tok := sc.emit(sc.pos); !IsBlank(tok.Value) {
					tokens = append(tokens, tok)
				}
				sc.start = sc.pos
			}
		}
	}

	return tokens
}

// scan is the cursor of a single Tokenize call.
type scan struct {
	input string
	pos   int
	start int // first byte of the token being accumulated
}

func (sc *scan) emit(end int) Token {
	return Token{Value: sc.input[sc.start:end], Offset: sc.start}
}

// IsBlank reports whether s is empty or made only of word separators.
func IsBlank(s string) bool {
	for i := 0; i < len(s); i++ {
		if !IsWordSeparator(s[i]) {
			return false
		}
	}
	return true
}

// Whitespace recognized by the grammar: space, tab and newline.
func IsWordSeparator(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n'
}

// Tokenize is a shorthand for a fresh HTMLTokenizer run.
func Tokenize(input string) []Token {
	return NewHTMLTokenizer().Tokenize(input)
}

var _ Tokenizer = (*HTMLTokenizer)(nil)
