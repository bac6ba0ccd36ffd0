package token

// Tokenizer splits a document into tokens. Implementations never fail;
// malformed shapes are left to the classifiers.
type Tokenizer interface {
	Tokenize(input string) []Token
}

// Validator checks a token stream and returns the first violation found.
type Validator interface {
	Validate(tokens []Token) error
}
