// Package validator checks that a token stream is properly nested according
// to the grammar. It stops at the first violation and returns it as an
// *apperr.MalformedError.
package validator

import (
	"github.com/DjordjeVuckovic/html-validator/internal/apperr"
	"github.com/DjordjeVuckovic/html-validator/internal/grammar"
	"github.com/DjordjeVuckovic/html-validator/internal/token"
)

type openTag struct {
	tok  token.Token
	name string
}

type StackValidator struct {
	grammar *grammar.Grammar
}

func New(g *grammar.Grammar) *StackValidator {
	return &StackValidator{grammar: g}
}

func NewDefault() *StackValidator {
	return New(grammar.Default())
}

// Validate walks the tokens once with a fresh stack of open tags.
// Content, empty tags and shapes that are not tags at all have no stack effect.
func (v *StackValidator) Validate(tokens []token.Token) error {
	var stack []openTag

	for _, tok := range tokens {
		c := v.grammar.Classify(tok.Value)

		switch c.Kind {
		case grammar.UnknownTag:
			return apperr.NewUnknownTag(tok.Value, c.Name, tok.Offset)
		case grammar.Open:
			stack = append(stack, openTag{tok: tok, name: c.Name})
		case grammar.Close:
			if len(stack) == 0 {
				return apperr.NewOrphanClose(tok.Value, c.Name, tok.Offset)
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if top.name != c.Name {
				return apperr.NewMismatchedClose(tok.Value, c.Name, top.name, tok.Offset)
			}
		}
	}

	if len(stack) > 0 {
		top := stack[len(stack)-1]
		return apperr.NewUnclosedOpen(top.tok.Value, top.name, top.tok.Offset)
	}

	return nil
}

var _ token.Validator = (*StackValidator)(nil)

// ValidateText tokenizes and validates text with the default grammar.
func ValidateText(text string) error {
	return NewDefault().Validate(token.Tokenize(text))
}
