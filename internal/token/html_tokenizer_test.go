package token

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func values(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Value
	}
	return out
}

func TestHTMLTokenizer_Tokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "tags only",
			input:    "<html><head></head></html>",
			expected: []string{"<html>", "<head>", "</head>", "</html>"},
		},
		{
			name:     "content between tags",
			input:    "<p>text</p>",
			expected: []string{"<p>", "text", "</p>"},
		},
		{
			name:     "whitespace only content is dropped",
			input:    "<ul>\n\t  <li> </li>\n</ul>",
			expected: []string{"<ul>", "<li>", "</li>", "</ul>"},
		},
		{
			name:     "content keeps surrounding spaces",
			input:    "<p> a b </p>",
			expected: []string{"<p>", " a b ", "</p>"},
		},
		{
			name:     "empty tag",
			input:    "<p><br/></p>",
			expected: []string{"<p>", "<br/>", "</p>"},
		},
		{
			name:     "whitespace inside delimiters is preserved",
			input:    "< p ></ p >",
			expected: []string{"< p >", "</ p >"},
		},
		{
			name:     "leading content before first tag",
			input:    "hello<p></p>",
			expected: []string{"hello", "<p>", "</p>"},
		},
		{
			name:     "trailing content is not emitted",
			input:    "<p></p>tail",
			expected: []string{"<p>", "</p>"},
		},
		{
			name:     "unterminated tag is not emitted",
			input:    "<p></p><br",
			expected: []string{"<p>", "</p>"},
		},
		{
			name:     "stray open delimiter becomes content",
			input:    "<<p>",
			expected: []string{"<", "<p>"},
		},
		{
			name:     "empty input",
			input:    "",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := NewHTMLTokenizer().Tokenize(tt.input)
			assert.Equal(t, tt.expected, values(tokens))
		})
	}
}

func TestHTMLTokenizer_Offsets(t *testing.T) {
	input := "<html>\n  <p>hi</p>\n</html>"

	tokens := Tokenize(input)

	require.Len(t, tokens, 5)
	for _, tok := range tokens {
		assert.Equal(t, tok.Value, input[tok.Offset:tok.End()], "token %s", tok)
	}
	assert.Equal(t, 9, tokens[1].Offset)
	assert.Equal(t, "hi", tokens[2].Value)
	assert.Equal(t, 12, tokens[2].Offset)
}

func TestHTMLTokenizer_Kinds(t *testing.T) {
	tokens := Tokenize("<p>text</p>")

	require.Len(t, tokens, 3)
	assert.Equal(t, Tag, tokens[0].Kind())
	assert.Equal(t, Content, tokens[1].Kind())
	assert.Equal(t, Tag, tokens[2].Kind())
	assert.Equal(t, "CONTENT(text)", tokens[1].String())
}

func TestHTMLTokenizer_Repeatable(t *testing.T) {
	input := "<html><body><p>one</p> <p>two</p></body></html>"
	tokenizer := NewHTMLTokenizer()

	first := tokenizer.Tokenize(input)
	second := tokenizer.Tokenize(input)

	assert.Equal(t, first, second)
	assert.Equal(t, first, Tokenize(input))
}

func TestHTMLTokenizer_SharedInstance(t *testing.T) {
	tokenizer := NewHTMLTokenizer()
	inputs := []string{
		"<html><body><p>one</p></body></html>",
		"<ul><li>a</li><li>b</li></ul>",
		"text<br/>more<h1>t</h1>",
	}
	expected := make([][]Token, len(inputs))
	for i, in := range inputs {
		expected[i] = Tokenize(in)
	}

	var wg sync.WaitGroup
	got := make([][]Token, 64)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = tokenizer.Tokenize(inputs[i%len(inputs)])
		}(i)
	}
	wg.Wait()

	for i := range got {
		assert.Equal(t, expected[i%len(inputs)], got[i])
	}
}

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank(" \t\n"))
	assert.False(t, IsBlank(" x "))
	assert.False(t, IsBlank("\r"))
}
