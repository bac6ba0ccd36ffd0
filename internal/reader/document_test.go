package reader

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/html-validator/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadFile(t *testing.T) {
	// Arrange
	path := writeTestFile(t, "a.html", "<html>\n</html>\n")

	// Act
	doc, err := ReadFile(path)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, path, doc.Name)
	assert.Equal(t, "<html>\n</html>\n", doc.Text)
}

func TestReadFile_Empty(t *testing.T) {
	path := writeTestFile(t, "i.html", "")

	_, err := ReadFile(path)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrEmptyDocument)
	var ie *apperr.InputError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, apperr.EmptyDocument, ie.Kind)
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "z.html"))

	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrUnreadable)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestReadDocument(t *testing.T) {
	t.Run("reads everything", func(t *testing.T) {
		doc, err := ReadDocument(strings.NewReader("<p></p>"), "stdin")
		require.NoError(t, err)
		assert.Equal(t, "stdin", doc.Name)
		assert.Equal(t, "<p></p>", doc.Text)
	})

	t.Run("whitespace only is not empty", func(t *testing.T) {
		doc, err := ReadDocument(strings.NewReader(" \n"), "stdin")
		require.NoError(t, err)
		assert.Equal(t, " \n", doc.Text)
	})

	t.Run("read failure", func(t *testing.T) {
		_, err := ReadDocument(failingReader{}, "stdin")
		assert.ErrorIs(t, err, apperr.ErrUnreadable)
	})
}

func TestPromptFileName(t *testing.T) {
	var out strings.Builder

	name, err := PromptFileName(strings.NewReader("  a.html \n"), &out)

	require.NoError(t, err)
	assert.Equal(t, "a.html", name)
	assert.Contains(t, out.String(), "HTML Validator")
	assert.Contains(t, out.String(), "Enter the name of an html file")
}

func TestPromptFileName_ListsChoices(t *testing.T) {
	var out strings.Builder
	choices := []Choice{
		{Name: "a.html", Note: "valid"},
		{Name: "d.html", Note: "invalid - orphan closing tag"},
		{Name: "x.html"},
	}

	_, err := PromptFileName(strings.NewReader("a.html\n"), &out, choices...)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Provided test files:\na.html (valid)\nd.html (invalid - orphan closing tag)\nx.html\n\nEnter")
}

func TestPromptFileName_NoChoices(t *testing.T) {
	var out strings.Builder

	_, err := PromptFileName(strings.NewReader("a.html\n"), &out)

	require.NoError(t, err)
	assert.NotContains(t, out.String(), "Provided test files")
}

func TestPromptFileName_NoAnswer(t *testing.T) {
	_, err := PromptFileName(strings.NewReader(""), &strings.Builder{})

	assert.ErrorIs(t, err, ErrNoFileName)
}
