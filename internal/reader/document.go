package reader

import (
	"io"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/html-validator/internal/apperr"
)

type FileReader struct {
	path string
}

func NewFileReader(path string) *FileReader {
	return &FileReader{path: path}
}

// Read loads the whole file. A missing or unreadable file is apperr.Unreadable,
// a zero-byte file is apperr.EmptyDocument.
func (r *FileReader) Read() (*Document, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, apperr.NewUnreadable(r.path, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("Failed to close document", "path", r.path, "error", err)
		}
	}()

	return ReadDocument(f, r.path)
}

func ReadFile(path string) (*Document, error) {
	return NewFileReader(path).Read()
}

// ReadDocument drains r into a Document named name.
func ReadDocument(r io.Reader, name string) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, apperr.NewUnreadable(name, err)
	}
	if len(data) == 0 {
		return nil, apperr.NewEmptyDocument(name)
	}
	return &Document{Name: name, Text: string(data)}, nil
}

var _ Reader = (*FileReader)(nil)
