package storage

import (
	"context"
	"time"

	"github.com/DjordjeVuckovic/html-validator/internal/domain"
	"github.com/DjordjeVuckovic/html-validator/pkg/pagination"
	"github.com/google/uuid"
)

const (
	DefaultListLimit = pagination.PageDefaultSize
	MaxListLimit     = pagination.PageMaxSize
)

// Cursor is the position of the last run of a page. Runs are ordered by
// CreatedAt then ID, both descending.
type Cursor struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

// Before reports whether run sorts strictly after the cursor position.
func (c *Cursor) Before(run domain.Run) bool {
	if c == nil {
		return true
	}
	if !run.CreatedAt.Equal(c.CreatedAt) {
		return run.CreatedAt.Before(c.CreatedAt)
	}
	return run.ID.String() < c.ID.String()
}

type Reader interface {
	// Get returns ErrRunNotFound for unknown ids.
	Get(ctx context.Context, id uuid.UUID) (*domain.Run, error)
	// List returns at most limit runs, newest first, positioned after the
	// cursor when one is given.
	List(ctx context.Context, limit int, after *Cursor) ([]domain.Run, error)
}

type Repository interface {
	Storer
	Reader
	Close()
}

// NormalizeLimit clamps a requested page size into [1, MaxListLimit].
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	return min(limit, MaxListLimit)
}
