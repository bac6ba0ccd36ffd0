package storage

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/html-validator/internal/apperr"
	"github.com/DjordjeVuckovic/html-validator/internal/domain"
	"github.com/google/uuid"
)

type Storer interface {
	Save(ctx context.Context, run domain.Run) (uuid.UUID, error)
}

type Type string

const (
	ES    Type = "es"
	PG    Type = "pg"
	InMem Type = "in_mem"
)

type StorerError string

const (
	ErrUnsupportedStorer StorerError = "unsupported storer type: %s"
)

func (e StorerError) Error() string {
	return string(e)
}

var ErrRunNotFound = fmt.Errorf("validation run %w", apperr.ErrNotFound)
