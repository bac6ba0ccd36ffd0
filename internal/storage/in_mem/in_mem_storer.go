package in_mem

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/DjordjeVuckovic/html-validator/internal/domain"
	"github.com/DjordjeVuckovic/html-validator/internal/storage"
	"github.com/google/uuid"
)

type InMemStorer struct {
	storageLock sync.RWMutex
	storage     map[uuid.UUID]domain.Run
}

func NewInMemStorer() *InMemStorer {
	return &InMemStorer{
		storage: make(map[uuid.UUID]domain.Run),
	}
}

func (s *InMemStorer) Save(ctx context.Context, run domain.Run) (uuid.UUID, error) {
	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}

	s.storageLock.Lock()
	defer s.storageLock.Unlock()
	s.storage[run.ID] = run

	slog.Debug("Saved validation run in memory", "id", run.ID, "source", run.Source, "valid", run.Valid)
	return run.ID, nil
}

func (s *InMemStorer) Get(ctx context.Context, id uuid.UUID) (*domain.Run, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	run, ok := s.storage[id]
	if !ok {
		return nil, storage.ErrRunNotFound
	}
	return &run, nil
}

func (s *InMemStorer) List(ctx context.Context, limit int, after *storage.Cursor) ([]domain.Run, error) {
	if limit <= 0 {
		limit = storage.DefaultListLimit
	}

	s.storageLock.RLock()
	runs := make([]domain.Run, 0, len(s.storage))
	for _, run := range s.storage {
		if after.Before(run) {
			runs = append(runs, run)
		}
	}
	s.storageLock.RUnlock()

	sort.Slice(runs, func(i, j int) bool {
		if runs[i].CreatedAt.Equal(runs[j].CreatedAt) {
			return runs[i].ID.String() > runs[j].ID.String()
		}
		return runs[i].CreatedAt.After(runs[j].CreatedAt)
	})

	if len(runs) > limit {
		runs = runs[:limit]
	}
	return runs, nil
}

func (s *InMemStorer) Close() {}

var _ storage.Repository = (*InMemStorer)(nil)
