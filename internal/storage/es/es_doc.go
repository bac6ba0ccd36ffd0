package es

import (
	"time"

	"github.com/DjordjeVuckovic/html-validator/internal/domain"
	"github.com/google/uuid"
)

// Document represents a validation run as stored in Elasticsearch
type Document struct {
	ID         string    `json:"id"`
	Source     string    `json:"source"`
	Valid      bool      `json:"valid"`
	Issue      string    `json:"issue"`
	Token      string    `json:"token"`
	Name       string    `json:"name"`
	Expected   string    `json:"expected"`
	Reason     string    `json:"reason"`
	Line       int       `json:"line"`
	Column     int       `json:"column"`
	Offset     int       `json:"offset"`
	TokenCount int       `json:"token_count"`
	Bytes      int       `json:"bytes"`
	DurationUs int64     `json:"duration_us"`
	CreatedAt  time.Time `json:"created_at"`
	IndexedAt  time.Time `json:"indexed_at"`
}

func toDocument(run domain.Run) Document {
	return Document{
		ID:         run.ID.String(),
		Source:     run.Source,
		Valid:      run.Valid,
		Issue:      run.Issue,
		Token:      run.Token,
		Name:       run.Name,
		Expected:   run.Expected,
		Reason:     run.Reason,
		Line:       run.Line,
		Column:     run.Column,
		Offset:     run.Offset,
		TokenCount: run.TokenCount,
		Bytes:      run.Bytes,
		DurationUs: run.Duration.Microseconds(),
		CreatedAt:  run.CreatedAt,
		IndexedAt:  time.Now().UTC(),
	}
}

func (d Document) toDomain() (*domain.Run, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, err
	}
	return &domain.Run{
		ID:         id,
		Source:     d.Source,
		Valid:      d.Valid,
		Issue:      d.Issue,
		Token:      d.Token,
		Name:       d.Name,
		Expected:   d.Expected,
		Reason:     d.Reason,
		Line:       d.Line,
		Column:     d.Column,
		Offset:     d.Offset,
		TokenCount: d.TokenCount,
		Bytes:      d.Bytes,
		Duration:   domain.Duration(time.Duration(d.DurationUs) * time.Microsecond),
		CreatedAt:  d.CreatedAt,
	}, nil
}
