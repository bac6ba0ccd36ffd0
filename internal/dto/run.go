package dto

import (
	"time"

	"github.com/DjordjeVuckovic/html-validator/internal/domain"
	"github.com/google/uuid"
)

type Run struct {
	ID         uuid.UUID `json:"id"`
	Source     string    `json:"source"`
	Valid      bool      `json:"valid"`
	Issue      string    `json:"issue,omitempty" enums:"unknown_tag,orphan_close,mismatched_close,unclosed_open"`
	Token      string    `json:"token,omitempty"`
	Name       string    `json:"name,omitempty"`
	Expected   string    `json:"expected,omitempty"`
	Reason     string    `json:"reason,omitempty"`
	Location   *Location `json:"location,omitempty"`
	TokenCount int       `json:"tokenCount"`
	Bytes      int       `json:"bytes"`
	DurationUs int64     `json:"durationUs"`
	CreatedAt  time.Time `json:"createdAt"`
}

type Location struct {
	Line   int `json:"line"`
	Column int `json:"column"`
	Offset int `json:"offset"`
}

const MaxBatchDocuments = 100

type BatchDocument struct {
	Source  string `json:"source" validate:"max=255"`
	Content string `json:"content"`
}

type BatchRequest struct {
	Documents []BatchDocument `json:"documents" validate:"required,min=1,max=100,dive"`
}

// BatchResult holds either the run or the reason the document was rejected.
type BatchResult struct {
	Source string `json:"source"`
	Run    *Run   `json:"run,omitempty"`
	Error  string `json:"error,omitempty"`
}

type BatchResponse struct {
	Results []BatchResult `json:"results"`
	Valid   int           `json:"valid"`
	Invalid int           `json:"invalid"`
}

func FromRun(r domain.Run) Run {
	out := Run{
		ID:         r.ID,
		Source:     r.Source,
		Valid:      r.Valid,
		Issue:      r.Issue,
		Token:      r.Token,
		Name:       r.Name,
		Expected:   r.Expected,
		Reason:     r.Reason,
		TokenCount: r.TokenCount,
		Bytes:      r.Bytes,
		DurationUs: r.Duration.Microseconds(),
		CreatedAt:  r.CreatedAt,
	}
	if !r.Valid && r.Line > 0 {
		out.Location = &Location{Line: r.Line, Column: r.Column, Offset: r.Offset}
	}
	return out
}
