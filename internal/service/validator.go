package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/html-validator/internal/apperr"
	"github.com/DjordjeVuckovic/html-validator/internal/domain"
	"github.com/DjordjeVuckovic/html-validator/internal/dto"
	"github.com/DjordjeVuckovic/html-validator/internal/report"
	"github.com/DjordjeVuckovic/html-validator/internal/storage"
	"github.com/DjordjeVuckovic/html-validator/internal/token"
	"github.com/DjordjeVuckovic/html-validator/internal/validator"
	"github.com/DjordjeVuckovic/html-validator/pkg/pagination"
	"github.com/google/uuid"
)

type Validator struct {
	repo      storage.Repository
	validator token.Validator
	now       func() time.Time
}

type Option func(*Validator)

func WithValidator(v token.Validator) Option {
	return func(s *Validator) {
		s.validator = v
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Validator) {
		s.now = now
	}
}

func NewValidator(repo storage.Repository, opts ...Option) *Validator {
	s := &Validator{
		repo:      repo,
		validator: validator.NewDefault(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Validate checks text and records the outcome. A malformed document is a
// successful run with Valid set to false; only empty input and storage
// failures are returned as errors.
func (s *Validator) Validate(ctx context.Context, source, text string) (*domain.Run, error) {
	if source == "" {
		source = domain.RunDefaultSource
	}
	if text == "" {
		return nil, apperr.NewEmptyDocument(source)
	}

	start := s.now()
	tokens := token.Tokenize(text)
	verr := s.validator.Validate(tokens)
	elapsed := s.now().Sub(start)

	run := domain.Run{
		ID:         uuid.New(),
		Source:     source,
		Valid:      verr == nil,
		TokenCount: len(tokens),
		Bytes:      len(text),
		Duration:   domain.Duration(elapsed),
		CreatedAt:  start.UTC(),
	}

	if verr != nil {
		var me *apperr.MalformedError
		if !errors.As(verr, &me) {
			return nil, fmt.Errorf("validate %s: %w", source, verr)
		}
		applyMalformed(&run, text, me)
	}

	id, err := s.repo.Save(ctx, run)
	if err != nil {
		slog.Error("Failed to save validation run", "source", source, "error", err)
		return nil, fmt.Errorf("save validation run: %w", err)
	}
	run.ID = id

	slog.Debug("Document validated",
		"id", run.ID,
		"source", source,
		"valid", run.Valid,
		"issue", run.Issue,
		"tokens", run.TokenCount,
	)

	return &run, nil
}

func (s *Validator) Get(ctx context.Context, id uuid.UUID) (*domain.Run, error) {
	return s.repo.Get(ctx, id)
}

// List returns one page of runs, newest first. The extra row fetched beyond
// the limit only decides whether a next cursor is issued.
func (s *Validator) List(ctx context.Context, req pagination.CursorRequest) (*pagination.CursorResult[domain.Run], error) {
	req.Normalize()

	c, err := dto.DecodeCursor(req.Cursor)
	if err != nil {
		return nil, apperr.NewValidationWrap("invalid cursor", err)
	}

	var after *storage.Cursor
	if c != nil {
		after = &storage.Cursor{CreatedAt: c.CreatedAt, ID: c.ID}
	}

	runs, err := s.repo.List(ctx, req.Limit+1, after)
	if err != nil {
		return nil, fmt.Errorf("list validation runs: %w", err)
	}

	return pagination.NewCursorResult(runs, req.Limit, func(r domain.Run) (string, error) {
		return dto.EncodeCursor(r.CreatedAt, r.ID)
	})
}

func applyMalformed(run *domain.Run, text string, me *apperr.MalformedError) {
	run.Issue = me.Issue.String()
	run.Token = me.Token
	run.Name = me.Name
	run.Expected = me.Expected
	run.Reason = me.Reason
	run.Offset = me.Offset

	if loc := report.Locate(text, me); loc.Found() {
		run.Line = loc.Line
		run.Column = loc.Column
	}
}
