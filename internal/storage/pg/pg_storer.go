package pg

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DjordjeVuckovic/html-validator/internal/domain"
	"github.com/DjordjeVuckovic/html-validator/internal/storage"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Storer struct {
	db   *pgxpool.Pool
	pool *ConnectionPool
}

func NewStorer(pool *ConnectionPool) (*Storer, error) {
	if pool == nil {
		return nil, errors.New("connection pool is required")
	}
	return &Storer{db: pool.conn, pool: pool}, nil
}

func (s *Storer) Save(ctx context.Context, run domain.Run) (uuid.UUID, error) {
	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	cmd := `
        INSERT INTO validation_runs (` + runColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
        RETURNING id;
    `
	var id uuid.UUID
	err := s.db.QueryRow(
		ctx,
		cmd,
		run.ID,
		run.Source,
		run.Valid,
		run.Issue,
		run.Token,
		run.Name,
		run.Expected,
		run.Reason,
		run.Line,
		run.Column,
		run.Offset,
		run.TokenCount,
		run.Bytes,
		run.Duration.Microseconds(),
		run.CreatedAt,
	).Scan(&id)
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("failed to insert validation run: %w", err)
	}

	return id, nil
}

func (s *Storer) Get(ctx context.Context, id uuid.UUID) (*domain.Run, error) {
	row := s.db.QueryRow(ctx, `SELECT `+runColumns+` FROM validation_runs WHERE id = $1`, id)

	run, err := scanRun(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, storage.ErrRunNotFound
	}
	if err != nil {
		return nil, err
	}
	return run, nil
}

func (s *Storer) List(ctx context.Context, limit int, after *storage.Cursor) ([]domain.Run, error) {
	if limit <= 0 {
		limit = storage.DefaultListLimit
	}

	query := `SELECT ` + runColumns + ` FROM validation_runs ORDER BY created_at DESC, id DESC LIMIT $1`
	args := []any{limit}
	if after != nil {
		query = `SELECT ` + runColumns + ` FROM validation_runs
			WHERE (created_at, id) < ($2, $3)
			ORDER BY created_at DESC, id DESC LIMIT $1`
		args = append(args, after.CreatedAt, after.ID)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query validation runs: %w", err)
	}
	defer rows.Close()

	runs := make([]domain.Run, 0)
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate validation runs: %w", err)
	}

	return runs, nil
}

func (s *Storer) Close() {
	s.pool.Close()
}

var _ storage.Repository = (*Storer)(nil)
