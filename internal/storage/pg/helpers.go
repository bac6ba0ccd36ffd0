package pg

import (
	"fmt"
	"time"

	"github.com/DjordjeVuckovic/html-validator/internal/domain"
	"github.com/jackc/pgx/v5"
)

const runColumns = "id, source, valid, issue, token, name, expected, reason, line, col, byte_offset, token_count, bytes, duration_us, created_at"

func scanRun(row pgx.Row) (*domain.Run, error) {
	var run domain.Run
	var durationUs int64

	if err := row.Scan(
		&run.ID,
		&run.Source,
		&run.Valid,
		&run.Issue,
		&run.Token,
		&run.Name,
		&run.Expected,
		&run.Reason,
		&run.Line,
		&run.Column,
		&run.Offset,
		&run.TokenCount,
		&run.Bytes,
		&durationUs,
		&run.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("failed to scan validation run: %w", err)
	}

	run.Duration = domain.Duration(time.Duration(durationUs) * time.Microsecond)
	run.CreatedAt = run.CreatedAt.UTC()
	return &run, nil
}
