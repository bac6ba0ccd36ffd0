package dto

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/html-validator/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeCursor(t *testing.T) {
	id := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	createdAt := time.Date(2026, 2, 3, 4, 5, 6, 789000, time.FixedZone("CET", 3600))

	t.Run("round trip", func(t *testing.T) {
		encoded, err := EncodeCursor(createdAt, id)
		require.NoError(t, err)
		require.NotEmpty(t, encoded)

		decoded, err := DecodeCursor(encoded)
		require.NoError(t, err)
		assert.Equal(t, id, decoded.ID)
		assert.True(t, createdAt.Equal(decoded.CreatedAt))
	})

	t.Run("nil UUID", func(t *testing.T) {
		_, err := EncodeCursor(createdAt, uuid.Nil)
		assert.ErrorContains(t, err, "cannot be nil")
	})
}

func TestDecodeCursor(t *testing.T) {
	tests := []struct {
		name        string
		encoded     string
		errContains string
	}{
		{"invalid base64", "not base64!!", "failed to decode cursor"},
		{"invalid json", base64.URLEncoding.EncodeToString([]byte("{")), "failed to unmarshal cursor"},
		{"nil id", base64.URLEncoding.EncodeToString([]byte(`{"t":"2026-01-01T00:00:00Z","i":"00000000-0000-0000-0000-000000000000"}`)), "ID cannot be nil"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeCursor(tt.encoded)
			assert.ErrorContains(t, err, tt.errContains)
		})
	}

	t.Run("empty string returns nil", func(t *testing.T) {
		c, err := DecodeCursor("")
		require.NoError(t, err)
		assert.Nil(t, c)
	})
}

func TestFromRun(t *testing.T) {
	id := uuid.New()
	run := domain.Run{
		ID:       id,
		Source:   "e.html",
		Valid:    false,
		Issue:    "orphan_close",
		Token:    "</p>",
		Reason:   "no open tags left to close",
		Line:     2,
		Column:   3,
		Offset:   9,
		Duration: domain.Duration(1500 * time.Microsecond),
	}

	out := FromRun(run)

	assert.Equal(t, id, out.ID)
	assert.Equal(t, int64(1500), out.DurationUs)
	require.NotNil(t, out.Location)
	assert.Equal(t, Location{Line: 2, Column: 3, Offset: 9}, *out.Location)

	assert.Nil(t, FromRun(domain.Run{Valid: true}).Location)
}
