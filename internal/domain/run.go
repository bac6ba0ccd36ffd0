package domain

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

const RunDefaultSource = "inline"

// Run is one persisted validation outcome.
type Run struct {
	ID         uuid.UUID `json:"id"`
	Source     string    `json:"source"`
	Valid      bool      `json:"valid"`
	Issue      string    `json:"issue,omitempty"`
	Token      string    `json:"token,omitempty"`
	Name       string    `json:"name,omitempty"`
	Expected   string    `json:"expected,omitempty"`
	Reason     string    `json:"reason,omitempty"`
	Line       int       `json:"line,omitempty"`
	Column     int       `json:"column,omitempty"`
	Offset     int       `json:"offset"`
	TokenCount int       `json:"token_count"`
	Bytes      int       `json:"bytes"`
	Duration   Duration  `json:"duration_us"`
	CreatedAt  time.Time `json:"created_at"`
}

// Duration is serialized as whole microseconds.
type Duration time.Duration

func (d Duration) Microseconds() int64 {
	return time.Duration(d).Microseconds()
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, d.Microseconds(), 10), nil
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	us, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return err
	}
	*d = Duration(time.Duration(us) * time.Microsecond)
	return nil
}
