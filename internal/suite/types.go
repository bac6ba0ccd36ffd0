package suite

import (
	"fmt"
	"time"

	"github.com/DjordjeVuckovic/html-validator/internal/report"
)

// Outcome is the expected result of validating one suite document.
type Outcome string

const (
	OutcomeValid           Outcome = "valid"
	OutcomeUnknownTag      Outcome = "unknown_tag"
	OutcomeOrphanClose     Outcome = "orphan_close"
	OutcomeMismatchedClose Outcome = "mismatched_close"
	OutcomeUnclosedOpen    Outcome = "unclosed_open"
	OutcomeEmptyDocument   Outcome = "empty_document"
	OutcomeUnreadable      Outcome = "unreadable"
)

var outcomes = []Outcome{
	OutcomeValid,
	OutcomeUnknownTag,
	OutcomeOrphanClose,
	OutcomeMismatchedClose,
	OutcomeUnclosedOpen,
	OutcomeEmptyDocument,
	OutcomeUnreadable,
}

func (o *Outcome) UnmarshalText(b []byte) error {
	for _, known := range outcomes {
		if string(b) == string(known) {
			*o = known
			return nil
		}
	}
	return fmt.Errorf("unknown expected outcome %q, expected one of %v", string(b), outcomes)
}

// Describe renders the outcome as a short note for listings.
func (o Outcome) Describe() string {
	switch o {
	case OutcomeValid:
		return "valid"
	case OutcomeUnknownTag:
		return "invalid - tag not in grammar"
	case OutcomeOrphanClose:
		return "invalid - orphan closing tag"
	case OutcomeMismatchedClose:
		return "invalid - wrong closing tags order"
	case OutcomeUnclosedOpen:
		return "invalid - orphan opening tag"
	case OutcomeEmptyDocument:
		return "invalid - empty file"
	case OutcomeUnreadable:
		return "invalid - non-existent file"
	default:
		return string(o)
	}
}

type TestSuite struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Documents   []Document `yaml:"documents"`
}

type Document struct {
	File   string  `yaml:"file" json:"file"`
	Expect Outcome `yaml:"expect" json:"expect"`
}

type LoadedSuite struct {
	Suite *TestSuite
	Dir   string
}

type Result struct {
	Document Document       `json:"document"`
	Path     string         `json:"path"`
	Actual   Outcome        `json:"actual"`
	Passed   bool           `json:"passed"`
	Report   *report.Report `json:"report"`
	Duration time.Duration  `json:"duration_ns"`
}

type Summary struct {
	Name    string   `json:"name"`
	Results []Result `json:"results"`
}

func (s *Summary) Failed() int {
	n := 0
	for _, r := range s.Results {
		if !r.Passed {
			n++
		}
	}
	return n
}

func (s *Summary) Passed() bool {
	return s.Failed() == 0
}

// OutcomeOf maps a report to the outcome vocabulary used in suite files.
func OutcomeOf(r *report.Report) Outcome {
	if r.Valid {
		return OutcomeValid
	}
	return Outcome(r.Issue)
}
