package report

import (
	"errors"

	"github.com/DjordjeVuckovic/html-validator/internal/apperr"
)

// Report is the presentation-ready outcome of validating one document.
type Report struct {
	Source   string    `json:"source"`
	Valid    bool      `json:"valid"`
	Issue    string    `json:"issue,omitempty"`
	Token    string    `json:"token,omitempty"`
	Name     string    `json:"name,omitempty"`
	Expected string    `json:"expected,omitempty"`
	Reason   string    `json:"reason,omitempty"`
	Location *Location `json:"location,omitempty"`
	Error    string    `json:"error,omitempty"`
}

// New builds a Report for source from the validation error (nil when valid)
// and the document text, which is needed to resolve the location.
func New(source, text string, err error) *Report {
	r := &Report{Source: source, Valid: err == nil}
	if err == nil {
		return r
	}

	var me *apperr.MalformedError
	if !errors.As(err, &me) {
		var ie *apperr.InputError
		if errors.As(err, &ie) {
			r.Issue = ie.Kind.String()
		}
		r.Error = err.Error()
		return r
	}

	r.Issue = me.Issue.String()
	r.Token = me.Token
	r.Name = me.Name
	r.Expected = me.Expected
	r.Reason = me.Reason
	if loc := Locate(text, me); loc.Found() {
		r.Location = &loc
	}
	return r
}
