package apperr

import (
	"errors"
	"fmt"
)

// Issue classifies why a document is not well-formed.
type Issue int

const (
	// IssueUnknownTag means an open or empty tag names an element outside the vocabulary.
	IssueUnknownTag Issue = iota + 1

	// IssueOrphanClose means a close tag was found while no tag was open.
	IssueOrphanClose

	// IssueMismatchedClose means a close tag does not match the most recently opened tag.
	IssueMismatchedClose

	// IssueUnclosedOpen means the document ended with open tags left on the stack.
	IssueUnclosedOpen
)

func (i Issue) String() string {
	switch i {
	case IssueUnknownTag:
		return "unknown_tag"
	case IssueOrphanClose:
		return "orphan_close"
	case IssueMismatchedClose:
		return "mismatched_close"
	case IssueUnclosedOpen:
		return "unclosed_open"
	default:
		return "unknown"
	}
}

func ParseIssue(s string) (Issue, error) {
	for _, i := range []Issue{IssueUnknownTag, IssueOrphanClose, IssueMismatchedClose, IssueUnclosedOpen} {
		if i.String() == s {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown issue %q", s)
}

func (i Issue) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *Issue) UnmarshalText(b []byte) error {
	parsed, err := ParseIssue(string(b))
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}

const (
	ReasonUnknownTag      = "not a valid tag in the given grammar"
	ReasonOrphanClose     = "no open tags left to close"
	ReasonMismatchedClose = "no matching opening tag; expected to close %s"
	ReasonUnclosedOpen    = "no matching closing tag"
)

var ErrMalformedDocument = errors.New("malformed document")

// MalformedError describes the first grammar violation found in a document.
// Offset is the byte offset of Token in the validated text, or -1 if unknown.
type MalformedError struct {
	Issue    Issue
	Token    string
	Name     string
	Expected string
	Reason   string
	Offset   int
}

func (e *MalformedError) Error() string {
	return e.Token + " " + e.Reason
}

func (e *MalformedError) Is(target error) bool {
	return target == ErrMalformedDocument
}

func NewUnknownTag(tok, name string, offset int) *MalformedError {
	return &MalformedError{Issue: IssueUnknownTag, Token: tok, Name: name, Reason: ReasonUnknownTag, Offset: offset}
}

func NewOrphanClose(tok, name string, offset int) *MalformedError {
	return &MalformedError{Issue: IssueOrphanClose, Token: tok, Name: name, Reason: ReasonOrphanClose, Offset: offset}
}

func NewMismatchedClose(tok, name, expected string, offset int) *MalformedError {
	return &MalformedError{
		Issue:    IssueMismatchedClose,
		Token:    tok,
		Name:     name,
		Expected: expected,
		Reason:   fmt.Sprintf(ReasonMismatchedClose, expected),
		Offset:   offset,
	}
}

func NewUnclosedOpen(tok, name string, offset int) *MalformedError {
	return &MalformedError{Issue: IssueUnclosedOpen, Token: tok, Name: name, Reason: ReasonUnclosedOpen, Offset: offset}
}
