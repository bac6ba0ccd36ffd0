package apperr

import "errors"

type InputKind int

const (
	EmptyDocument InputKind = iota + 1
	Unreadable
)

func (k InputKind) String() string {
	switch k {
	case EmptyDocument:
		return "empty_document"
	case Unreadable:
		return "unreadable"
	default:
		return "unknown"
	}
}

var (
	ErrEmptyDocument = errors.New("the file is empty and it is not valid")
	ErrUnreadable    = errors.New("document cannot be read")
)

// InputError is raised before validation starts, when there is no text to validate.
type InputError struct {
	Kind InputKind
	Path string
	Err  error
}

func (e *InputError) Error() string {
	msg := e.sentinel().Error()
	if e.Path != "" {
		msg = e.Path + ": " + msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *InputError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.sentinel(), e.Err}
	}
	return []error{e.sentinel()}
}

func (e *InputError) sentinel() error {
	if e.Kind == EmptyDocument {
		return ErrEmptyDocument
	}
	return ErrUnreadable
}

func NewEmptyDocument(path string) *InputError {
	return &InputError{Kind: EmptyDocument, Path: path}
}

func NewUnreadable(path string, err error) *InputError {
	return &InputError{Kind: Unreadable, Path: path, Err: err}
}
