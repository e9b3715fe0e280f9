package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrInvalidFormat = errors.New("invalid format")
	ErrNotFound      = errors.New("not found")
	ErrAlreadySet    = errors.New("already set")
	ErrDuplicateName = errors.New("duplicate name")
	ErrArity         = errors.New("wrong argument count")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindInvalidFormat ErrorKind = "invalid_format"
	KindNotFound      ErrorKind = "not_found"
	KindAlreadySet    ErrorKind = "already_set"
	KindDuplicateName ErrorKind = "duplicate_name"
	KindArity         ErrorKind = "arity"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}
