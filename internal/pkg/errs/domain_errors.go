package errs

import (
	"errors"

	cr "github.com/cockroachdb/errors"
)

type Kind string

// Error kinds shared by the domain and usecase layers
const (
	KindValidation Kind = "validation"
	KindConflict   Kind = "conflict"
	KindNotFound   Kind = "not_found"
	KindState      Kind = "state"
	KindUpstream   Kind = "upstream"
)

type DomainError struct {
	Kind  Kind
	msg   string
	cause error
}

func (e *DomainError) Error() string {
	if e.cause != nil {
		return e.msg + ": " + e.cause.Error()
	}
	return e.msg
}

func (e *DomainError) Unwrap() error {
	return e.cause
}

func Validation(msg string) *DomainError { return &DomainError{Kind: KindValidation, msg: msg} }
func Conflict(msg string) *DomainError   { return &DomainError{Kind: KindConflict, msg: msg} }
func NotFound(msg string) *DomainError   { return &DomainError{Kind: KindNotFound, msg: msg} }
func State(msg string) *DomainError      { return &DomainError{Kind: KindState, msg: msg} }
func Upstream(msg string) *DomainError   { return &DomainError{Kind: KindUpstream, msg: msg} }

// WithKind classifies cause without hiding it from errors.Is / errors.As.
func WithKind(kind Kind, cause error, msg string) error {
	if cause == nil {
		return nil
	}
	return &DomainError{Kind: kind, msg: msg, cause: cr.WithStack(cause)}
}

// KindOf returns the kind of the first DomainError in the chain, or "" if there is none.
func KindOf(err error) Kind {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}

func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
