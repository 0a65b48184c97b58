package git

import (
	"errors"
	"fmt"
)

// ErrorKind classifies repository accessor failures.
type ErrorKind int

const (
	// RepositoryNotFound means the path and its ancestors hold no git metadata.
	RepositoryNotFound ErrorKind = iota
	// NoBranchesFound means a listing produced no usable branches.
	NoBranchesFound
	// OperationFailed covers any other engine failure, such as an
	// unknown ref or a checkout conflict.
	OperationFailed
)

// String returns the kind's log-friendly name.
func (k ErrorKind) String() string {
	switch k {
	case RepositoryNotFound:
		return "repository not found"
	case NoBranchesFound:
		return "no branches found"
	case OperationFailed:
		return "operation failed"
	default:
		return "unknown"
	}
}

// Error is the typed failure returned by all Repository operations.
// Msg holds the user-facing message; Err holds the engine cause, if any.
type Error struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// wrapErr builds a typed error with a formatted user-facing message.
func wrapErr(kind ErrorKind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}

// AsError unwraps err into the typed accessor error, if it carries one.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
