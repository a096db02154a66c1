// Package exitcode defines the outcome taxonomy of a run and its mapping
// to process exit codes.
package exitcode

import (
	"errors"
	"fmt"
	"io"
)

// Kind classifies the outcome of one invocation. Exactly one kind applies
// per run.
type Kind int

const (
	OK Kind = iota
	NotGitRepo
	StageFailed
	NoChanges
	KeyMissing
	KeyInvalid
	QuotaExceeded
	RequestFailed
	CommitFailed
	Unknown
)

// Code returns the process exit code for the kind.
func (k Kind) Code() int {
	switch k {
	case OK:
		return 0
	case NotGitRepo:
		return 1
	case StageFailed:
		return 2
	case NoChanges:
		return 3
	case KeyMissing:
		return 10
	case KeyInvalid:
		return 11
	case QuotaExceeded:
		return 12
	case RequestFailed:
		return 13
	case CommitFailed:
		return 20
	default:
		return 99
	}
}

// Tag returns the diagnostic code printed alongside error messages.
func (k Kind) Tag() string {
	switch k {
	case NotGitRepo:
		return "NOT_GIT_REPO"
	case StageFailed:
		return "STAGE_FAILED"
	case NoChanges:
		return "NO_CHANGES"
	case KeyMissing:
		return "API_KEY_MISSING"
	case KeyInvalid:
		return "API_KEY_INVALID"
	case QuotaExceeded:
		return "QUOTA_EXCEEDED"
	case RequestFailed:
		return "API_ERROR"
	case CommitFailed:
		return "COMMIT_FAILED"
	default:
		return "UNKNOWN"
	}
}

// Error is a failure outcome carrying its kind. The optional tag overrides
// the kind's default diagnostic code.
type Error struct {
	Kind    Kind
	Message string
	Err     error
	tag     string
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// WithTag overrides the diagnostic code printed for this error.
func (e *Error) WithTag(tag string) *Error {
	e.tag = tag
	return e
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Tag() string {
	if e.tag != "" {
		return e.tag
	}
	return e.Kind.Tag()
}

// Report prints the single-line diagnostic for a failed run: the error tag
// in brackets when the failure is a typed outcome, a plain message otherwise.
func Report(w io.Writer, err error) {
	if err == nil {
		return
	}
	var outcome *Error
	if errors.As(err, &outcome) {
		fmt.Fprintf(w, "Error: [%s] %s\n", outcome.Tag(), outcome.Error())
		return
	}
	fmt.Fprintln(w, "Error:", err)
}

// CodeFor maps any error to a process exit code: nil is success, a typed
// outcome uses its kind, anything unanticipated falls back to Unknown.
func CodeFor(err error) int {
	if err == nil {
		return OK.Code()
	}
	var outcome *Error
	if errors.As(err, &outcome) {
		return outcome.Kind.Code()
	}
	return Unknown.Code()
}
