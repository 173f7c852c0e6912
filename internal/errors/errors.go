// Package errors defines the failure kinds stdinfile can terminate with and
// maps each of them to a process exit code.
package errors

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies a terminal failure.
type Kind int

// Failure kinds.
const (
	Unknown Kind = iota
	InvalidArgument
	StdinRead
	FileCreate
	FileWrite
	UserCancelled
	BrokenPipe
)

// Exit codes.
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitInterrupted = 2
	ExitBrokenPipe  = 3
)

var kindNames = map[Kind]string{
	Unknown:         "unknown",
	InvalidArgument: "invalid argument",
	StdinRead:       "stdin read",
	FileCreate:      "file create",
	FileWrite:       "file write",
	UserCancelled:   "user cancelled",
	BrokenPipe:      "broken pipe",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ExitCode returns the process exit code for the kind.
func (k Kind) ExitCode() int {
	switch k {
	case UserCancelled:
		return ExitInterrupted
	case BrokenPipe:
		return ExitBrokenPipe
	default:
		return ExitFailure
	}
}

// Error is an error tagged with a Kind.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New returns an error of the given kind with a formatted message.
func New(kind Kind, format string, args ...interface{}) error {
	return &Error{Kind: kind, Err: errors.Errorf(format, args...)}
}

// Wrap tags err with kind and annotates it with message.
// Wrap returns nil if err is nil.
func Wrap(kind Kind, err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Err: errors.Wrap(err, message)}
}

// Wrapf is like Wrap, but formats the message.
func Wrapf(kind Kind, err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Err: errors.Wrapf(err, format, args...)}
}

// KindOf returns the kind of the outermost *Error in err's chain, or Unknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}

// ExitCode maps err to a process exit code. A nil error maps to ExitOK.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	return KindOf(err).ExitCode()
}
