package remap

import (
	"errors"
)

// Kind classifies a failed run.
type Kind int

const (
	// KindUnknown is any failure outside the taxonomy below, such as a
	// cancelled context.
	KindUnknown Kind = iota
	// InputError covers unreadable files, unknown serializations and bad URLs.
	InputError
	// SyntaxError means the input document could not be parsed.
	SyntaxError
	// CreationFailed means the registry did not issue an identifier for a concept.
	CreationFailed
	// UpdateFailed means the registry rejected a rewritten entity.
	UpdateFailed
)

func (k Kind) String() string {
	switch k {
	case InputError:
		return "input_error"
	case SyntaxError:
		return "syntax_error"
	case CreationFailed:
		return "creation_failed"
	case UpdateFailed:
		return "update_failed"
	default:
		return "unknown"
	}
}

// ExitCode is the process exit status for the kind.
func (k Kind) ExitCode() int {
	switch k {
	case InputError:
		return 2
	case SyntaxError:
		return 3
	case CreationFailed:
		return 4
	case UpdateFailed:
		return 5
	default:
		return 1
	}
}

// Error is a fatal run failure.
type Error struct {
	Kind Kind
	// Stage is the stage that could not be completed.
	Stage Stage
	// Subject is the concept or entity IRI involved, if any.
	Subject string
	Err     error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var re *Error
	if errors.As(err, &re) {
		return re.Kind
	}
	return KindUnknown
}

// ExitCode maps err to a process exit status. A nil error exits 0.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return KindOf(err).ExitCode()
}
