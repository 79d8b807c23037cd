package errs

import (
	"errors"
	"strings"
)

type Kind uint8

const (
	KindOther   Kind = iota // Unclassified error
	KindInvalid             // Validation errors (User input, argument count)
	KindSystem              // OS level failures (exec, networksetup)
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindSystem:
		return "system"
	default:
		return "other"
	}
}

type Op string

type Error struct {
	Op      Op     // Where did it happen?
	Kind    Kind   // What category is it?
	Err     error  // The underlying error (the root cause)
	Message string // Human-readable message for the terminal
}

func E(args ...interface{}) error {
	e := &Error{}
	for _, arg := range args {
		switch arg := arg.(type) {
		case Op:
			e.Op = arg
		case Kind:
			e.Kind = arg
		case *Error:
			copy := *arg
			e.Err = &copy
			if e.Kind == KindOther {
				e.Kind = arg.Kind
			}
		case error:
			e.Err = arg
		case string:
			e.Message = arg
		}
	}
	return e
}

func (e *Error) Error() string {
	var b strings.Builder

	if e.Op != "" {
		b.WriteString(string(e.Op))
	}

	if e.Message != "" {
		if b.Len() > 0 {
			b.WriteString(": ")
		}
		b.WriteString(e.Message)
	}

	if e.Err != nil {
		if b.Len() > 0 {
			b.WriteString(": ")
		}
		b.WriteString(e.Err.Error())
	}

	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the first non-Other kind found in the chain.
func KindOf(err error) Kind {
	var e *Error
	for errors.As(err, &e) {
		if e.Kind != KindOther {
			return e.Kind
		}
		err = e.Err
	}
	return KindOther
}

// ExitCode maps an error to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
