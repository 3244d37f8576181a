// Package errors wraps pkg/errors so every wrap carries a stack trace, and adds the
// helpers the codebase needs for tagging causes with a domain error.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// New returns a sentinel error without a stack; use it for package-level vars.
func New(text string) error {
	return stderrors.New(text)
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// Mark tags cause with kind so errors.Is(result, kind) holds, then wraps the pair with
// message and a stack trace. The cause stays visible in logs.
func Mark(kind, cause error, message string) error {
	if cause == nil {
		return pkgerrors.Wrap(kind, message)
	}

	return pkgerrors.Wrap(stderrors.Join(kind, cause), message)
}

func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}
