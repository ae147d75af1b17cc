package caepagenterrors

import (
	"errors"
	"fmt"
)

var ErrMissingSigningKey = errors.New("missing signing key in secrets")

var ErrMissingKeyID = errors.New("missing key id in secrets")

// ErrValidation matches, via errors.Is, every error produced by Validationf.
var ErrValidation = errors.New("invalid request parameters")

// Validationf formats a validation error. The message is surfaced to the
// caller verbatim, so it must be self-contained.
func Validationf(format string, args ...interface{}) error {
	return &validationError{msg: fmt.Sprintf(format, args...)}
}

type validationError struct {
	msg string
}

func (e *validationError) Error() string {
	return e.msg
}

func (e *validationError) Is(target error) bool {
	return target == ErrValidation
}
