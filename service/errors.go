package service

import "errors"

var (
	// ErrUnknownBank is returned when a bank is not in the rate table.
	ErrUnknownBank = errors.New("unknown bank")
	// ErrAccessDenied is returned by Authorize when the trial is used up
	// and the visitor has not paid.
	ErrAccessDenied = errors.New("access denied")
	// ErrInvalidInput marks errors caused by the request itself.
	ErrInvalidInput = errors.New("invalid input")
)

// inputError keeps the validation message as is while matching
// ErrInvalidInput.
type inputError struct {
	err error
}

func (e *inputError) Error() string {
	return e.err.Error()
}

func (e *inputError) Unwrap() []error {
	return []error{ErrInvalidInput, e.err}
}

func invalidInput(err error) error {
	if err == nil {
		return nil
	}
	return &inputError{err: err}
}
