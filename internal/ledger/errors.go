package ledger

import (
	"errors"
	"fmt"
)

var (
	ErrFormat           = errors.New("format_error")
	ErrValidation       = errors.New("validation_error")
	ErrScenarioDepleted = errors.New("scenario_queue_depleted")
)

// LineError reports the input line a command failed on.
type LineError struct {
	Line    int
	Command string
	Err     error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d (%s): %v", e.Line, e.Command, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Kind maps err onto its taxonomy code, or "" when it belongs to none.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrFormat):
		return ErrFormat.Error()
	case errors.Is(err, ErrValidation):
		return ErrValidation.Error()
	case errors.Is(err, ErrScenarioDepleted):
		return ErrScenarioDepleted.Error()
	default:
		return ""
	}
}

func formatErr(usage string) error {
	return fmt.Errorf("%w: invalid number of parameters, format: %s", ErrFormat, usage)
}

func amountErr(raw string) error {
	return fmt.Errorf("%w: amount %q is not an integer", ErrFormat, raw)
}

func notRegisteredErr(userID string) error {
	return fmt.Errorf("%w: user %s not registered", ErrValidation, userID)
}
