package structure

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownType is returned when a structure key is not in the table.
	ErrUnknownType = errors.New("unknown structure type")
	// ErrInvalidTable is returned when a table fails load-time checks.
	ErrInvalidTable = errors.New("invalid structure table")
)

// ConfigurationError reports a structure lookup or table defect. It points at
// a programming or configuration problem, not at bad user input.
type ConfigurationError struct {
	Key    Type
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("structure configuration: %s", e.Reason)
	}
	return fmt.Sprintf("structure configuration: %q: %s", e.Key, e.Reason)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
