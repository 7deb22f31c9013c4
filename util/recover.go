package util

import (
	"errors"
	"fmt"
)

// ErrPanic wraps every error produced from a recovered panic value.
var ErrPanic = errors.New("recovered from panic")

// InterfaceToError converts a value returned by recover() into an error matching ErrPanic. Error
// values stay reachable through errors.Is and errors.As.
func InterfaceToError(recovered interface{}) error {
	switch value := recovered.(type) {
	case error:
		return fmt.Errorf("%w: %w", ErrPanic, value)
	case string:
		return fmt.Errorf("%w: %s", ErrPanic, value)
	case fmt.Stringer:
		return fmt.Errorf("%w: %s", ErrPanic, value.String())
	default:
		return fmt.Errorf("%w: %v", ErrPanic, value)
	}
}
