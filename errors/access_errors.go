// errors/access_errors.go
package errors

import (
	"errors"
	"fmt"
)

var ErrPermissionDenied = errors.New("permission denied")

// PermissionError explains which condition blocked an action. It matches
// ErrPermissionDenied with errors.Is.
type PermissionError struct {
	Action     string
	DocumentID string
	Reason     string
	// BlockingUserID is set when the document is assigned to someone else.
	BlockingUserID string
}

func (e *PermissionError) Error() string {
	if e.DocumentID == "" {
		return fmt.Sprintf("cannot %s: %s", e.Action, e.Reason)
	}
	return fmt.Sprintf("cannot %s document %s: %s", e.Action, e.DocumentID, e.Reason)
}

func (e *PermissionError) Is(target error) bool {
	return target == ErrPermissionDenied
}

// Denied builds a PermissionError for the given action.
func Denied(action, documentID, reason string) *PermissionError {
	return &PermissionError{Action: action, DocumentID: documentID, Reason: reason}
}

// Validation wraps ErrValidation with a field-level message.
func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
