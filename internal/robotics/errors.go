package robotics

import (
	"errors"
	"fmt"
	"strings"

	"sscsrobotics/internal/dispatchlog"
)

// Failure classes for a dispatch. Mapping and validation failures mean the
// case record cannot produce a deliverable payload; transport failures mean
// delivery itself broke.
var (
	ErrMapping    = errors.New("mapping failure")
	ErrValidation = errors.New("validation failure")
	ErrTransport  = errors.New("transport failure")
)

// Wrap builds an error message that includes operation context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, operation, message string, err error) error {
	detail := buildDetail(operation, message)
	if marker == nil {
		marker = ErrTransport
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// FailureStatus maps a dispatch error to the audit log status to persist.
func FailureStatus(err error) dispatchlog.Status {
	switch {
	case errors.Is(err, ErrMapping), errors.Is(err, ErrValidation):
		return dispatchlog.StatusRejected
	default:
		return dispatchlog.StatusFailed
	}
}

func buildDetail(operation, message string) string {
	parts := make([]string, 0, 2)
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "dispatch failure"
	}
	return strings.Join(parts, ": ")
}
