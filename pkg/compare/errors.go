package compare

import (
	"errors"
	"fmt"
	"regexp"
)

var (
	// ErrInvalidID indicates a clone id was empty or held disallowed characters.
	ErrInvalidID = errors.New("compare: invalid record id")
	// ErrNoDatabaseRecord indicates approve was requested with nothing to approve against.
	ErrNoDatabaseRecord = errors.New("compare: no database record")
	// ErrHost wraps every failure reported by the host.
	ErrHost = errors.New("compare: host callback failed")
)

var recordIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidationError describes a rejected clone id.
type ValidationError struct {
	ID     string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid record id %q: %s", e.ID, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidID.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidID
}

// ValidateID checks a new record id.
func ValidateID(id string) error {
	if id == "" {
		return &ValidationError{ID: id, Reason: "id is required"}
	}
	if !recordIDPattern.MatchString(id) {
		return &ValidationError{ID: id, Reason: "only letters, digits, '_' and '-' are allowed"}
	}
	return nil
}

func hostError(action string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrHost, action, err)
}
