package booking

import "fmt"

// ValidationError reports a submission that must be blocked before it
// reaches storage. Field names the offending input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

// NotFoundError signals that no booking or group matched the identifier.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("booking %s not found", e.ID)
}

// ForbiddenError signals an operation on a group the caller does not own.
type ForbiddenError struct {
	GroupID string
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("group %s does not belong to the requester", e.GroupID)
}
