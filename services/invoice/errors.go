package invoice

// ValidationError reports malformed client input (empty items, bad
// numeric values, non-positive payment amounts). Never retried.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError with a human-readable message.
func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}

// NotFoundError reports that an invoice id did not resolve.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// ConflictError reports a duplicate receipt number that survived the
// internal re-mint retry. It indicates a deeper atomicity failure in
// the counter and is logged loudly.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}
