package domain

// ValidationError marks a write that was rejected because the record itself
// is invalid, as opposed to an infrastructure failure. Handlers translate it
// into a 400 response.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}
