package assistant

import "fmt"

// AssistantError represents a failed call against the upstream research
// assistant API.
type AssistantError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *AssistantError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("assistant API error (status %d): %s: %v", e.StatusCode, e.Message, e.Err)
	}
	return fmt.Sprintf("assistant API error (status %d): %s", e.StatusCode, e.Message)
}

func (e *AssistantError) Unwrap() error {
	return e.Err
}

// ValidationError represents invalid input to client methods
type ValidationError struct {
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: invalid %s: %s", e.Field, e.Value)
}

// RadarNotFoundError represents when a radar cannot be found upstream
type RadarNotFoundError struct {
	ID string
}

func (e *RadarNotFoundError) Error() string {
	return fmt.Sprintf("radar not found: %s", e.ID)
}

// NewAssistantError creates a new AssistantError with the given status code and message
func NewAssistantError(statusCode int, message string, err error) error {
	return &AssistantError{
		StatusCode: statusCode,
		Message:    message,
		Err:        err,
	}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, value string) error {
	return &ValidationError{
		Field: field,
		Value: value,
	}
}

// NewRadarNotFoundError creates a new RadarNotFoundError
func NewRadarNotFoundError(id string) error {
	return &RadarNotFoundError{
		ID: id,
	}
}

// IsRadarNotFound checks if an error is a RadarNotFoundError
func IsRadarNotFound(err error) bool {
	_, ok := err.(*RadarNotFoundError)
	return ok
}
