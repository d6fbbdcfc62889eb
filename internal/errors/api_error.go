package errors

// APIError represents a simple standardized error response.
// Used for 400, 500, and 502 errors. Raw optionally carries the upstream
// payload that caused the failure, for diagnosis.
type APIError struct {
	Error string      `json:"error"`
	Raw   interface{} `json:"raw,omitempty"`
}

// NewAPIError creates a new APIError with the given message.
func NewAPIError(message string) *APIError {
	return &APIError{
		Error: message,
	}
}

// NewAPIErrorWithRaw creates a new APIError carrying the raw upstream payload.
func NewAPIErrorWithRaw(message string, raw interface{}) *APIError {
	return &APIError{
		Error: message,
		Raw:   raw,
	}
}
