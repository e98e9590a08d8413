package types

// StatusError is the status value carried by every error response.
const StatusError = "error"

// ErrorResponse is the error envelope returned for all error conditions.
type ErrorResponse struct {
	// Status is always "error".
	Status string `json:"status"`

	// Message is a human-readable error message.
	Message string `json:"message"`
}

// NewErrorResponse creates a new error response with the given message.
func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{
		Status:  StatusError,
		Message: message,
	}
}
