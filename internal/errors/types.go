package errors

// represents a standardized error response
type ErrorResponse struct {
	Error     string `json:"error"`                // error code (e.g., "validation_error", "not_found")
	Message   string `json:"message"`              // user-friendly message
	Details   string `json:"details,omitempty"`    // optional details (sanitized in production)
	RequestID string `json:"request_id,omitempty"` // echoes X-Request-ID so clients can quote it
}

// standard error codes
const (
	CodeNotFound        = "not_found"
	CodeValidationError = "validation_error"
	CodeServerError     = "server_error"
	CodeBadRequest      = "bad_request"
	CodeTooManyRequests = "too_many_requests"
)
