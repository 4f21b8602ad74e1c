package errors

const (
	HttpInternalError         = "internal_error"
	HttpInvalidJsonError      = "invalid_json"
	HttpInvalidQueryError     = "invalid_query"
	HttpValidationError       = "validation_failed"
	HttpPayloadTooLargeError  = "payload_too_large"
	HttpDuplicateSaleError    = "duplicate_sale"
	HttpServiceUnavailableErr = "service_unavailable"
)

// ErrorResponse is the error body returned by every HTTP handler.
type ErrorResponse struct {
	ErrorType string      `json:"error_type"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
}
