package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Input errors
const (
	// ErrCodeParse indicates text could not be parsed (e.g. malformed JSON).
	ErrCodeParse ErrorCode = "PARSE_ERROR"
	// ErrCodeInvalidFormat indicates a value does not have the expected shape.
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	// ErrCodeInvalidArgument indicates an argument outside the operation's domain.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
)

// Async errors
const (
	// ErrCodeTimeout indicates a pending result did not settle in time.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected failure, such as a recovered panic.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeTimeout:  true,
	ErrCodeInternal: false,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
