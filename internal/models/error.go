package models

// Error represents a terminal outcome of a back-office operation.
// Message is the human-readable text handed back to the console.
type Error struct {
	Code    string
	Message string
}

// Error code constants
const (
	CodePermissionDenied    = "PERMISSION_DENIED"
	CodeDuplicateKey        = "DUPLICATE_KEY"
	CodeNotFound            = "NOT_FOUND"
	CodeUnresolvedReference = "UNRESOLVED_REFERENCE"
	CodeInsufficientData    = "INSUFFICIENT_DATA"
	CodeInvalidCredentials  = "INVALID_CREDENTIALS"
	CodeInvalidInput        = "INVALID_INPUT"
)

// Sentinels for errors.Is. Any *Error with the same Code matches.
var (
	ErrPermissionDenied    = NewError(CodePermissionDenied, "Permission denied.")
	ErrDuplicateKey        = NewError(CodeDuplicateKey, "ID already exists.")
	ErrNotFound            = NewError(CodeNotFound, "ID not found.")
	ErrUnresolvedReference = NewError(CodeUnresolvedReference, "Reference not found")
	ErrInsufficientData    = NewError(CodeInsufficientData, "Not enough data to calculate finance.")
	ErrInvalidCredentials  = NewError(CodeInvalidCredentials, "Invalid username or password. Please try again.")
	ErrInvalidInput        = NewError(CodeInvalidInput, "Invalid input.")
)

// NewError creates a new error with the given code and message
func NewError(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func (e *Error) Error() string {
	return e.Message
}

// Is reports whether target carries the same error code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}
