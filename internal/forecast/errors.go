package forecast

import "fmt"

// ErrorCode identifies a class of forecast failure.
type ErrorCode string

const (
	CodeInvalidInput        ErrorCode = "INVALID_INPUT"
	CodeModelUnavailable    ErrorCode = "MODEL_UNAVAILABLE"
	CodeProfileLookupFailed ErrorCode = "PROFILE_LOOKUP_FAILED"
	CodeLogLookupFailed     ErrorCode = "LOG_LOOKUP_FAILED"
)

// Sentinels for errors.Is matching against an *Error of the same code.
var (
	ErrInvalidInput        = &Error{Code: CodeInvalidInput, Message: "invalid input"}
	ErrModelUnavailable    = &Error{Code: CodeModelUnavailable, Message: "expense model unavailable"}
	ErrProfileLookupFailed = &Error{Code: CodeProfileLookupFailed, Message: "profile lookup failed"}
	ErrLogLookupFailed     = &Error{Code: CodeLogLookupFailed, Message: "expense log lookup failed"}
)

// Error is the single error type surfaced by the forecasting engine.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

func newError(code ErrorCode, msg string, cause error) *Error {
	return &Error{Code: code, Message: msg, Cause: cause}
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}
