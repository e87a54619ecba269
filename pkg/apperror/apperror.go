package apperror

import (
	"errors"
	"net/http"
)

// Kind classifies an AppError. Each kind maps to a default HTTP status.
type Kind int

const (
	// KindUnclassified is any failure that is neither an argument nor an execution problem.
	KindUnclassified Kind = iota
	// KindArgument marks invalid inputs, e.g. a malformed filter or sort.
	KindArgument
	// KindInvalidOperation marks a query that could not be executed as constructed.
	KindInvalidOperation
)

func (k Kind) String() string {
	switch k {
	case KindArgument:
		return "argument"
	case KindInvalidOperation:
		return "invalid_operation"
	default:
		return "unclassified"
	}
}

// Status returns the HTTP status code associated with the kind.
func (k Kind) Status() int {
	if k == KindArgument {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// AppError is a custom error type that includes a kind, an HTTP status code and an optional cause.
type AppError struct {
	Kind    Kind
	Code    int    // HTTP Status Code (e.g., 400, 404)
	Message string // User-facing error message
	Err     error  // The underlying error, if any (not exposed to user)
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new unclassified AppError with a status code and message.
func New(code int, message string) *AppError {
	return &AppError{
		Kind:    KindUnclassified,
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new unclassified AppError wrapping an existing error.
func Wrap(err error, code int, message string) *AppError {
	return &AppError{
		Kind:    KindUnclassified,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Argument creates a KindArgument error (400).
func Argument(err error, message string) *AppError {
	return withKind(KindArgument, err, message)
}

// InvalidOperation creates a KindInvalidOperation error (500).
func InvalidOperation(err error, message string) *AppError {
	return withKind(KindInvalidOperation, err, message)
}

// Unclassified creates a KindUnclassified error (500). The message of err is used verbatim.
func Unclassified(err error) *AppError {
	return withKind(KindUnclassified, err, err.Error())
}

func withKind(kind Kind, err error, message string) *AppError {
	return &AppError{
		Kind:    kind,
		Code:    kind.Status(),
		Message: message,
		Err:     err,
	}
}

// KindOf reports the kind of err. Errors that are not AppErrors are unclassified.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnclassified
}

// IsKind reports whether err carries an AppError of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == kind
}
