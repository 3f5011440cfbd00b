package service

import "errors"

// ErrorKind classifies a failed operation. Handlers map kinds to HTTP status
// codes; the services themselves never see status codes.
type ErrorKind int

const (
	KindUnauthorized ErrorKind = iota + 1
	KindForbidden
	KindPaymentRequired
	KindNotFound
	KindInternal
)

// Error carries a kind and a message across the service boundary. Storage
// failures are wrapped with KindInternal and keep their cause for logging.
type Error struct {
	Kind    ErrorKind
	Message string
	cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func wrapInternal(err error, message string) *Error {
	return &Error{Kind: KindInternal, Message: message, cause: err}
}

// KindOf extracts the kind from an error chain. Anything that is not a
// service Error counts as internal.
func KindOf(err error) ErrorKind {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Kind
	}
	return KindInternal
}

func errUnauthorized(message string) *Error {
	return NewError(KindUnauthorized, message)
}

func errForbidden(message string) *Error {
	return NewError(KindForbidden, message)
}

func errPaymentRequired(message string) *Error {
	return NewError(KindPaymentRequired, message)
}

func errNotFound(message string) *Error {
	return NewError(KindNotFound, message)
}
