// Package errors is the service's structured error type. Import it as perr
package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
)

// ErrorCode classifies a failure for logs, metrics, the ERROR wire line and ops responses.
// Numeric values are part of the ops API; append only
type ErrorCode uint16

const (
	ErrorCodeUnknown ErrorCode = iota
	ErrorCodePanic
	ErrorCodeUnavailable
	ErrorCodeInvalidArgument
	ErrorCodeValidation
	ErrorCodeJSON

	// ErrorCodeFraming means the inbound bytes are not valid UTF-8
	ErrorCodeFraming
	// ErrorCodeIncompleteFrame means the peer hung up before the terminator
	ErrorCodeIncompleteFrame
	ErrorCodeFrameTooLarge
	// ErrorCodeTimeout covers both read and write deadlines
	ErrorCodeTimeout

	// ErrorCodeBackend is any failure surfaced by a classifier engine
	ErrorCodeBackend
)

type codeInfo struct {
	label  string
	status int
}

var codes = map[ErrorCode]codeInfo{
	ErrorCodeUnknown:         {"unknown", http.StatusInternalServerError},
	ErrorCodePanic:           {"panic", http.StatusInternalServerError},
	ErrorCodeUnavailable:     {"unavailable", http.StatusServiceUnavailable},
	ErrorCodeInvalidArgument: {"invalid_argument", http.StatusUnprocessableEntity},
	ErrorCodeValidation:      {"validation", http.StatusBadRequest},
	ErrorCodeJSON:            {"json", http.StatusBadRequest},
	ErrorCodeFraming:         {"framing", http.StatusBadRequest},
	ErrorCodeIncompleteFrame: {"incomplete_frame", http.StatusInternalServerError},
	ErrorCodeFrameTooLarge:   {"frame_too_large", http.StatusRequestEntityTooLarge},
	ErrorCodeTimeout:         {"timeout", http.StatusGatewayTimeout},
	ErrorCodeBackend:         {"backend", http.StatusBadGateway},
}

func infoOf(c ErrorCode) codeInfo {
	if ci, ok := codes[c]; ok {
		return ci
	}
	return codes[ErrorCodeUnknown]
}

// String is the snake_case label; unmapped codes read "unknown"
func (c ErrorCode) String() string { return infoOf(c).label }

// HTTPStatusCode is the ops status for c; unmapped codes are 500
func HTTPStatusCode(c ErrorCode) int { return infoOf(c).status }

// Error carries a code, a message, an optional offending field, an optional
// operation tag and an optional cause
type Error struct {
	cause error
	msg   string
	code  ErrorCode
	field string
	op    string
}

// Wire is the JSON shape of an error on the ops API
type Wire struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Field   string    `json:"field,omitempty"`
}

func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.cause == nil:
		return e.msg
	default:
		return e.msg + ": " + e.cause.Error()
	}
}

func (e *Error) Unwrap() error { return e.cause }

func (e *Error) Code() ErrorCode { return e.code }

func (e *Error) Message() string { return e.msg }

func (e *Error) Field() string { return e.field }

func (e *Error) Op() string { return e.op }

func (e *Error) ToWire() Wire { return Wire{Code: e.code, Message: e.msg, Field: e.field} }

func (e *Error) clone() *Error {
	c := *e
	return &c
}

// As finds the first *Error in err's chain
func As(err error) (*Error, bool) {
	var e *Error
	ok := stderrs.As(err, &e)
	return e, ok
}

// CodeOf returns err's code, or ErrorCodeUnknown for foreign errors
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.code
	}
	return ErrorCodeUnknown
}

// IsCode reports whether err carries code
func IsCode(err error, code ErrorCode) bool { return CodeOf(err) == code }

// HTTPStatus is HTTPStatusCode(CodeOf(err))
func HTTPStatus(err error) int { return HTTPStatusCode(CodeOf(err)) }

// IsFraming reports whether err ends a connection silently: bad UTF-8,
// early EOF, an oversize frame or a read deadline
func IsFraming(err error) bool {
	switch CodeOf(err) {
	case ErrorCodeFraming, ErrorCodeIncompleteFrame, ErrorCodeFrameTooLarge, ErrorCodeTimeout:
		return true
	default:
		return false
	}
}

// WireFrom renders any error for the ops API. nil gives the zero Wire
func WireFrom(err error) Wire {
	if err == nil {
		return Wire{}
	}
	if e, ok := As(err); ok {
		return e.ToWire()
	}
	return Wire{Code: ErrorCodeUnknown, Message: err.Error()}
}

// WithField returns a copy of err tagged with field. Foreign errors pass through
func WithField(err error, field string) error {
	e, ok := As(err)
	if !ok {
		return err
	}
	c := e.clone()
	c.field = field
	return c
}

// WithOp returns a copy of err tagged with op. Foreign errors pass through
func WithOp(err error, op string) error {
	e, ok := As(err)
	if !ok {
		return err
	}
	c := e.clone()
	c.op = op
	return c
}

func New(code ErrorCode, msg string) error { return &Error{code: code, msg: msg} }

func Newf(code ErrorCode, format string, a ...any) error { return New(code, fmt.Sprintf(format, a...)) }

// Wrap attaches code and msg to cause
func Wrap(cause error, code ErrorCode, msg string) error {
	return &Error{cause: cause, code: code, msg: msg}
}

func Wrapf(cause error, code ErrorCode, format string, a ...any) error {
	return Wrap(cause, code, fmt.Sprintf(format, a...))
}

func InvalidArgf(format string, a ...any) error { return Newf(ErrorCodeInvalidArgument, format, a...) }

func JSONErrf(format string, a ...any) error { return Newf(ErrorCodeJSON, format, a...) }

func PanicErrf(format string, a ...any) error { return Newf(ErrorCodePanic, format, a...) }

func Unavailablef(format string, a ...any) error { return Newf(ErrorCodeUnavailable, format, a...) }

func Framingf(format string, a ...any) error { return Newf(ErrorCodeFraming, format, a...) }

func Backendf(format string, a ...any) error { return Newf(ErrorCodeBackend, format, a...) }
