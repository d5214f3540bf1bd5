package helper

import (
	"errors"
	"net/http"
)

type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindValidation
	KindUnauthenticated
	KindForbidden
	KindNotFound
	KindConflict
	KindRateLimited
	KindUnavailable
)

var kindStatus = map[ErrorKind]int{
	KindInternal:        http.StatusInternalServerError,
	KindValidation:      http.StatusBadRequest,
	KindUnauthenticated: http.StatusUnauthorized,
	KindForbidden:       http.StatusForbidden,
	KindNotFound:        http.StatusNotFound,
	KindConflict:        http.StatusConflict,
	KindRateLimited:     http.StatusTooManyRequests,
	KindUnavailable:     http.StatusServiceUnavailable,
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AppError is the error type returned by services. The HTTP layer maps Kind
// to a status code and Message to the envelope message.
type AppError struct {
	Kind    ErrorKind
	Message string
	Fields  []FieldError
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) Status() int {
	if status, ok := kindStatus[e.Kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func NewError(kind ErrorKind, msg string, err error) *AppError {
	return &AppError{Kind: kind, Message: msg, Err: err}
}

func NewValidationError(msg string, fields ...FieldError) *AppError {
	return &AppError{Kind: KindValidation, Message: msg, Fields: fields}
}

func NotFound(msg string) *AppError {
	return NewError(KindNotFound, msg, nil)
}

func Conflict(msg string) *AppError {
	return NewError(KindConflict, msg, nil)
}

func Unauthenticated(msg string) *AppError {
	return NewError(KindUnauthenticated, msg, nil)
}

func Forbidden(msg string) *AppError {
	return NewError(KindForbidden, msg, nil)
}

func Internal(msg string, err error) *AppError {
	return NewError(KindInternal, msg, err)
}

// KindOf returns the kind of the first AppError in err's chain, or
// KindInternal.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}
