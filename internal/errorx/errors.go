package errorx

import (
	"errors"
	"fmt"
	"net/http"
)

// CodeError is the error type every logic layer returns to the boundary.
// The status decides the HTTP code, the message is rendered verbatim in the
// response envelope.
type CodeError struct {
	StatusCode int
	Msg        string
}

func (e *CodeError) Error() string {
	return e.Msg
}

func New(status int, msg string) *CodeError {
	return &CodeError{StatusCode: status, Msg: msg}
}

func BadRequest(format string, args ...any) *CodeError {
	return New(http.StatusBadRequest, fmt.Sprintf(format, args...))
}

func Unauthorized(format string, args ...any) *CodeError {
	return New(http.StatusUnauthorized, fmt.Sprintf(format, args...))
}

func Forbidden(format string, args ...any) *CodeError {
	return New(http.StatusForbidden, fmt.Sprintf(format, args...))
}

func NotFound(format string, args ...any) *CodeError {
	return New(http.StatusNotFound, fmt.Sprintf(format, args...))
}

func Conflict(format string, args ...any) *CodeError {
	return New(http.StatusConflict, fmt.Sprintf(format, args...))
}

// From unwraps err into a *CodeError if there is one in the chain.
func From(err error) (*CodeError, bool) {
	var ce *CodeError
	ok := errors.As(err, &ce)
	return ce, ok
}
