package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the shape of every successful response body.
type Envelope struct {
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
}

// ErrorEnvelope is the shape of every failed response body.
type ErrorEnvelope struct {
	StatusCode int      `json:"statusCode"`
	Message    string   `json:"message"`
	Success    bool     `json:"success"`
	Errors     []string `json:"errors"`
}

// Error is a failure with an HTTP status attached. Use cases return it
// and the HTTP layer renders it; anything that is not an *Error becomes
// a 500.
type Error struct {
	Code    int
	Message string
	Errs    []string
}

func (e *Error) Error() string {
	return e.Message
}

func NewError(code int, message string, errs ...string) *Error {
	return &Error{Code: code, Message: message, Errs: errs}
}

func BadRequest(message string) *Error {
	return NewError(http.StatusBadRequest, message)
}

func Unauthorized(message string) *Error {
	return NewError(http.StatusUnauthorized, message)
}

func NotFound(message string) *Error {
	return NewError(http.StatusNotFound, message)
}

func Conflict(message string) *Error {
	return NewError(http.StatusConflict, message)
}

func Internal(message string) *Error {
	return NewError(http.StatusInternalServerError, message)
}

// OK writes the success envelope with the given status.
func OK(c *gin.Context, status int, data interface{}, message string) {
	c.JSON(status, Envelope{
		StatusCode: status,
		Data:       data,
		Message:    message,
		Success:    true,
	})
}

// Fail writes the error envelope. Unrecognized errors map to 500 with a
// generic message so internals never leak.
func Fail(c *gin.Context, err error) {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		apiErr = Internal("Internal server error")
	}

	errs := apiErr.Errs
	if errs == nil {
		errs = []string{}
	}

	c.JSON(apiErr.Code, ErrorEnvelope{
		StatusCode: apiErr.Code,
		Message:    apiErr.Message,
		Success:    false,
		Errors:     errs,
	})
}
