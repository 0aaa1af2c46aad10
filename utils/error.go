package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorCode classifies a service failure so calling layers can react
// without matching on message text.
type ErrorCode string

const (
	CodeConfiguration ErrorCode = "configuration"
	CodeNotFound      ErrorCode = "not_found"
	CodeUnauthorized  ErrorCode = "unauthorized"
	CodeConflict      ErrorCode = "conflict"
	CodeUnavailable   ErrorCode = "unavailable"
)

// ServiceError carries an ErrorCode alongside a human-readable message.
type ServiceError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// ConfigurationError signals a fatal startup failure; no component may run
// until the configuration gate has completed.
func ConfigurationError(message string, err error) error {
	return &ServiceError{Code: CodeConfiguration, Message: message, Err: err}
}

func NotFoundError(message string) error {
	return &ServiceError{Code: CodeNotFound, Message: message}
}

func UnauthorizedError(message string) error {
	return &ServiceError{Code: CodeUnauthorized, Message: message}
}

func ConflictError(message string) error {
	return &ServiceError{Code: CodeConflict, Message: message}
}

// UnavailableError models a transient upstream outage from the store layer.
func UnavailableError(message string) error {
	return &ServiceError{Code: CodeUnavailable, Message: message}
}

// CodeOf extracts the ErrorCode from an error chain; unknown errors map to
// an empty code.
func CodeOf(err error) ErrorCode {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}

func IsNotFound(err error) bool     { return CodeOf(err) == CodeNotFound }
func IsUnauthorized(err error) bool { return CodeOf(err) == CodeUnauthorized }
func IsConflict(err error) bool     { return CodeOf(err) == CodeConflict }
func IsUnavailable(err error) bool  { return CodeOf(err) == CodeUnavailable }

// HTTPStatus maps an error's code to the status the HTTP layer should send.
func HTTPStatus(err error) int {
	switch CodeOf(err) {
	case CodeNotFound:
		return http.StatusNotFound
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeConflict:
		return http.StatusConflict
	case CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("Unhandled panic", zap.Any("error", err))
				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response with the status
// derived from the error's code.
func JSONError(c *gin.Context, err error) {
	GetLogger().Warn("request failed", zap.Error(err))
	msg := "request failed"
	var se *ServiceError
	if errors.As(err, &se) {
		msg = se.Message
	}
	c.JSON(HTTPStatus(err), ErrorResponse{Message: msg, Code: string(CodeOf(err))})
}
