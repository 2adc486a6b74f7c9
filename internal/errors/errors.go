package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"unicode"

	"codeberg.org/antivibe/antivibe/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Error Handling Guidelines:
//
// For HTTP REST handlers:
//   - Use errors.InternalError(), errors.BadRequest(), etc. and return
//     These functions write the JSON body and log where needed
//   - Never call both logger.ErrorErr() and errors.InternalError() for the same error
//
// For the hint client:
//   - Failures never reach the caller; they are logged once and replaced by the
//     fallback hint (see internal/hints)
//
// For other internal packages:
//   - Return wrapped errors with context using fmt.Errorf("context: %w", err)

func requestLogger(c *gin.Context) *slog.Logger {
	if c.Request == nil {
		return logger.Default()
	}

	return logger.FromContext(c.Request.Context())
}

func respond(c *gin.Context, status int, resp ErrorResponse) {
	resp.RequestID = c.GetString("request_id")
	c.JSON(status, resp)
}

// returns a 404 not found error
func NotFound(c *gin.Context, resource string) {
	message := "resource not found"
	if resource != "" {
		message = resource + " not found"
	}

	respond(c, http.StatusNotFound, ErrorResponse{Error: CodeNotFound, Message: message})
}

// returns a 400 for bodies that could not be read as JSON at all
func BadRequest(c *gin.Context, message string, err error) {
	if message == "" {
		message = "invalid request"
	}

	respond(c, http.StatusBadRequest, ErrorResponse{
		Error:   CodeBadRequest,
		Message: message,
		Details: sanitizeError(err),
	})
}

// returns a 400 for well-formed JSON that breaks the request contract.
// binding failures are reported per field using the wire names.
func ValidationError(c *gin.Context, err error) {
	message := "validation failed"
	details := sanitizeError(err)

	var fieldErrs validator.ValidationErrors
	var typeErr *json.UnmarshalTypeError

	switch {
	case stderrors.As(err, &fieldErrs):
		message = "request validation failed"
		details = describeFields(fieldErrs)

	case stderrors.As(err, &typeErr):
		message = "request validation failed"
		details = fmt.Sprintf("%s has the wrong type, expected %s", typeErr.Field, typeErr.Type.Kind())

	case err != nil && (strings.Contains(err.Error(), "binding") || strings.Contains(err.Error(), "validation")):
		message = "request validation failed"
	}

	requestLogger(c).Debug("rejected request", "details", details)

	respond(c, http.StatusBadRequest, ErrorResponse{
		Error:   CodeValidationError,
		Message: message,
		Details: details,
	})
}

// returns a 500 internal server error
func InternalError(c *gin.Context, message string, err error) {
	if message == "" {
		message = "an error occurred"
	}

	requestLogger(c).Error(message,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
		"error", err,
	)

	respond(c, http.StatusInternalServerError, ErrorResponse{
		Error:   CodeServerError,
		Message: message,
		Details: sanitizeError(err),
	})
}

// returns a 429 too many requests error
func TooManyRequests(c *gin.Context, message string) {
	if message == "" {
		message = "too many requests"
	}

	requestLogger(c).Warn("rate limit reached", "client_ip", c.ClientIP(), "path", c.Request.URL.Path)

	respond(c, http.StatusTooManyRequests, ErrorResponse{Error: CodeTooManyRequests, Message: message})
}

func describeFields(errs validator.ValidationErrors) string {
	parts := make([]string, 0, len(errs))

	for _, fe := range errs {
		field := wireName(fe.Field())

		switch fe.Tag() {
		case "required":
			parts = append(parts, field+" is required")
		case "min":
			parts = append(parts, fmt.Sprintf("%s must be at least %s", field, fe.Param()))
		case "max":
			parts = append(parts, fmt.Sprintf("%s must be at most %s", field, fe.Param()))
		default:
			parts = append(parts, field+" is invalid")
		}
	}

	return strings.Join(parts, "; ")
}

// HintLevel -> hint_level
func wireName(field string) string {
	var b strings.Builder

	for i, r := range field {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}

			r = unicode.ToLower(r)
		}

		b.WriteRune(r)
	}

	return b.String()
}

// hides internals from error details in production
func sanitizeError(err error) string {
	if err == nil {
		return ""
	}

	errMsg := err.Error()

	if os.Getenv("ENVIRONMENT") != "production" {
		return errMsg
	}

	switch {
	case strings.Contains(errMsg, "connection") || strings.Contains(errMsg, "network"):
		return "connection error occurred"
	case strings.Contains(errMsg, "timeout"):
		return "request timed out"
	case strings.Contains(errMsg, "validation") || strings.Contains(errMsg, "binding"):
		return "validation failed"
	case strings.Contains(errMsg, "not found"):
		return "resource not found"
	}

	return "an error occurred"
}
