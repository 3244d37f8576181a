package response

import (
	"net/http"

	deliverycontext "mytube/internal/delivery/context"
	domainerrors "mytube/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	StatusCode int       `json:"statusCode"`
	Data       any       `json:"data"`
	Message    string    `json:"message"`
	Success    bool      `json:"success"`
	Meta       *MetaInfo `json:"meta"`
}

// ErrorResponse defines the structure for error responses. Data is always null.
type ErrorResponse struct {
	StatusCode int                       `json:"statusCode"`
	Code       string                    `json:"code"`    // Machine-readable error code, e.g., "VALIDATION_FAILED"
	Message    string                    `json:"message"` // User-friendly error message
	Errors     []domainerrors.FieldError `json:"errors"`
	Data       any                       `json:"data"`
	Success    bool                      `json:"success"`
	Meta       *MetaInfo                 `json:"meta"`
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"` // Request tracking ID
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	return c.JSON(statusCode, SuccessResponse{
		StatusCode: statusCode,
		Data:       data,
		Message:    message,
		Success:    true,
		Meta: &MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// OK returns a 200 response
func OK(c echo.Context, data any, message string) error {
	return Success(c, http.StatusOK, data, message)
}

// Created returns a 201 response
func Created(c echo.Context, data any, message string) error {
	return Success(c, http.StatusCreated, data, message)
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, fields []domainerrors.FieldError) error {
	// Field context is only meaningful for client errors
	if statusCode >= 500 || fields == nil {
		fields = []domainerrors.FieldError{}
	}

	return c.JSON(statusCode, ErrorResponse{
		StatusCode: statusCode,
		Code:       errorCode,
		Message:    message,
		Errors:     fields,
		Data:       nil,
		Success:    false,
		Meta: &MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// Unauthorized returns a 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

// NotFound returns a 404 error
func NotFound(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusNotFound, errorCode, message, nil)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// AppError renders an AppError, attaching field context for validation failures
func AppError(c echo.Context, appErr domainerrors.AppError) error {
	var fields []domainerrors.FieldError
	var validationErr *domainerrors.ValidationError
	if errors.As(appErr, &validationErr) {
		fields = validationErr.Fields()
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), fields)
}

// HandleAppError renders client-side application errors directly. Server-side failures are
// passed on to the central error handler, which logs them before responding.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
		return AppError(c, appErr)
	}

	return errors.WithStack(err)
}
