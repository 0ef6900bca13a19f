package respond

import (
	"errors"
	"log/slog"
	"net/http"
)

// AppError is an error that carries an HTTP status and a user-facing message.
// Handlers that cannot resolve an error themselves wrap it in an AppError and
// hand it to Error, the terminal error path.
type AppError struct {
	Code      int    // HTTP status code
	ErrorCode string // Symbolic error code for the envelope
	UserMsg   string // Message to display to users
	Err       error  // Internal error (logged for debugging)
}

// Error returns the error message, implementing the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.UserMsg
}

// Unwrap returns the underlying error, implementing the errors.Unwrap interface.
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError with the given parameters.
func NewAppError(code int, errorCode, userMsg string, err error) *AppError {
	return &AppError{Code: code, ErrorCode: errorCode, UserMsg: userMsg, Err: err}
}

// Error is the terminal error handler. An AppError is written with its own
// status and user message; anything else is logged with sensitive values
// masked and reduced to a generic 500 envelope so no internal detail reaches
// the client.
func Error(w http.ResponseWriter, op string, err error) {
	if err == nil {
		return
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		if appErr.Err != nil {
			slog.Default().Error("request failed",
				slog.String("operation", op),
				slog.Int("code", appErr.Code),
				slog.String("user_message", appErr.UserMsg),
				slog.String("error", SanitizeError(appErr.Err)))
		}
		Custom(w, appErr.Code, appErr.UserMsg, appErr.ErrorCode)
		return
	}

	slog.Default().Error("unexpected error",
		slog.String("operation", op),
		slog.String("error", SanitizeError(err)))
	Custom(w, http.StatusInternalServerError,
		http.StatusText(http.StatusInternalServerError), CodeInternal)
}
