// Package respond writes the uniform JSON envelope every endpoint returns.
// It includes error handling with sanitization to prevent leaking sensitive information.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Envelope is the uniform response body: statusCode and message are always
// present, errorCode only on failures, data/count only when the endpoint has
// them.
type Envelope struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	ErrorCode  string `json:"errorCode,omitempty"`
	Data       any    `json:"data,omitempty"`
	Count      *int64 `json:"count,omitempty"`
}

// Symbolic error codes carried in the envelope's errorCode field.
const (
	CodeBadRequest   = "BAD_REQUEST"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeInternal     = "INTERNAL_SERVER_ERROR"
)

// User-facing messages for the known failure modes.
const (
	MsgEmailFormatNotValid = "The email format is not valid"
	MsgPasswordNotValid    = "The password is not valid"
	MsgUnauthorized        = "Authentication values are null or undefined"
	MsgUserNotFound        = "The user does not exist"
	MsgArticleNotFound     = "The article does not exist"
	MsgAccountNotFound     = "The account does not exist"
	MsgLikeNotFound        = "The like does not exist"
	MsgEmailAlreadyExists  = "The email already exists"
	MsgArticleAlreadyLiked = "The article is already liked"
)

func writeJSON(w http.ResponseWriter, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(env.StatusCode)
	if err := json.NewEncoder(w).Encode(env); err != nil {
		// Headers are already sent; log and move on.
		slog.Default().Error("failed to encode JSON response",
			slog.Int("status_code", env.StatusCode),
			slog.Any("error", err))
	}
}

// OK writes a 200 envelope. data and count are omitted when nil.
func OK(w http.ResponseWriter, data any, count *int64) {
	writeJSON(w, Envelope{
		StatusCode: http.StatusOK,
		Message:    http.StatusText(http.StatusOK),
		Data:       data,
		Count:      count,
	})
}

// Created writes a 201 envelope carrying the created resource.
func Created(w http.ResponseWriter, data any) {
	writeJSON(w, Envelope{
		StatusCode: http.StatusCreated,
		Message:    http.StatusText(http.StatusCreated),
		Data:       data,
	})
}

// BadRequest writes a 400 envelope with the given message.
func BadRequest(w http.ResponseWriter, message string) {
	if message == "" {
		message = http.StatusText(http.StatusBadRequest)
	}
	writeJSON(w, Envelope{
		StatusCode: http.StatusBadRequest,
		Message:    message,
		ErrorCode:  CodeBadRequest,
	})
}

// Unauthorized writes a 401 envelope with the given message.
func Unauthorized(w http.ResponseWriter, message string) {
	if message == "" {
		message = MsgUnauthorized
	}
	writeJSON(w, Envelope{
		StatusCode: http.StatusUnauthorized,
		Message:    message,
		ErrorCode:  CodeUnauthorized,
	})
}

// Forbidden writes a 403 envelope with the given message.
func Forbidden(w http.ResponseWriter, message string) {
	if message == "" {
		message = http.StatusText(http.StatusForbidden)
	}
	writeJSON(w, Envelope{
		StatusCode: http.StatusForbidden,
		Message:    message,
		ErrorCode:  CodeForbidden,
	})
}

// NotFound writes a 404 envelope with the given message.
func NotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = http.StatusText(http.StatusNotFound)
	}
	writeJSON(w, Envelope{
		StatusCode: http.StatusNotFound,
		Message:    message,
		ErrorCode:  CodeNotFound,
	})
}

// Conflict writes a 409 envelope with the given message.
func Conflict(w http.ResponseWriter, message string) {
	if message == "" {
		message = http.StatusText(http.StatusConflict)
	}
	writeJSON(w, Envelope{
		StatusCode: http.StatusConflict,
		Message:    message,
		ErrorCode:  CodeConflict,
	})
}

// Custom writes an envelope with an arbitrary status, message and error code.
func Custom(w http.ResponseWriter, status int, message, errorCode string) {
	writeJSON(w, Envelope{
		StatusCode: status,
		Message:    message,
		ErrorCode:  errorCode,
	})
}
