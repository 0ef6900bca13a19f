package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"stucode/internal/handler/http/requestid"
)

func captureLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewJSONHandler(&buf, nil)), &buf
}

func TestNewLogger(t *testing.T) {
	if NewLogger() == nil {
		t.Fatal("NewLogger returned nil")
	}
}

func TestNewLogger_DebugLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")

	logger := NewLogger()
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("debug level should be enabled with LOG_LEVEL=debug")
	}
}

func TestNewLogger_DefaultLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")

	logger := NewLogger()
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("debug level should be disabled by default")
	}
	if !logger.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info level should be enabled by default")
	}
}

func TestNewTextLogger(t *testing.T) {
	if NewTextLogger() == nil {
		t.Fatal("NewTextLogger returned nil")
	}
}

func TestWithRequestID(t *testing.T) {
	logger, buf := captureLogger()

	ctx := requestid.WithRequestID(context.Background(), "req-42")
	WithRequestID(ctx, logger).Info("hello")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v", err)
	}
	if entry["request_id"] != "req-42" {
		t.Errorf("expected request_id req-42, got %v", entry["request_id"])
	}
}

func TestWithRequestID_EmptyContext(t *testing.T) {
	logger, buf := captureLogger()

	WithRequestID(context.Background(), logger).Info("hello")

	if bytes.Contains(buf.Bytes(), []byte("request_id")) {
		t.Error("no request_id attribute expected without an ID in context")
	}
}

func TestWithFields(t *testing.T) {
	logger, buf := captureLogger()

	WithFields(logger, map[string]interface{}{
		"component": "repo",
		"attempt":   3,
	}).Info("retrying")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v", err)
	}
	if entry["component"] != "repo" {
		t.Errorf("expected component=repo, got %v", entry["component"])
	}
	if entry["attempt"] != float64(3) {
		t.Errorf("expected attempt=3, got %v", entry["attempt"])
	}
}

func TestLoggerContext(t *testing.T) {
	logger, _ := captureLogger()

	ctx := WithLogger(context.Background(), logger)
	if FromContext(ctx) != logger {
		t.Error("FromContext should return the stored logger")
	}

	if FromContext(context.Background()) != slog.Default() {
		t.Error("FromContext should fall back to the default logger")
	}
}
