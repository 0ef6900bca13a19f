package pathutil

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func requestWithPathValue(name, value string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.SetPathValue(name, value)
	return r
}

func TestUUID(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr error
	}{
		{
			name:  "valid uuid",
			value: "6a1f0a77-0c7e-4c6e-9a46-1f25e2a1b9d3",
		},
		{
			name:    "empty",
			value:   "",
			wantErr: ErrInvalidID,
		},
		{
			name:    "not a uuid",
			value:   "123",
			wantErr: ErrInvalidID,
		},
		{
			name:    "almost a uuid",
			value:   "6a1f0a77-0c7e-4c6e-9a46-1f25e2a1b9dZ",
			wantErr: ErrInvalidID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UUID(requestWithPathValue("id", tt.value), "id")

			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("UUID() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && got != tt.value {
				t.Errorf("UUID() = %q, want %q", got, tt.value)
			}
			if tt.wantErr != nil && got != "" {
				t.Errorf("UUID() = %q, want empty on error", got)
			}
		})
	}
}

func TestUUID_MissingParameter(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	if _, err := UUID(r, "id"); !errors.Is(err, ErrInvalidID) {
		t.Errorf("expected ErrInvalidID for missing parameter, got %v", err)
	}
}
