package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseQueryParams(t *testing.T) {
	cfg := DefaultConfig()
	orders := []string{"a-z", "z-a"}

	tests := []struct {
		name    string
		query   string
		want    Params
		wantErr bool
	}{
		{
			name:  "Defaults",
			query: "",
			want:  Params{Page: 0, Limit: 20},
		},
		{
			name:  "AllParameters",
			query: "page=2&limit=50&find=gopher&orderBy=z-a",
			want:  Params{Page: 2, Limit: 50, Find: "gopher", OrderBy: "z-a"},
		},
		{
			name:  "PageZero",
			query: "page=0",
			want:  Params{Page: 0, Limit: 20},
		},
		{
			name:  "LimitAtMax",
			query: "limit=100",
			want:  Params{Page: 0, Limit: 100},
		},
		{
			name:  "FindOnly",
			query: "find=alice",
			want:  Params{Page: 0, Limit: 20, Find: "alice"},
		},
		{
			name:    "NegativePage",
			query:   "page=-1",
			wantErr: true,
		},
		{
			name:    "NonNumericPage",
			query:   "page=two",
			wantErr: true,
		},
		{
			name:    "ZeroLimit",
			query:   "limit=0",
			wantErr: true,
		},
		{
			name:    "LimitAboveMax",
			query:   "limit=101",
			wantErr: true,
		},
		{
			name:    "NonNumericLimit",
			query:   "limit=ten",
			wantErr: true,
		},
		{
			name:    "UnknownOrder",
			query:   "orderBy=newest",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/v1/user?"+tt.query, nil)

			got, err := ParseQueryParams(r, cfg, orders)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseQueryParams(%q) = %+v, want error", tt.query, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseQueryParams(%q) returned error: %v", tt.query, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("params mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseQueryParams_OrderPerEndpoint(t *testing.T) {
	cfg := DefaultConfig()

	// Like listings allow time-based orders that user and article listings do not.
	likeOrders := []string{"a-z", "z-a", "updated-at-asc", "updated-at-desc"}

	r := httptest.NewRequest("GET", "/v1/like/user/abc?orderBy=updated-at-desc", nil)
	got, err := ParseQueryParams(r, cfg, likeOrders)
	if err != nil {
		t.Fatalf("ParseQueryParams returned error: %v", err)
	}
	if got.OrderBy != "updated-at-desc" {
		t.Errorf("orderBy = %q, want %q", got.OrderBy, "updated-at-desc")
	}

	r = httptest.NewRequest("GET", "/v1/user?orderBy=updated-at-desc", nil)
	if _, err := ParseQueryParams(r, cfg, []string{"a-z", "z-a"}); err == nil {
		t.Error("expected error for time-based order on name-only endpoint")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg := LoadFromEnv()
		if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
			t.Errorf("config mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Overrides", func(t *testing.T) {
		t.Setenv("PAGINATION_DEFAULT_LIMIT", "10")
		t.Setenv("PAGINATION_MAX_LIMIT", "50")

		cfg := LoadFromEnv()
		want := Config{DefaultPage: 0, DefaultLimit: 10, MaxLimit: 50}
		if diff := cmp.Diff(want, cfg); diff != "" {
			t.Errorf("config mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("InvalidValuesIgnored", func(t *testing.T) {
		t.Setenv("PAGINATION_MAX_LIMIT", "lots")

		cfg := LoadFromEnv()
		if cfg.MaxLimit != 100 {
			t.Errorf("MaxLimit = %d, want 100", cfg.MaxLimit)
		}
	})
}
