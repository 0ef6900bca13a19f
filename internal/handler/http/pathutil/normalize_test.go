package pathutil

import "testing"

func TestNormalizePath(t *testing.T) {
	const id = "6a1f0a77-0c7e-4c6e-9a46-1f25e2a1b9d3"

	tests := []struct {
		name string
		path string
		want string
	}{
		{"user by id", "/v1/user/" + id, "/v1/user/:id"},
		{"article by id", "/v1/article/" + id, "/v1/article/:id"},
		{"account by id", "/v1/account/" + id, "/v1/account/:id"},
		{"likes by article", "/v1/like/" + id, "/v1/like/:articleId"},
		{"likes by user", "/v1/like/user/" + id, "/v1/like/user/:userId"},
		{"user collection", "/v1/user", "/v1/user"},
		{"register stays literal", "/v1/user/register", "/v1/user/register"},
		{"login stays literal", "/v1/user/login", "/v1/user/login"},
		{"health", "/health", "/health"},
		{"metrics", "/metrics", "/metrics"},
		{"query stripped", "/v1/user/" + id + "?fields=name", "/v1/user/:id"},
		{"trailing slash stripped", "/v1/article/" + id + "/", "/v1/article/:id"},
		{"collection with query", "/v1/article?page=0&limit=20", "/v1/article"},
		{"root", "/", "/"},
		{"unknown path unchanged", "/v2/thing/" + id, "/v2/thing/" + id},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePath(tt.path); got != tt.want {
				t.Errorf("NormalizePath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func BenchmarkNormalizePath(b *testing.B) {
	paths := []string{
		"/v1/user/6a1f0a77-0c7e-4c6e-9a46-1f25e2a1b9d3",
		"/v1/article?page=1",
		"/health",
		"/v1/like/user/6a1f0a77-0c7e-4c6e-9a46-1f25e2a1b9d3",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = NormalizePath(paths[i%len(paths)])
	}
}
