package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

const uuidSegment = `[0-9a-fA-F-]{36}`

// pathPatterns defines the list of patterns for dynamic routes.
// Patterns are evaluated in order from most specific to least specific.
// Pre-compiled at initialization so normalization stays cheap per request.
var pathPatterns = []*PathPattern{
	{Pattern: regexp.MustCompile(`^/v1/like/user/` + uuidSegment + `$`), Template: "/v1/like/user/:userId"},
	{Pattern: regexp.MustCompile(`^/v1/like/` + uuidSegment + `$`), Template: "/v1/like/:articleId"},
	{Pattern: regexp.MustCompile(`^/v1/user/` + uuidSegment + `$`), Template: "/v1/user/:id"},
	{Pattern: regexp.MustCompile(`^/v1/article/` + uuidSegment + `$`), Template: "/v1/article/:id"},
	{Pattern: regexp.MustCompile(`^/v1/account/` + uuidSegment + `$`), Template: "/v1/account/:id"},
}

// NormalizePath normalizes dynamic URL paths to prevent metrics label cardinality explosion.
// It converts paths with UUIDs (e.g., /v1/user/8d4e...) to template format (e.g., /v1/user/:id).
// Static paths remain unchanged.
//
// Examples:
//
//	NormalizePath("/v1/user/6a1f0a77-0c7e-4c6e-9a46-1f25e2a1b9d3")  // "/v1/user/:id"
//	NormalizePath("/v1/user/register")                               // "/v1/user/register" (unchanged)
//	NormalizePath("/health")                                         // "/health" (unchanged)
//
// Query parameters and trailing slashes are handled:
//
//	NormalizePath("/v1/user?page=1")   // "/v1/user"
//	NormalizePath("/v1/user/")         // "/v1/user"
func NormalizePath(path string) string {
	// Strip query parameters if present
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	// Strip trailing slash if present (except for root path)
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}

	// Static paths like /health and /metrics pass through unchanged.
	return path
}
