package pagination

import (
	"fmt"
	"net/http"
	"slices"
	"strconv"
)

// Params represents the list query parameters from an HTTP request.
type Params struct {
	Page    int    // 0-based page number
	Limit   int    // Items per page
	Find    string // Case-insensitive substring search term
	OrderBy string // One of the orders allowed by the endpoint
}

// ParseQueryParams parses list parameters from the HTTP request query string.
// Missing parameters fall back to the config defaults. allowedOrders is the
// set of orderBy values the endpoint accepts; an empty orderBy always passes.
//
// Query parameters:
//   - page: 0-based page number (must be >= 0)
//   - limit: items per page (must be between 1 and config.MaxLimit)
//   - find: substring search term, matched case-insensitively
//   - orderBy: sort order, validated against allowedOrders
//
// Returns an error if parameters are invalid.
func ParseQueryParams(r *http.Request, config Config, allowedOrders []string) (Params, error) {
	params := Params{
		Page:  config.DefaultPage,
		Limit: config.DefaultLimit,
	}

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil || page < 0 {
			return params, fmt.Errorf("invalid query parameter: page must be a non-negative integer")
		}
		params.Page = page
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 || limit > config.MaxLimit {
			return params, fmt.Errorf("invalid query parameter: limit must be between 1 and %d", config.MaxLimit)
		}
		params.Limit = limit
	}

	params.Find = r.URL.Query().Get("find")

	if orderBy := r.URL.Query().Get("orderBy"); orderBy != "" {
		if !slices.Contains(allowedOrders, orderBy) {
			return params, fmt.Errorf("invalid query parameter: orderBy must be one of %v", allowedOrders)
		}
		params.OrderBy = orderBy
	}

	return params, nil
}
