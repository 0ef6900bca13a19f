// Package repository defines the persistence interfaces consumed by the
// usecase layer. Implementations live under internal/infra/adapter/persistence.
package repository

// Sort orders accepted by list queries.
const (
	OrderAlphaAsc      = "a-z"
	OrderAlphaDesc     = "z-a"
	OrderUpdatedAtAsc  = "updated-at-asc"
	OrderUpdatedAtDesc = "updated-at-desc"
)

// ListFilters carries the common list-query parameters.
// Find performs a case-insensitive substring match across the entity's
// searchable columns. Page is 0-based; the offset is page * limit.
type ListFilters struct {
	Page    int
	Limit   int
	Find    string
	OrderBy string
}

// Offset returns the row offset for the filter's page and limit.
func (f ListFilters) Offset() int {
	return f.Page * f.Limit
}
