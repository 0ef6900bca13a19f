package postgres

import (
	"fmt"
	"strings"

	"stucode/internal/repository"
)

// ListQueryBuilder builds WHERE and ORDER BY fragments for the list queries.
// The builder is shared between COUNT and SELECT statements so both always see
// the same conditions. It uses PostgreSQL-specific features: ILIKE for
// case-insensitive matching and $N placeholders.
type ListQueryBuilder struct {
	// searchColumns are the columns the Find term is matched against.
	searchColumns []string
	// sortColumn is the column the a-z / z-a orders apply to.
	sortColumn string
}

// NewListQueryBuilder creates a builder for the given searchable and sortable columns.
func NewListQueryBuilder(sortColumn string, searchColumns ...string) *ListQueryBuilder {
	return &ListQueryBuilder{
		searchColumns: searchColumns,
		sortColumn:    sortColumn,
	}
}

// BuildWhereClause builds the WHERE clause and arguments for the filters.
// extraConditions are pre-rendered equality conditions (column = $N style
// produced by the caller via AppendCondition) that are ANDed in front of the
// Find match. Returns an empty clause when there are no conditions.
func (qb *ListQueryBuilder) BuildWhereClause(filters repository.ListFilters, extraConditions []string, args []interface{}) (clause string, outArgs []interface{}) {
	conditions := make([]string, 0, len(extraConditions)+1)
	conditions = append(conditions, extraConditions...)
	outArgs = args

	if filters.Find != "" {
		paramIndex := len(outArgs) + 1
		matches := make([]string, 0, len(qb.searchColumns))
		for _, col := range qb.searchColumns {
			matches = append(matches, fmt.Sprintf("%s ILIKE $%d", col, paramIndex))
		}
		conditions = append(conditions, "("+strings.Join(matches, " OR ")+")")
		outArgs = append(outArgs, escapeILIKE(filters.Find))
	}

	if len(conditions) == 0 {
		return "", outArgs
	}
	return "WHERE " + strings.Join(conditions, " AND "), outArgs
}

// BuildOrderClause maps the filter's OrderBy onto a whitelisted ORDER BY
// fragment. Unknown values fall back to descending, mirroring the original
// API's behavior of treating everything that is not "a-z" as "z-a".
func (qb *ListQueryBuilder) BuildOrderClause(filters repository.ListFilters) string {
	switch filters.OrderBy {
	case repository.OrderAlphaAsc:
		return fmt.Sprintf("ORDER BY %s ASC", qb.sortColumn)
	case repository.OrderUpdatedAtAsc:
		return "ORDER BY updated_at ASC"
	case repository.OrderUpdatedAtDesc:
		return "ORDER BY updated_at DESC"
	default:
		return fmt.Sprintf("ORDER BY %s DESC", qb.sortColumn)
	}
}

// BuildLimitClause appends LIMIT/OFFSET placeholders and their arguments.
func (qb *ListQueryBuilder) BuildLimitClause(filters repository.ListFilters, args []interface{}) (clause string, outArgs []interface{}) {
	paramIndex := len(args) + 1
	clause = fmt.Sprintf("LIMIT $%d OFFSET $%d", paramIndex, paramIndex+1)
	outArgs = append(args, filters.Limit, filters.Offset())
	return clause, outArgs
}
