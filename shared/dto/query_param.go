package dto

import "strings"

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// QueryParams bounds and orders a multi-row read. Page is 1-based; a zero Limit reads everything.
type QueryParams struct {
	Page    int
	Limit   int
	SortBy  string
	SortDir string
}

// Offset returns the number of rows to skip, zero without paging.
func (q QueryParams) Offset() int {
	if q.Page <= 1 || q.Limit <= 0 {
		return 0
	}

	return (q.Page - 1) * q.Limit
}

// OrderBy renders the ORDER BY clause, empty when no sort column is set. Unknown directions fall back to ASC.
func (q QueryParams) OrderBy() string {
	if q.SortBy == "" {
		return ""
	}

	dir := strings.ToUpper(q.SortDir)
	if dir != SortDirDesc {
		dir = SortDirAsc
	}

	return "ORDER BY " + q.SortBy + " " + dir
}
