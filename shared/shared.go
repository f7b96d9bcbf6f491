package shared

import (
	"fmt"
	"maps"
	"sitepro/shared/constant"
	"sitepro/shared/dto"
	"sitepro/shared/timezone"
	"strings"
)

// WithModified stamps an update map with the modification metadata columns.
func WithModified(fields map[string]any, username string) map[string]any {
	updatedFields := make(map[string]any, len(fields)+2)
	maps.Copy(updatedFields, fields)

	updatedFields[constant.FieldModifiedAt] = timezone.Now()
	updatedFields[constant.FieldModifiedBy] = username

	return updatedFields
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{dto.Eq(table, fieldID, id)},
	}
}

// FilterByIDAndStatus matches a single row only while it still holds the expected status.
// Updates built on it act as optimistic guards against concurrent transitions.
func FilterByIDAndStatus(id, fieldID, status, fieldStatus, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
			dto.Filter{
				ArgName:  "expected_" + fieldStatus,
				Field:    fieldStatus,
				Value:    status,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

func BuildCacheKey(prefix string, parts ...string) string {
	if len(parts) == 0 {
		return prefix
	}

	return fmt.Sprintf("%s:%s", prefix, strings.Join(parts, ":"))
}

// CompactIDs drops nil and empty ids and keeps the first occurrence of each one.
func CompactIDs(ids ...*string) []string {
	seen := make(map[string]struct{}, len(ids))
	res := make([]string, 0, len(ids))

	for _, id := range ids {
		if id == nil || *id == constant.Empty {
			continue
		}

		if _, ok := seen[*id]; ok {
			continue
		}

		seen[*id] = struct{}{}
		res = append(res, *id)
	}

	return res
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
