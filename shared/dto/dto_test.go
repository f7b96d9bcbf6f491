package dto_test

import (
	"sitepro/shared/dto"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryParams(t *testing.T) {
	tests := []struct {
		name       string
		params     dto.QueryParams
		wantOffset int
		wantOrder  string
	}{
		{
			name:       "oldest first",
			params:     dto.QueryParams{Limit: 50, SortBy: "side_effect_failures.created_at", SortDir: dto.SortDirAsc},
			wantOffset: 0,
			wantOrder:  "ORDER BY side_effect_failures.created_at ASC",
		},
		{
			name:       "third page",
			params:     dto.QueryParams{Page: 3, Limit: 20, SortBy: "created_at", SortDir: "desc"},
			wantOffset: 40,
			wantOrder:  "ORDER BY created_at DESC",
		},
		{
			name:       "unknown direction falls back to ascending",
			params:     dto.QueryParams{SortBy: "created_at", SortDir: "sideways"},
			wantOffset: 0,
			wantOrder:  "ORDER BY created_at ASC",
		},
		{
			name:       "no sort column",
			params:     dto.QueryParams{Page: 2},
			wantOffset: 0,
			wantOrder:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantOffset, tt.params.Offset())
			assert.Equal(t, tt.wantOrder, tt.params.OrderBy())
		})
	}
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "equality",
			filter:    dto.Eq("bids", "status", "SUBMITTED"),
			wantWhere: "bids.status = :status",
			wantArgs:  map[string]any{"status": "SUBMITTED"},
		},
		{
			name:      "at most",
			filter:    dto.Filter{Field: "attempts", Value: 4, Operator: dto.FilterOperatorLessEq},
			wantWhere: "attempts <= :attempts",
			wantArgs:  map[string]any{"attempts": 4},
		},
		{
			name:      "in list",
			filter:    dto.Filter{Table: "machine_rentals", Field: "status", Value: []string{"ASSIGNED", "IN_USE"}, Operator: dto.FilterOperatorIn},
			wantWhere: "machine_rentals.status IN (:status_0, :status_1)",
			wantArgs:  map[string]any{"status_0": "ASSIGNED", "status_1": "IN_USE"},
		},
		{
			name:      "empty in list matches nothing",
			filter:    dto.Filter{Field: "status", Value: []string{}, Operator: dto.FilterOperatorIn},
			wantWhere: "FALSE",
			wantArgs:  map[string]any{},
		},
		{
			name:      "is null",
			filter:    dto.Filter{Field: "resolved_at", Operator: dto.FilterIsNull},
			wantWhere: "resolved_at IS NULL",
			wantArgs:  map[string]any{},
		},
		{
			name:      "custom bind name",
			filter:    dto.Filter{ArgName: "expected_status", Field: "status", Value: "REQUESTED", Operator: dto.FilterOperatorEq},
			wantWhere: "status = :expected_status",
			wantArgs:  map[string]any{"expected_status": "REQUESTED"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()
			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Filters: []any{
			dto.Eq("side_effect_failures", "resolved", false),
			dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Eq("side_effect_failures", "kind", "MEMBERSHIP"),
					dto.Filter{ArgName: "other_kind", Field: "kind", Value: "CONTRACT", Operator: dto.FilterOperatorEq},
				},
			},
			"ignored",
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(side_effect_failures.resolved = :resolved AND (side_effect_failures.kind = :kind OR kind = :other_kind))", where)
	assert.Equal(t, map[string]any{"resolved": false, "kind": "MEMBERSHIP", "other_kind": "CONTRACT"}, args)

	empty := dto.FilterGroup{}
	where, args = empty.GetWhereClause()
	assert.Empty(t, where)
	assert.Empty(t, args)
}
