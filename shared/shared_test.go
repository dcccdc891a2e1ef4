package shared_test

import (
	"strings"
	"testing"

	"ehotel/shared"
	"ehotel/shared/constant"
	"ehotel/shared/dto"
)

func intPtr(v int) *int {
	return &v
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{
			name:     "empty result set yields one page",
			total:    0,
			limit:    10,
			expected: 1,
		},
		{
			name:     "exact multiple",
			total:    20,
			limit:    10,
			expected: 2,
		},
		{
			name:     "partial last page",
			total:    21,
			limit:    10,
			expected: 3,
		},
		{
			name:     "zero limit yields one page",
			total:    50,
			limit:    0,
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shared.CalculateTotalPage(tt.total, tt.limit)
			if got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestNextIdentifier(t *testing.T) {
	tests := []struct {
		name     string
		ids      []*int
		expected int
	}{
		{
			name:     "empty table starts at one",
			ids:      nil,
			expected: 1,
		},
		{
			name:     "max plus one",
			ids:      []*int{intPtr(3), intPtr(7), intPtr(5)},
			expected: 8,
		},
		{
			name:     "nil entries are discarded",
			ids:      []*int{nil, intPtr(2), nil},
			expected: 3,
		},
		{
			name:     "only nil entries",
			ids:      []*int{nil, nil},
			expected: 1,
		},
		{
			name:     "gaps are not reused",
			ids:      []*int{intPtr(1), intPtr(10)},
			expected: 11,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shared.NextIdentifier(tt.ids)
			if got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestTransformFields(t *testing.T) {
	type updateRequest struct {
		Name    string `db:"name"`
		City    string `db:"city"`
		NoTag   string
		Skipped int `db:"skipped"`
	}

	req := updateRequest{
		Name: "Grand Palace",
	}

	fields := shared.TransformFields(req)

	if fields["name"] != "Grand Palace" {
		t.Errorf("expected name to be set, got %v", fields["name"])
	}

	if _, ok := fields["city"]; ok {
		t.Error("expected zero field city to be omitted")
	}

	if _, ok := fields["skipped"]; ok {
		t.Error("expected zero field skipped to be omitted")
	}

	if _, ok := fields[constant.FieldModifiedAt]; !ok {
		t.Error("expected modified_at to be stamped")
	}
}

func TestBuildCacheKey(t *testing.T) {
	got := shared.BuildCacheKey("hotel", "get", "42")
	if got != "hotel:get:42" {
		t.Errorf("expected hotel:get:42, got %s", got)
	}
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10}

	keyA := shared.BuildCacheKeyWithQuery("hotel:gets", params, dto.FilterGroup{})
	keyB := shared.BuildCacheKeyWithQuery("hotel:gets", params, dto.FilterGroup{})

	if keyA != keyB {
		t.Errorf("expected identical queries to share a key, got %s and %s", keyA, keyB)
	}

	if !strings.HasPrefix(keyA, "hotel:gets:") {
		t.Errorf("expected key to keep its prefix, got %s", keyA)
	}

	otherParams := dto.QueryParams{Page: 2, Limit: 10}

	keyC := shared.BuildCacheKeyWithQuery("hotel:gets", otherParams, dto.FilterGroup{})
	if keyA == keyC {
		t.Error("expected distinct pages to produce distinct keys")
	}
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID(42, "id", "hotels")

	if len(group.Filters) != 1 {
		t.Fatalf("expected a single filter, got %d", len(group.Filters))
	}

	filter, ok := group.Filters[0].(dto.Filter)
	if !ok {
		t.Fatal("expected a dto.Filter")
	}

	if filter.Field != "id" || filter.Table != "hotels" || filter.Value != 42 {
		t.Errorf("unexpected filter: %+v", filter)
	}

	if filter.Operator != dto.FilterOperatorEq {
		t.Errorf("expected eq operator, got %s", filter.Operator)
	}
}
