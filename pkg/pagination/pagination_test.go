package pagination_test

import (
	"testing"

	"github.com/havenpress/backend/pkg/pagination"
	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	tests := []struct {
		name                  string
		count, limit, offset  int
		totalPages, currentPg int
	}{
		{"second page of 25", 25, 10, 10, 3, 2},
		{"empty result set", 0, 10, 0, 0, 1},
		{"exact multiple", 30, 10, 20, 3, 3},
		{"single partial page", 7, 10, 0, 1, 1},
		{"limit one", 3, 1, 2, 3, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := pagination.Paginate(tt.count, tt.limit, tt.offset)
			assert.Equal(t, tt.count, meta.Count)
			assert.Equal(t, tt.totalPages, meta.TotalPages)
			assert.Equal(t, tt.currentPg, meta.CurrentPage)
		})
	}
}

func TestPaginateGuardsZeroLimit(t *testing.T) {
	meta := pagination.Paginate(25, 0, 0)
	assert.Equal(t, pagination.DefaultLimit, meta.Limit)
	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, 1, meta.CurrentPage)
}

func TestPaginateGuardsNegativeOffset(t *testing.T) {
	meta := pagination.Paginate(25, 10, -5)
	assert.Equal(t, 0, meta.Offset)
	assert.Equal(t, 1, meta.CurrentPage)
}

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name             string
		rawLimit, rawOff string
		limit, offset    int
	}{
		{"both numeric", "20", "40", 20, 40},
		{"both empty", "", "", 10, 0},
		{"non-numeric preserves defaults", "abc", "xyz", 10, 0},
		{"zero limit preserves default", "0", "5", 10, 5},
		{"negative preserves defaults", "-3", "-1", 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit, offset := pagination.ParseQuery(tt.rawLimit, tt.rawOff)
			assert.Equal(t, tt.limit, limit)
			assert.Equal(t, tt.offset, offset)
		})
	}
}
