package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewParams_Normalization(t *testing.T) {
	tests := []struct {
		name          string
		page, perPage int
		wantPage      int
		wantPerPage   int
	}{
		{"valid", 3, 10, 3, 10},
		{"zero page", 0, 10, 1, 10},
		{"negative page", -5, 10, 1, 10},
		{"zero per page", 2, 0, 2, DefaultPerPage},
		{"negative per page", 2, -1, 2, DefaultPerPage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewParams(tt.page, tt.perPage)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantPerPage, p.PerPage)
		})
	}
}

func TestNew_Metadata(t *testing.T) {
	tests := []struct {
		name       string
		totalItems int
		page       int
		perPage    int
		wantPage   int
		wantPages  int
		wantNext   bool
		wantPrev   bool
	}{
		{"first of three", 25, 1, 10, 1, 3, true, false},
		{"middle", 25, 2, 10, 2, 3, true, true},
		{"last partial", 25, 3, 10, 3, 3, false, true},
		{"beyond last clamps", 25, 99, 10, 3, 3, false, true},
		{"empty set has one page", 0, 1, 10, 1, 1, false, false},
		{"empty set clamps too", 0, 7, 10, 1, 1, false, false},
		{"exact multiple", 20, 2, 10, 2, 2, false, true},
		{"single item page size one", 1, 1, 1, 1, 1, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pg := New(tt.totalItems, NewParams(tt.page, tt.perPage))
			assert.Equal(t, tt.wantPage, pg.Page)
			assert.Equal(t, tt.wantPages, pg.TotalPages)
			assert.Equal(t, tt.wantNext, pg.HasNext)
			assert.Equal(t, tt.wantPrev, pg.HasPrev)
			assert.Equal(t, tt.totalItems, pg.TotalItems)
		})
	}
}

func TestSlice_Page(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	page, pg := Slice(items, NewParams(2, 3))
	assert.Equal(t, []int{4, 5, 6}, page)
	assert.Equal(t, 3, pg.TotalPages)

	page, _ = Slice(items, NewParams(3, 3))
	assert.Equal(t, []int{7}, page)

	// Beyond the last page returns the last page, not an empty slice.
	page, pg = Slice(items, NewParams(12, 3))
	assert.Equal(t, []int{7}, page)
	assert.Equal(t, 3, pg.Page)
}

// Concatenating every page must reproduce the input exactly once per item,
// for any page size and any input length.
func TestSlice_RoundTrip(t *testing.T) {
	for size := 0; size <= 30; size++ {
		items := make([]int, size)
		for i := range items {
			items[i] = i
		}

		for perPage := 1; perPage <= 12; perPage++ {
			got := make([]int, 0, len(items))
			pg := New(len(items), NewParams(1, perPage))
			for page := 1; page <= pg.TotalPages; page++ {
				chunk, _ := Slice(items, NewParams(page, perPage))
				got = append(got, chunk...)
			}
			assert.Equal(t, items, got, "size=%d perPage=%d", size, perPage)
		}
	}
}
