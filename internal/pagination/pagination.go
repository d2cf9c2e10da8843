// Package pagination slices ordered result sets into fixed-size pages.
//
// Page numbering is 1-based. Requests for page 0 or below normalize to
// page 1; requests beyond the last page clamp to the last page instead of
// returning an empty result. Combined with the feed layer's deterministic
// ordering (created_at descending, ID ascending on ties) this guarantees
// that concatenating all pages reproduces the full result set with no item
// duplicated or skipped.
package pagination

// DefaultPerPage is the page size used when the caller does not configure one.
const DefaultPerPage = 10

// Params identifies a requested page.
type Params struct {
	Page    int
	PerPage int
}

// NewParams normalizes a raw page request: non-positive pages become page 1
// and non-positive page sizes fall back to DefaultPerPage.
func NewParams(page, perPage int) Params {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	return Params{Page: page, PerPage: perPage}
}

// Pagination describes one page of an ordered result set.
type Pagination struct {
	TotalItems int  `json:"total_items"`
	Page       int  `json:"page"`
	PerPage    int  `json:"per_page"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// New computes page metadata for a result set of totalItems entries,
// clamping the requested page into the valid range. An empty result set
// still has one (empty) page so page requests against it stay valid.
func New(totalItems int, p Params) Pagination {
	if totalItems < 0 {
		totalItems = 0
	}

	totalPages := (totalItems + p.PerPage - 1) / p.PerPage
	if totalPages < 1 {
		totalPages = 1
	}

	page := p.Page
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	return Pagination{
		TotalItems: totalItems,
		Page:       page,
		PerPage:    p.PerPage,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

// Offset returns the index of the page's first item within the full
// ordered result set.
func (pg Pagination) Offset() int {
	return (pg.Page - 1) * pg.PerPage
}

// Slice paginates an in-memory ordered slice, returning the requested
// page's items and the page metadata.
func Slice[T any](items []T, p Params) ([]T, Pagination) {
	pg := New(len(items), p)

	start := pg.Offset()
	if start > len(items) {
		start = len(items)
	}
	end := start + pg.PerPage
	if end > len(items) {
		end = len(items)
	}

	return items[start:end], pg
}
