package domain

// PaginationParams carries page/limit values from the HTTP layer to the
// saved-itinerary listing. Page is 1-indexed. Limit is capped at 100 by
// NewPaginationParams.
type PaginationParams struct {
	// Page is the current page number, starting at 1.
	Page int
	// Limit is the maximum number of items to return.
	Limit int
}

// DefaultPageSize matches the saved-itineraries panel: five entries per page.
const DefaultPageSize = 5

// NewPaginationParams builds a PaginationParams from optional HTTP query params.
// Nil pointers fall back to sane defaults (page=1, limit=DefaultPageSize).
// The limit is capped at 100 to prevent runaway listings.
func NewPaginationParams(page, limit *int) PaginationParams {
	p := PaginationParams{Page: 1, Limit: DefaultPageSize}
	if page != nil && *page >= 1 {
		p.Page = *page
	}
	if limit != nil && *limit >= 1 {
		p.Limit = *limit
		if p.Limit > 100 {
			p.Limit = 100
		}
	}
	return p
}

// Offset returns the zero-based element offset of the first item on the page.
func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Clamp pulls an out-of-range page back into [1, lastPage] for the given
// total item count. A total of zero yields page 1.
func (p PaginationParams) Clamp(total int) PaginationParams {
	if p.Page < 1 {
		p.Page = 1
	}
	last := (total + p.Limit - 1) / p.Limit
	if last < 1 {
		last = 1
	}
	if p.Page > last {
		p.Page = last
	}
	return p
}
