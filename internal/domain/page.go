package domain

// PaginationParams carries the page/limit values shared by every paginated
// listing (trips, clients, expenses) from the HTTP layer down to the repo
// layer. Page is 1-indexed. Limit is capped at 100 by NewPaginationParams.
type PaginationParams struct {
	// Page is the requested page number, starting at 1.
	Page int
	// Limit is the maximum number of rows to return per page.
	Limit int
}

// NewPaginationParams builds a PaginationParams from optional HTTP query
// params. Nil or out-of-range pointers fall back to the defaults
// (page=1, limit=20). The limit is capped at 100 to prevent runaway queries.
func NewPaginationParams(page, limit *int) PaginationParams {
	p := PaginationParams{Page: 1, Limit: 20}
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

// Offset returns the zero-based row offset for a SQL OFFSET clause.
func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.Limit
}
