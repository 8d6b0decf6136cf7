package catalog

// DefaultPerPage matches the server's default page size
const DefaultPerPage = 10

// Pager derives pagination controls from a listing result. Page is
// 1-based; a Total of 0 yields 0 pages with both controls unavailable.
type Pager struct {
	Page    int
	PerPage int
	Total   int
}

// NewPager clamps page and per-page to usable values
func NewPager(page, perPage, total int) Pager {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if total < 0 {
		total = 0
	}
	return Pager{Page: page, PerPage: perPage, Total: total}
}

// TotalPages is the ceiling of Total divided by PerPage
func (p Pager) TotalPages() int {
	return (p.Total + p.PerPage - 1) / p.PerPage
}

// HasPrev reports whether a previous page exists
func (p Pager) HasPrev() bool {
	return p.Page > 1
}

// HasNext reports whether a further page exists
func (p Pager) HasNext() bool {
	return p.Page < p.TotalPages()
}
