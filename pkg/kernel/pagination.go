package kernel

// PaginationOptions carries page-based pagination parameters
type PaginationOptions struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// Offset returns the SQL offset for the current page
func (p PaginationOptions) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

// Limit returns the SQL limit for the current page
func (p PaginationOptions) Limit() int {
	if p.PageSize < 1 {
		return 20
	}
	return p.PageSize
}

// Paginated wraps a page of items
type Paginated[T any] struct {
	Items []T   `json:"items"`
	Page  int   `json:"page"`
	Total int64 `json:"total"`
	Empty bool  `json:"empty"`
}

// NewPaginated builds a page result from items and the total count
func NewPaginated[T any](items []T, page int, total int64) *Paginated[T] {
	return &Paginated[T]{
		Items: items,
		Page:  page,
		Total: total,
		Empty: len(items) == 0,
	}
}
