// Package pagination slices in-memory lists into pages. Every list here is
// already fully fetched (the backend caps list sizes), so paging is plain
// slice arithmetic rather than a query concern.
package pagination

import "math"

// PageRequest holds pagination parameters parsed from query strings.
type PageRequest struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// Defaults fills in default values when page or page_size are not provided.
func (p *PageRequest) Defaults() {
	if p.Page == 0 {
		p.Page = 1
	}
	if p.PageSize == 0 {
		p.PageSize = 20
	}
}

// Offset returns the index of the first item on the current page.
func (p *PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// PageResponse wraps a paginated list of items with metadata.
type PageResponse[T any] struct {
	Data       []T   `json:"data"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
}

// HasPrev reports whether a previous page exists.
func (p PageResponse[T]) HasPrev() bool { return p.Page > 1 }

// HasNext reports whether a next page exists.
func (p PageResponse[T]) HasNext() bool { return p.Page < p.TotalPages }

// First returns the 1-based index of the first item on this page, 0 for an
// empty list.
func (p PageResponse[T]) First() int {
	if p.TotalItems == 0 {
		return 0
	}
	return (p.Page-1)*p.PageSize + 1
}

// Last returns the 1-based index of the last item on this page.
func (p PageResponse[T]) Last() int {
	last := p.Page * p.PageSize
	if int64(last) > p.TotalItems {
		return int(p.TotalItems)
	}
	return last
}

// NewPageResponse creates a PageResponse from the given data and total count.
func NewPageResponse[T any](data []T, page, pageSize int, totalItems int64) PageResponse[T] {
	totalPages := int(math.Ceil(float64(totalItems) / float64(pageSize)))
	if data == nil {
		data = []T{}
	}
	return PageResponse[T]{
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}

// Page slices one page out of items. A page beyond the end yields an empty
// data slice with intact metadata.
func Page[T any](items []T, req PageRequest) PageResponse[T] {
	req.Defaults()
	start := req.Offset()
	end := start + req.PageSize

	var window []T
	if start < len(items) {
		if end > len(items) {
			end = len(items)
		}
		window = items[start:end]
	}
	return NewPageResponse(window, req.Page, req.PageSize, int64(len(items)))
}
