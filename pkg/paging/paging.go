// Package paging slices fully materialised lists into pages.
package paging

import (
	dErrors "ims/pkg/domain-errors"
)

// Page is one slice of a list plus the counts a client needs to page further.
type Page[T any] struct {
	Items      []T `json:"items"`
	PageNumber int `json:"pageNumber"`
	PageSize   int `json:"pageSize"`
	TotalCount int `json:"totalCount"`
}

// Paginate skips (page-1)*size items and takes size. An empty page is
// reported as not found: callers cannot distinguish "no items at all" from
// "page beyond range", which matches how list endpoints have always behaved.
func Paginate[T any](items []T, page, size int) (Page[T], error) {
	if page < 1 {
		return Page[T]{}, dErrors.New(dErrors.CodeValidation, "page must be at least 1")
	}
	if size < 1 {
		return Page[T]{}, dErrors.New(dErrors.CodeValidation, "page size must be at least 1")
	}

	total := len(items)
	start := (page - 1) * size
	// guards int overflow on huge page numbers as well as plain out-of-range
	if start >= total || start/size != page-1 {
		return Page[T]{}, dErrors.New(dErrors.CodeNotFound, "no items in the requested page")
	}
	end := min(start+size, total)

	out := make([]T, end-start)
	copy(out, items[start:end])
	return Page[T]{
		Items:      out,
		PageNumber: page,
		PageSize:   size,
		TotalCount: total,
	}, nil
}
