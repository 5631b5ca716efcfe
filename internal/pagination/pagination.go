// Package pagination implements the page-window policy shared by every
// listing endpoint of the catalog service.
package pagination

import "strconv"

const (
	// DefaultPage is used when the page query parameter is absent or unparseable.
	DefaultPage = 1
	// DefaultPageSize is used when the limit query parameter is absent or unparseable.
	DefaultPageSize = 20
	// MaxPageSize caps the page size a caller may request.
	MaxPageSize = 100
)

// Window describes one page of a listing: the offset into the full set, the
// total page count derived from the item count, and whether neighbouring
// pages exist.
type Window struct {
	Page       int
	PageSize   int
	TotalItems int
	Skip       int
	TotalPages int
	HasNext    bool
	HasPrev    bool
}

// Paginate computes the window for a 1-based page over totalItems.
// A page beyond the last one is not an error: the caller gets an empty slice
// for it and HasNext stays false.
func Paginate(page, pageSize, totalItems int) Window {
	totalPages := 0
	if totalItems > 0 {
		totalPages = (totalItems + pageSize - 1) / pageSize
	}
	return Window{
		Page:       page,
		PageSize:   pageSize,
		TotalItems: totalItems,
		Skip:       pageSize * (page - 1),
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

// ParsePage parses a page query parameter. Unparseable or non-positive input
// falls back to DefaultPage rather than producing an error.
func ParsePage(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return DefaultPage
	}
	return n
}

// ParsePageSize parses a limit query parameter with the same leniency as
// ParsePage, clamped to MaxPageSize.
func ParsePageSize(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return DefaultPageSize
	}
	if n > MaxPageSize {
		return MaxPageSize
	}
	return n
}

// Slice returns the items that belong to the window, empty when the window
// starts past the end of the set.
func Slice[T any](items []T, w Window) []T {
	if w.Skip >= len(items) || w.Skip < 0 {
		return []T{}
	}
	end := w.Skip + w.PageSize
	if end > len(items) {
		end = len(items)
	}
	return items[w.Skip:end]
}
