// Package paginate splits counted listings into numbered pages.
package paginate

import (
	"strconv"
	"strings"
)

// Page is one resolved page of a listing. An empty listing still has one
// (empty) page.
type Page struct {
	Number   int
	NumPages int
	Count    int
	Size     int
}

// Resolve picks the page named by raw. Non-numeric values select page 1;
// numbers outside [1, NumPages] clamp to the nearest valid page.
func Resolve(count int, size int, raw string) Page {
	if size <= 0 {
		size = 1
	}
	if count < 0 {
		count = 0
	}
	numPages := (count + size - 1) / size
	if numPages < 1 {
		numPages = 1
	}
	number, err := strconv.Atoi(strings.TrimSpace(raw))
	switch {
	case err != nil:
		number = 1
	case number < 1:
		number = 1
	case number > numPages:
		number = numPages
	}
	return Page{Number: number, NumPages: numPages, Count: count, Size: size}
}

// ParseSize reads a page size, falling back for non-numeric or non-positive
// values.
func ParseSize(raw string, fallback int) int {
	size, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || size <= 0 {
		return fallback
	}
	return size
}

// Offset is the zero-based index of the first item on the page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// HasPrevious reports whether a page precedes this one.
func (p Page) HasPrevious() bool {
	return p.Number > 1
}

// HasNext reports whether a page follows this one.
func (p Page) HasNext() bool {
	return p.Number < p.NumPages
}

// StartIndex is the one-based index of the first item, or 0 when empty.
func (p Page) StartIndex() int {
	if p.Count == 0 {
		return 0
	}
	return p.Offset() + 1
}

// EndIndex is the one-based index of the last item on the page.
func (p Page) EndIndex() int {
	if p.Number == p.NumPages {
		return p.Count
	}
	return p.Number * p.Size
}
