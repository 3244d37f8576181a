package entity

import "math"

// maxPageNumber bounds the page so that Offset never overflows for any capped limit.
const maxPageNumber = math.MaxInt32

// Page is a 1-based page request.
type Page struct {
	Number int
	Limit  int
}

// NewPage normalizes raw paging input. Non-positive values fall back to page 1
// and defaultLimit, and the limit is capped at maxLimit.
func NewPage(number, limit, defaultLimit, maxLimit int) Page {
	if number < 1 {
		number = 1
	}
	if number > maxPageNumber {
		number = maxPageNumber
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}

	return Page{Number: number, Limit: limit}
}

// Offset is the number of rows to skip. It saturates instead of wrapping.
func (p Page) Offset() int {
	if p.Number <= 1 || p.Limit <= 0 {
		return 0
	}
	if p.Number-1 > math.MaxInt/p.Limit {
		return math.MaxInt
	}

	return (p.Number - 1) * p.Limit
}
