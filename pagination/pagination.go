// Package pagination computes skip counts and page windows for the
// upstream API's offset-based paging. Pages are 1-based with a fixed page
// size of 20, matching the upstream page size.
package pagination

import "strconv"

// PageSize is the fixed number of items per page.
const PageSize = 20

// ParsePage parses a page query parameter. Missing, malformed or
// non-positive values default to page 1.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// Offset returns the number of items to skip for a 1-based page.
func Offset(page int) int {
	return (page - 1) * PageSize
}

// Total returns the item count to advertise to a page-link renderer.
// When the most recent fetch returned a full page, one extra page is
// advertised since more results may exist upstream; otherwise the current
// page is the last one.
func Total(page, itemsReturned int) int {
	total := Offset(page) + itemsReturned
	if itemsReturned == PageSize {
		total += PageSize
	}
	return total
}

// Pages returns the number of page links to render for a total computed
// by Total.
func Pages(total int) int {
	if total <= 0 {
		return 1
	}
	return (total + PageSize - 1) / PageSize
}
