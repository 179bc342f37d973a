package pagination

// DefaultPageSize matches the listing page size of the web UI.
const DefaultPageSize = 5

// GapMarker stands in for an elided run of pages in a page range.
const GapMarker = 0

// TotalPages returns the number of pages needed for total items. A total of
// zero still yields one (empty) page.
func TotalPages(total int64, pageSize int) int {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	pages := int((total + int64(pageSize) - 1) / int64(pageSize))
	if pages < 1 {
		pages = 1
	}
	return pages
}

// Clamp normalizes a requested page number into [1, last].
func Clamp(page, last int) int {
	if page < 1 {
		return 1
	}
	if page > last {
		return last
	}
	return page
}

// ElidedRange builds a page range keeping the first page, the last page and
// a window of pages around the current one. Runs of hidden pages collapse
// into a single GapMarker entry.
func ElidedRange(current, last, window int) []int {
	var pages []int
	for p := 1; p <= last; p++ {
		if p == 1 || p == last || (current-window <= p && p <= current+window) {
			pages = append(pages, p)
		}
	}

	var out []int
	prev := 0
	for _, p := range pages {
		if prev != 0 && p-prev > 1 {
			out = append(out, GapMarker)
		}
		out = append(out, p)
		prev = p
	}
	return out
}
