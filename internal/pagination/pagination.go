// Package pagination slices ordered lists into fixed-size, 1-indexed pages.
package pagination

// PageSize is the number of items per page for every list endpoint.
const PageSize = 10

// Page returns the page-th slice of items (1-indexed) and whether another
// page exists after it. Out-of-range pages yield an empty, non-nil slice so
// callers can return it as a valid empty result.
func Page[T any](items []T, page int) ([]T, bool) {
	if page < 1 {
		return []T{}, false
	}
	start := (page - 1) * PageSize
	if start >= len(items) {
		return []T{}, false
	}
	end := start + PageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], len(items) > page*PageSize
}
