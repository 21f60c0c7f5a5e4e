package tabular

// Paginate slices a collection into one page. Page numbers are 1-based;
// out-of-range pages clamp to the nearest valid page. The second return
// value is the total page count (zero items still count as one empty
// page).
func Paginate[T any](items []T, page, perPage int) ([]T, int) {
	if perPage < 1 {
		perPage = 1
	}

	totalPages := (len(items) + perPage - 1) / perPage
	if totalPages == 0 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * perPage
	end := start + perPage
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], totalPages
}
