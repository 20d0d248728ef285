package services

// maxVisiblePages bounds the page-number window shown by list views.
const maxVisiblePages = 5

// Pagination describes one page of a client-side list: the slice bounds of
// the visible rows and the window of page numbers to render.
type Pagination struct {
	CurrentPage int
	TotalPages  int
	Start       int // half-open bounds into the filtered list
	End         int
	PageNumbers []int // at most maxVisiblePages, centered on CurrentPage
}

// Paginate computes the page window for a list of totalItems rows shown
// perPage at a time. The requested page is clamped to the valid range, so a
// shrinking list (after a delete or filter change) lands on the last page
// instead of an empty one.
func Paginate(totalItems, perPage, requestedPage int) Pagination {
	if perPage <= 0 {
		perPage = 1
	}
	totalPages := (totalItems + perPage - 1) / perPage

	page := requestedPage
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}

	start := (page - 1) * perPage
	if start > totalItems {
		start = totalItems
	}
	end := start + perPage
	if end > totalItems {
		end = totalItems
	}

	return Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		Start:       start,
		End:         end,
		PageNumbers: pageWindow(page, totalPages),
	}
}

// pageWindow returns up to maxVisiblePages consecutive page numbers centered
// on current, shifted inward near the edges.
func pageWindow(current, totalPages int) []int {
	if totalPages < 1 {
		return nil
	}

	start := current - maxVisiblePages/2
	if start < 1 {
		start = 1
	}
	end := start + maxVisiblePages - 1
	if end > totalPages {
		end = totalPages
	}
	if end-start+1 < maxVisiblePages {
		start = end - maxVisiblePages + 1
		if start < 1 {
			start = 1
		}
	}

	numbers := make([]int, 0, end-start+1)
	for page := start; page <= end; page++ {
		numbers = append(numbers, page)
	}
	return numbers
}
