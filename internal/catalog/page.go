package catalog

// DefaultPerPage is the page size of every listing view.
const DefaultPerPage = 3

// Page is one displayed slice of a listing sequence.
type Page[T any] struct {
	Items      []T `json:"items"`
	Number     int `json:"page"`
	PerPage    int `json:"perPage"`
	TotalPages int `json:"totalPages"`
	TotalItems int `json:"totalItems"`
}

// Paginate slices items into fixed-size pages and returns the requested one.
// The page number is clamped into [1, totalPages]; an empty sequence yields
// zero total pages and an empty slice.
func Paginate[T any](items []T, page, perPage int) Page[T] {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}

	total := len(items)
	totalPages := (total + perPage - 1) / perPage

	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	start := (page - 1) * perPage
	end := start + perPage
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page[T]{
		Items:      items[start:end],
		Number:     page,
		PerPage:    perPage,
		TotalPages: totalPages,
		TotalItems: total,
	}
}
