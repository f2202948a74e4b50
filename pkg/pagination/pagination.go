package pagination

// DefaultPageSize applies when the client asks for pages without a size.
const DefaultPageSize = 10

// Page is the envelope shape for paginated lists. Next/Previous carry page
// numbers, nil at either end.
type Page[T any] struct {
	Count    int  `json:"count"`
	Next     *int `json:"next"`
	Previous *int `json:"previous"`
	Results  []T  `json:"results"`
}

// Paginate slices an already-ordered sequence. page is 1-based; out-of-range
// pages yield an empty result set, not an error.
func Paginate[T any](items []T, page, size int) Page[T] {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = DefaultPageSize
	}

	p := Page[T]{Count: len(items), Results: []T{}}

	start := (page - 1) * size
	if start < len(items) {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		p.Results = items[start:end]
		if end < len(items) {
			next := page + 1
			p.Next = &next
		}
	}
	if page > 1 {
		prev := page - 1
		p.Previous = &prev
	}
	return p
}
