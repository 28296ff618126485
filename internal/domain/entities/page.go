package entities

// Page is the single collection shape used above the HTTP boundary,
// whatever the endpoint actually returned.
type Page[T any] struct {
	Items []T
	Total int
}

func NewPage[T any](items []T, total int) Page[T] {
	if items == nil {
		items = []T{}
	}
	if total < len(items) {
		total = len(items)
	}
	return Page[T]{Items: items, Total: total}
}

func (p Page[T]) Empty() bool {
	return len(p.Items) == 0
}

// Pages is the number of pages of the given size needed for Total.
func (p Page[T]) Pages(size int) int {
	if size <= 0 || p.Total == 0 {
		return 1
	}
	return (p.Total + size - 1) / size
}
