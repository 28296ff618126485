package viewstate

import (
	"net/url"

	"sklad/internal/domain/entities"
)

const DefaultPageSize = 50

// Query is the paging, search, sort and filter state of a list view.
// Changing what is searched or filtered goes back to page 1.
type Query struct {
	q entities.ListQuery
}

func NewQuery(size int) *Query {
	if size <= 0 {
		size = DefaultPageSize
	}
	return &Query{q: entities.ListQuery{Page: 1, Size: size}}
}

func (q *Query) SetSearch(s string) bool {
	if q.q.Search == s {
		return false
	}
	q.q.Search = s
	q.q.Page = 1
	return true
}

func (q *Query) SetFilter(key, value string) bool {
	if q.q.Filter(key) == value {
		return false
	}
	q.q = q.q.WithFilter(key, value)
	q.q.Page = 1
	return true
}

// SetSort sorts by field. Selecting the current field again flips the order.
func (q *Query) SetSort(field string) {
	if q.q.SortBy == field {
		if q.q.Order == entities.SortAsc {
			q.q.Order = entities.SortDesc
		} else {
			q.q.Order = entities.SortAsc
		}
		return
	}
	q.q.SortBy = field
	q.q.Order = entities.SortAsc
}

// SetPage moves to page p, clamped to [1, pages].
func (q *Query) SetPage(p, pages int) {
	if pages < 1 {
		pages = 1
	}
	if p < 1 {
		p = 1
	}
	if p > pages {
		p = pages
	}
	q.q.Page = p
}

func (q *Query) Next(total int) {
	q.SetPage(q.q.Page+1, entities.Page[struct{}]{Total: total}.Pages(q.q.Size))
}

func (q *Query) Prev() {
	q.SetPage(q.q.Page-1, q.q.Page)
}

func (q *Query) Page() int { return q.q.Page }

func (q *Query) Size() int { return q.q.Size }

func (q *Query) Search() string { return q.q.Search }

func (q *Query) Filter(key string) string {
	return q.q.Filter(key)
}

// ListQuery is the value handed to gateways.
func (q *Query) ListQuery() entities.ListQuery {
	return q.q
}

func (q *Query) Values() url.Values {
	return q.q.Values()
}
