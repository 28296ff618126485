package entities

import (
	"net/url"
	"sort"
	"strconv"
)

// Filter keys understood by the backend list endpoints.
const (
	FilterStockStatus  = "stock_status"
	FilterWorkerID     = "worker_id"
	FilterMovementType = "movement_type"
	FilterStartDate    = "start_date"
	FilterEndDate      = "end_date"
)

const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// ListQuery carries paging, search, sorting and filters for a list
// endpoint. Zero values are omitted from the query string.
type ListQuery struct {
	Page    int
	Size    int
	Search  string
	SortBy  string
	Order   string
	Filters map[string]string
}

func (q ListQuery) WithFilter(key, value string) ListQuery {
	filters := make(map[string]string, len(q.Filters)+1)
	for k, v := range q.Filters {
		filters[k] = v
	}
	if value == "" {
		delete(filters, key)
	} else {
		filters[key] = value
	}
	q.Filters = filters
	return q
}

func (q ListQuery) Filter(key string) string {
	return q.Filters[key]
}

// Values encodes the query. Filter keys are written in sorted order so the
// same query always yields the same URL.
func (q ListQuery) Values() url.Values {
	v := url.Values{}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Size > 0 {
		v.Set("size", strconv.Itoa(q.Size))
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.SortBy != "" {
		v.Set("sort_by", q.SortBy)
	}
	if q.Order != "" {
		v.Set("order", q.Order)
	}
	keys := make([]string, 0, len(q.Filters))
	for k := range q.Filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if val := q.Filters[k]; val != "" {
			v.Set(k, val)
		}
	}
	return v
}
