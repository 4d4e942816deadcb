package webshop

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Page is the paginated listing response shape.
type Page[T any] struct {
	Data  []T   `json:"data"`
	Total int64 `json:"total"`
}

// FilterSpec whitelists the columns a listing endpoint may search,
// sort and filter by. Everything else in the query string is ignored.
type FilterSpec struct {
	SearchFields []string
	SortFields   []string
	FilterFields []string
}

// Filters carries parsed listing parameters: limit/offset pagination,
// one sort column with direction, a free-text search over the spec's
// search fields, and exact-match column filters.
type Filters struct {
	Limit     int64
	Offset    int64
	SortBy    string
	Direction string
	Search    string
	Exact     map[string]string

	spec FilterSpec
}

// FiltersFromQuery parses listing parameters from a query string,
// dropping anything the spec does not allow.
func FiltersFromQuery(q url.Values, spec FilterSpec) Filters {
	f := Filters{Exact: map[string]string{}, spec: spec}
	if limit, err := strconv.ParseInt(q.Get("limit"), 10, 64); err == nil && limit > 0 {
		f.Limit = limit
	}
	if offset, err := strconv.ParseInt(q.Get("offset"), 10, 64); err == nil && offset > 0 {
		f.Offset = offset
	}
	if sortBy := q.Get("sortby"); contains(spec.SortFields, sortBy) {
		f.SortBy = sortBy
	}
	if dir := strings.ToLower(q.Get("direction")); dir == "asc" || dir == "desc" {
		f.Direction = dir
	}
	f.Search = q.Get("search")
	for _, field := range spec.FilterFields {
		if v := q.Get(field); v != "" {
			f.Exact[field] = v
		}
	}
	return f
}

// Tail renders the filters into a SQL tail following the given where
// conditions, continuing their placeholder numbering. The returned args
// extend baseArgs. Column names come from the whitelist only.
func (f Filters) Tail(where []string, baseArgs []interface{}) (string, []interface{}) {
	args := baseArgs
	conds := append([]string{}, where...)

	for _, field := range f.spec.FilterFields {
		v, ok := f.Exact[field]
		if !ok {
			continue
		}
		args = append(args, v)
		conds = append(conds, fmt.Sprintf("%s::text = $%d", field, len(args)))
	}

	if f.Search != "" && len(f.spec.SearchFields) > 0 {
		args = append(args, "%"+f.Search+"%")
		var ors []string
		for _, field := range f.spec.SearchFields {
			ors = append(ors, fmt.Sprintf("%s::text ILIKE $%d", field, len(args)))
		}
		conds = append(conds, "("+strings.Join(ors, " OR ")+")")
	}

	var tail string
	if len(conds) > 0 {
		tail = "WHERE " + strings.Join(conds, " AND ")
	}

	if f.SortBy != "" {
		dir := "ASC"
		if f.Direction == "desc" {
			dir = "DESC"
		}
		tail += fmt.Sprintf(" ORDER BY %s %s", f.SortBy, dir)
	}
	if f.Limit > 0 {
		tail += fmt.Sprintf(" LIMIT %d", f.Limit)
	}
	if f.Offset > 0 {
		tail += fmt.Sprintf(" OFFSET %d", f.Offset)
	}
	return strings.TrimSpace(tail), args
}

// CountTail is Tail without ordering and pagination, for total counts.
func (f Filters) CountTail(where []string, baseArgs []interface{}) (string, []interface{}) {
	noPage := f
	noPage.SortBy = ""
	noPage.Limit = 0
	noPage.Offset = 0
	return noPage.Tail(where, baseArgs)
}

func contains(list []string, v string) bool {
	if v == "" {
		return false
	}
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// ShopFilterSpec mirrors the shop listing's searchable and sortable
// columns.
var ShopFilterSpec = FilterSpec{
	SearchFields: []string{"name", "description", "wallet", "currency"},
	SortFields: []string{
		"name", "description", "wallet", "currency",
		"created_at", "updated_at",
	},
	FilterFields: []string{"currency", "allow_bitcoin", "allow_fiat"},
}

// ClientDataFilterSpec mirrors the order listing's searchable and
// sortable columns.
var ClientDataFilterSpec = FilterSpec{
	SearchFields: []string{"product", "address", "email", "number"},
	SortFields: []string{
		"product", "quantity", "address", "email", "number",
		"shipped", "paid", "created_at", "updated_at",
	},
	FilterFields: []string{"shipped", "paid"},
}
