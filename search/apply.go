package search

import (
	"fmt"
	"strings"

	"github.com/PayRam/go-search/request"
)

// QueryBuilder is the part of a query builder the search filters write to.
// Where sets the predicate, replacing any earlier one.
type QueryBuilder interface {
	Where(predicate string)
	SetParameter(name string, value any)
}

// FieldMap maps a searchable key to the column it is matched against.
type FieldMap map[string]string

// ApplyDynamicSearchFilters attaches a case-insensitive substring predicate
// for every filter whose key is in fields, AND-ed in input order.
//
// Every filter is bound as a parameter named after its key, including filters
// with no matching column. Keys and columns are written into the predicate
// as-is; see ValidateFieldMap.
func ApplyDynamicSearchFilters(qb QueryBuilder, filters []request.SearchFilter, fields FieldMap) {
	if len(filters) == 0 {
		return
	}

	conditions := make([]string, 0, len(filters))
	for _, f := range filters {
		column, ok := fields[f.Key]
		if !ok || column == "" {
			continue
		}
		conditions = append(conditions, fmt.Sprintf("%s ILIKE :%s", column, f.Key))
	}

	if len(conditions) > 0 {
		qb.Where(strings.Join(conditions, " AND "))
	}

	for _, f := range filters {
		qb.SetParameter(f.Key, "%"+f.Value+"%")
	}
}
