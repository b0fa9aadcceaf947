package search_test

import (
	"testing"

	"github.com/PayRam/go-search/request"
	"github.com/PayRam/go-search/search"
	"github.com/stretchr/testify/assert"
)

type call struct {
	method string
	name   string
	value  any
}

// recordingBuilder keeps every call so tests can assert on order and count.
type recordingBuilder struct {
	calls []call
}

func (r *recordingBuilder) Where(predicate string) {
	r.calls = append(r.calls, call{method: "Where", value: predicate})
}

func (r *recordingBuilder) SetParameter(name string, value any) {
	r.calls = append(r.calls, call{method: "SetParameter", name: name, value: value})
}

func filters(kv ...string) []request.SearchFilter {
	out := make([]request.SearchFilter, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		out = append(out, request.SearchFilter{Key: kv[i], Value: kv[i+1]})
	}
	return out
}

func TestApplyDynamicSearchFilters_NoFilters(t *testing.T) {
	for name, in := range map[string][]request.SearchFilter{
		"nil":   nil,
		"empty": {},
	} {
		t.Run(name, func(t *testing.T) {
			qb := &recordingBuilder{}
			search.ApplyDynamicSearchFilters(qb, in, search.FieldMap{"name": "u.name"})
			assert.Empty(t, qb.calls)
		})
	}
}

func TestApplyDynamicSearchFilters(t *testing.T) {
	tests := []struct {
		name       string
		filters    []request.SearchFilter
		fields     search.FieldMap
		predicate  string
		parameters map[string]any
	}{
		{
			"single mapped filter",
			filters("name", "a"),
			search.FieldMap{"name": "u.name"},
			"u.name ILIKE :name",
			map[string]any{"name": "%a%"},
		},
		{
			"unmapped key still binds",
			filters("x", "1"),
			search.FieldMap{},
			"",
			map[string]any{"x": "%1%"},
		},
		{
			"multiple filters in input order",
			filters("a", "1", "b", "2"),
			search.FieldMap{"a": "t.a", "b": "t.b"},
			"t.a ILIKE :a AND t.b ILIKE :b",
			map[string]any{"a": "%1%", "b": "%2%"},
		},
		{
			"input order wins over map order",
			filters("b", "2", "a", "1"),
			search.FieldMap{"a": "t.a", "b": "t.b"},
			"t.b ILIKE :b AND t.a ILIKE :a",
			map[string]any{"a": "%1%", "b": "%2%"},
		},
		{
			"repeated key",
			filters("a", "1", "a", "2"),
			search.FieldMap{"a": "t.a"},
			"t.a ILIKE :a AND t.a ILIKE :a",
			map[string]any{"a": "%2%"},
		},
		{
			"mixed mapped and unmapped",
			filters("a", "1", "zz", "q", "b", "2"),
			search.FieldMap{"a": "t.a", "b": "t.b"},
			"t.a ILIKE :a AND t.b ILIKE :b",
			map[string]any{"a": "%1%", "b": "%2%", "zz": "%q%"},
		},
		{
			"empty column is skipped",
			filters("a", "1"),
			search.FieldMap{"a": ""},
			"",
			map[string]any{"a": "%1%"},
		},
		{
			"empty value matches everything",
			filters("a", ""),
			search.FieldMap{"a": "t.a"},
			"t.a ILIKE :a",
			map[string]any{"a": "%%"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qb := search.NewBuilder()
			search.ApplyDynamicSearchFilters(qb, tt.filters, tt.fields)
			assert.Equal(t, tt.predicate, qb.Predicate())
			assert.Equal(t, tt.parameters, qb.Parameters())
		})
	}
}

func TestApplyDynamicSearchFilters_CallOrder(t *testing.T) {
	qb := &recordingBuilder{}
	search.ApplyDynamicSearchFilters(qb, filters("a", "1", "x", "9"), search.FieldMap{"a": "t.a"})

	assert.Equal(t, []call{
		{method: "Where", value: "t.a ILIKE :a"},
		{method: "SetParameter", name: "a", value: "%1%"},
		{method: "SetParameter", name: "x", value: "%9%"},
	}, qb.calls)
}

func TestApplyDynamicSearchFilters_NoWhereWithoutMappedKeys(t *testing.T) {
	qb := &recordingBuilder{}
	search.ApplyDynamicSearchFilters(qb, filters("x", "1"), search.FieldMap{})

	assert.Equal(t, []call{{method: "SetParameter", name: "x", value: "%1%"}}, qb.calls)
}

func TestApplyDynamicSearchFilters_Idempotent(t *testing.T) {
	in := filters("a", "1", "b", "2")
	fields := search.FieldMap{"a": "t.a", "b": "t.b"}

	once := search.NewBuilder()
	search.ApplyDynamicSearchFilters(once, in, fields)

	twice := search.NewBuilder()
	search.ApplyDynamicSearchFilters(twice, in, fields)
	search.ApplyDynamicSearchFilters(twice, in, fields)

	assert.Equal(t, once.Predicate(), twice.Predicate())
	assert.Equal(t, once.Parameters(), twice.Parameters())
	assert.Equal(t, once.ParameterNames(), twice.ParameterNames())
}

func TestApplyDynamicSearchFilters_ReplacesPredicate(t *testing.T) {
	qb := search.NewBuilder()
	qb.Where("t.deleted = false")

	search.ApplyDynamicSearchFilters(qb, filters("a", "1"), search.FieldMap{"a": "t.a"})
	assert.Equal(t, "t.a ILIKE :a", qb.Predicate())
}

func TestApplyDynamicSearchFilters_KeyInterpolatedVerbatim(t *testing.T) {
	qb := search.NewBuilder()
	search.ApplyDynamicSearchFilters(qb, filters("a OR 1=1", "x"), search.FieldMap{"a OR 1=1": "t.a"})

	assert.Equal(t, "t.a ILIKE :a OR 1=1", qb.Predicate())
	assert.Error(t, search.ValidateFilters(filters("a OR 1=1", "x")))
}
