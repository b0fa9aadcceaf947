// Package search turns key/value search filters into a case-insensitive
// substring WHERE predicate with named parameters.
//
// Filters are written to a QueryBuilder. Builder is the implementation used
// with gorm: it records the predicate and parameters and attaches them to a
// query through Scope.
//
//	qb := search.NewBuilder()
//	search.ApplyDynamicSearchFilters(qb, req.Search, search.FieldMap{"email": "users.email"})
//	db.Scopes(qb.Scope()).Find(&users)
package search
