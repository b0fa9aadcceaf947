package search

import (
	"errors"
	"fmt"
	"regexp"
	"sort"

	pg_query "github.com/pganalyze/pg_query_go/v5"

	"github.com/PayRam/go-search/request"
)

var identifierRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// InvalidKeyError is returned when a search key is not a plain identifier and
// would not survive being used as a named parameter.
type InvalidKeyError struct {
	Key string
}

func (e InvalidKeyError) Error() string {
	return fmt.Sprintf("invalid search key: %q", e.Key)
}

// InvalidColumnError is returned when a mapped column is not a single column
// reference.
type InvalidColumnError struct {
	Key    string
	Column string
	Reason string
}

func (e InvalidColumnError) Error() string {
	return fmt.Sprintf("invalid column for search key %q: %q (%s)", e.Key, e.Column, e.Reason)
}

// ValidateFieldMap checks that every key is a plain identifier and every
// column parses as a single column reference. ApplyDynamicSearchFilters does
// not call it; callers building a FieldMap from untrusted input should.
func ValidateFieldMap(fields FieldMap) error {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var errs []error
	for _, key := range keys {
		if !identifierRegex.MatchString(key) {
			errs = append(errs, InvalidKeyError{Key: key})
			continue
		}
		if err := validateColumn(key, fields[key]); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ValidateFilters checks that every filter key is a plain identifier.
func ValidateFilters(filters []request.SearchFilter) error {
	var errs []error
	for _, f := range filters {
		if !identifierRegex.MatchString(f.Key) {
			errs = append(errs, InvalidKeyError{Key: f.Key})
		}
	}
	return errors.Join(errs...)
}

func validateColumn(key, column string) error {
	if column == "" {
		return InvalidColumnError{Key: key, Column: column, Reason: "empty"}
	}

	result, err := pg_query.Parse(fmt.Sprintf("SELECT 1 WHERE %s ILIKE $1", column))
	if err != nil {
		return InvalidColumnError{Key: key, Column: column, Reason: err.Error()}
	}
	if len(result.GetStmts()) != 1 {
		return InvalidColumnError{Key: key, Column: column, Reason: "multiple statements"}
	}

	sel := result.GetStmts()[0].GetStmt().GetSelectStmt()
	if sel == nil {
		return InvalidColumnError{Key: key, Column: column, Reason: "not a select"}
	}
	expr := sel.GetWhereClause().GetAExpr()
	if expr == nil || expr.GetKind() != pg_query.A_Expr_Kind_AEXPR_ILIKE {
		return InvalidColumnError{Key: key, Column: column, Reason: "changes the predicate"}
	}
	if expr.GetLexpr().GetColumnRef() == nil {
		return InvalidColumnError{Key: key, Column: column, Reason: "not a column reference"}
	}
	if expr.GetRexpr().GetParamRef() == nil {
		return InvalidColumnError{Key: key, Column: column, Reason: "changes the predicate"}
	}
	return nil
}
