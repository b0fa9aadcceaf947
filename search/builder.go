package search

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Builder records the predicate and parameters written by
// ApplyDynamicSearchFilters so they can be attached to a gorm query later.
type Builder struct {
	predicate string
	names     []string
	params    map[string]any
}

var _ QueryBuilder = (*Builder)(nil)

func NewBuilder() *Builder {
	return &Builder{params: map[string]any{}}
}

// Where replaces the recorded predicate.
func (b *Builder) Where(predicate string) {
	b.predicate = predicate
}

// SetParameter binds value to name, overwriting an earlier binding.
func (b *Builder) SetParameter(name string, value any) {
	if b.params == nil {
		b.params = map[string]any{}
	}
	if _, ok := b.params[name]; !ok {
		b.names = append(b.names, name)
	}
	b.params[name] = value
}

func (b *Builder) Predicate() string {
	return b.predicate
}

// Parameters returns a copy of the bound parameters.
func (b *Builder) Parameters() map[string]any {
	out := make(map[string]any, len(b.params))
	for k, v := range b.params {
		out[k] = v
	}
	return out
}

// ParameterNames returns parameter names in the order they were first bound.
func (b *Builder) ParameterNames() []string {
	return append([]string(nil), b.names...)
}

func (b *Builder) Empty() bool {
	return b.predicate == ""
}

// Scope attaches the recorded predicate to a gorm query as a named
// expression. Parameters the predicate does not reference are not sent.
func (b *Builder) Scope() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if b.Empty() {
			return db
		}

		sql, used := b.namedSQL()
		if db.Dialector != nil && db.Dialector.Name() == "sqlite" {
			// sqlite has no ILIKE; its LIKE already ignores ASCII case
			sql = strings.ReplaceAll(sql, " ILIKE ", " LIKE ")
		}

		vars := make(map[string]interface{}, len(used))
		for _, name := range used {
			vars[name] = b.params[name]
		}
		return db.Where(clause.NamedExpr{SQL: sql, Vars: []interface{}{vars}})
	}
}

// namedSQL rewrites :name placeholders for bound names into gorm's @name
// form. Bound names are matched verbatim, so keys such as user.name or
// first-name are rewritten too. Casts written as :: are left untouched.
func (b *Builder) namedSQL() (string, []string) {
	var (
		sb   strings.Builder
		used []string
		seen = map[string]bool{}
		s    = b.predicate
	)
	sb.Grow(len(s))

	for i := 0; i < len(s); {
		if s[i] != ':' {
			sb.WriteByte(s[i])
			i++
			continue
		}
		if i+1 < len(s) && s[i+1] == ':' {
			sb.WriteString("::")
			i += 2
			continue
		}

		name := b.boundNameAt(s[i+1:])
		if name == "" {
			sb.WriteByte(':')
			i++
			continue
		}
		sb.WriteByte('@')
		sb.WriteString(name)
		if !seen[name] {
			seen[name] = true
			used = append(used, name)
		}
		i += 1 + len(name)
	}
	return sb.String(), used
}

// boundNameAt returns the longest bound name that s starts with and that is
// followed by a character ending a gorm named argument, or "".
func (b *Builder) boundNameAt(s string) string {
	var best string
	for _, name := range b.names {
		if len(name) <= len(best) || !strings.HasPrefix(s, name) {
			continue
		}
		if len(s) == len(name) || endsNamedArg(s[len(name)]) {
			best = name
		}
	}
	return best
}

// endsNamedArg reports whether c terminates an @name in gorm's NamedExpr.
func endsNamedArg(c byte) bool {
	switch c {
	case ' ', ',', ')', '"', '\'', '`', '\r', '\n', ';':
		return true
	}
	return false
}
