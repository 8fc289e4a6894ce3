// Package query composes WHERE clauses out of a base predicate and optional,
// individually parameterized fragments.
package query

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Base is the always-true predicate every clause starts from.
const Base = "1 = 1"

type fragment struct {
	sql  string
	args []interface{}
}

// Builder accumulates conjunctive predicates. Fragments must use "?" placeholders
// for every value; only static column names may appear literally.
type Builder struct {
	frags []fragment
}

// New returns a builder holding only the base predicate.
func New() *Builder {
	return &Builder{}
}

// And appends a predicate unconditionally.
func (b *Builder) And(sql string, args ...interface{}) *Builder {
	b.frags = append(b.frags, fragment{sql: sql, args: args})
	return b
}

// AndIf appends the predicate only when cond holds.
func (b *Builder) AndIf(cond bool, sql string, args ...interface{}) *Builder {
	if cond {
		return b.And(sql, args...)
	}
	return b
}

// Eq appends "column = ?" when value is non-blank.
func (b *Builder) Eq(column, value string) *Builder {
	value = strings.TrimSpace(value)
	return b.AndIf(value != "", column+" = ?", value)
}

// likeEscaper makes LIKE wildcards in a search term match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// Contains appends a case-insensitive substring match across columns, OR-ed together.
func (b *Builder) Contains(value string, columns ...string) *Builder {
	value = strings.TrimSpace(value)
	if value == "" || len(columns) == 0 {
		return b
	}
	pattern := "%" + likeEscaper.Replace(strings.ToLower(value)) + "%"
	parts := make([]string, len(columns))
	args := make([]interface{}, len(columns))
	for i, col := range columns {
		parts[i] = "LOWER(" + col + `) LIKE ? ESCAPE '\'`
		args[i] = pattern
	}
	return b.And("("+strings.Join(parts, " OR ")+")", args...)
}

// Len reports how many optional fragments were added.
func (b *Builder) Len() int {
	return len(b.frags)
}

// Build renders the clause and its bound arguments. It fails when a fragment's
// placeholder count does not match its argument count.
func (b *Builder) Build() (string, []interface{}, error) {
	parts := []string{Base}
	var args []interface{}
	for _, f := range b.frags {
		if n := strings.Count(f.sql, "?"); n != len(f.args) {
			return "", nil, fmt.Errorf("query: fragment %q has %d placeholders but %d args", f.sql, n, len(f.args))
		}
		parts = append(parts, f.sql)
		args = append(args, f.args...)
	}
	return strings.Join(parts, " AND "), args, nil
}

// Scope applies the built clause to a gorm query.
func (b *Builder) Scope() (func(*gorm.DB) *gorm.DB, error) {
	clause, args, err := b.Build()
	if err != nil {
		return nil, err
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(clause, args...)
	}, nil
}
