package query

import "strings"

// Clause is a single equality condition and its bind value.
type Clause struct {
	Column Column
	Value  any
}

// Predicate is an ordered conjunction of equality clauses.
//
// A column appears at most once; adding it again is a no-op. The zero
// value is the empty predicate, which selects every row.
type Predicate struct {
	clauses []Clause
}

// Eq returns p with "column = value" appended.
func (p Predicate) Eq(column Column, value any) Predicate {
	if p.Has(column) {
		return p
	}

	clauses := make([]Clause, len(p.clauses), len(p.clauses)+1)
	copy(clauses, p.clauses)
	p.clauses = append(clauses, Clause{Column: column, Value: value})
	return p
}

// Has reports whether column is already constrained.
func (p Predicate) Has(column Column) bool {
	for _, c := range p.clauses {
		if c.Column == column {
			return true
		}
	}
	return false
}

// Empty reports whether the predicate has no clauses.
func (p Predicate) Empty() bool {
	return len(p.clauses) == 0
}

// Clauses returns a copy of the clauses in append order.
func (p Predicate) Clauses() []Clause {
	return append([]Clause(nil), p.clauses...)
}

// ToSQL renders the predicate body (without WHERE) and the bind values,
// one per clause, in append order. An empty predicate renders as "".
func (p Predicate) ToSQL(format PlaceholderFormat) (string, []any) {
	if p.Empty() {
		return "", nil
	}

	parts := make([]string, 0, len(p.clauses))
	args := make([]any, 0, len(p.clauses))
	for i, c := range p.clauses {
		parts = append(parts, string(c.Column)+" = "+format.placeholder(i+1))
		args = append(args, c.Value)
	}

	return strings.Join(parts, " AND "), args
}
