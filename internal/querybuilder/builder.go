// Package querybuilder composes read queries from a fixed base clause and a
// list of optional equality filters. Values are always bound as $n arguments.
package querybuilder

import (
	"strconv"
	"strings"
)

// Query is the SQL text plus its positional arguments.
type Query struct {
	Text string
	Args []any
}

type predicate struct {
	column string
	value  string
}

// Select accumulates filters in call order.
type Select struct {
	base    string
	where   []predicate
	orderBy string
}

// New starts a query from the base selection, e.g. "SELECT * FROM leagues".
func New(base string) *Select {
	return &Select{base: strings.TrimSpace(base)}
}

// Eq adds "column = $n" when value is non-empty. Empty values mean the filter
// was not supplied and are skipped without consuming a placeholder.
func (s *Select) Eq(column, value string) *Select {
	if value == "" {
		return s
	}
	s.where = append(s.where, predicate{column: column, value: value})
	return s
}

// OrderBy sets the trailing ordering clause, e.g. "created_at DESC".
func (s *Select) OrderBy(clause string) *Select {
	s.orderBy = strings.TrimSpace(clause)
	return s
}

// Build renders the query. The filter clause is omitted entirely when no
// filter is present.
func (s *Select) Build() Query {
	var buf strings.Builder
	buf.WriteString(s.base)

	args := make([]any, 0, len(s.where))
	if len(s.where) > 0 {
		buf.WriteString(" WHERE ")
		for i, p := range s.where {
			if i > 0 {
				buf.WriteString(" AND ")
			}
			args = append(args, p.value)
			buf.WriteString(p.column)
			buf.WriteString(" = ")
			buf.WriteString(placeholder(len(args)))
		}
	}

	if s.orderBy != "" {
		buf.WriteString(" ORDER BY ")
		buf.WriteString(s.orderBy)
	}

	return Query{Text: buf.String(), Args: args}
}

func placeholder(i int) string {
	return "$" + strconv.Itoa(i)
}
