package store

import (
	"fmt"
	"strings"
)

// queryBuilder assembles a SQL statement whose conditional clauses carry
// positional parameters. A clause and its argument are appended in a single
// step; the placeholder number is derived from the argument count.
type queryBuilder struct {
	sql  strings.Builder
	args []any
}

func newQueryBuilder(base string) *queryBuilder {
	b := &queryBuilder{}
	b.sql.WriteString(base)
	return b
}

// Where appends a WHERE clause binding arg to the next placeholder.
func (b *queryBuilder) Where(cond string, arg any) *queryBuilder {
	return b.appendCond(" WHERE ", cond, arg)
}

// And appends an AND clause binding arg to the next placeholder.
func (b *queryBuilder) And(cond string, arg any) *queryBuilder {
	return b.appendCond(" AND ", cond, arg)
}

// OrderBy appends an ORDER BY over the given expression.
func (b *queryBuilder) OrderBy(expr string) *queryBuilder {
	b.sql.WriteString(" ORDER BY ")
	b.sql.WriteString(expr)
	return b
}

// Limit appends a LIMIT clause binding n to the next placeholder.
func (b *queryBuilder) Limit(n int32) *queryBuilder {
	b.args = append(b.args, n)
	b.sql.WriteString(fmt.Sprintf(" LIMIT $%d", len(b.args)))
	return b
}

// SQL returns the assembled statement.
func (b *queryBuilder) SQL() string {
	return b.sql.String()
}

// Args returns the parameters in placeholder order.
func (b *queryBuilder) Args() []any {
	return b.args
}

func (b *queryBuilder) appendCond(keyword, cond string, arg any) *queryBuilder {
	b.args = append(b.args, arg)
	b.sql.WriteString(fmt.Sprintf("%s%s $%d", keyword, cond, len(b.args)))
	return b
}
