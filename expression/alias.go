package expression

import (
	"fmt"

	"github.com/AdrS/sql-interpreter/sql"
)

// Alias wraps an expression with an explicit output name (`SELECT expr AS
// name`). It is transparent to evaluation - Type, Nullable and Eval all
// delegate to the wrapped expression - and exists purely so the compiler
// can propagate the name into the output schema, including through
// GroupBy's aggregate output columns.
type Alias struct {
	name string
	expr sql.Expression
}

// NewAlias returns expr labeled with name.
func NewAlias(name string, expr sql.Expression) *Alias {
	return &Alias{name: name, expr: expr}
}

func (a *Alias) Name() string          { return a.name }
func (a *Alias) Unwrap() sql.Expression { return a.expr }
func (a *Alias) Type() sql.Type        { return a.expr.Type() }
func (a *Alias) Nullable() bool        { return a.expr.Nullable() }

func (a *Alias) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	return a.expr.Eval(ctx, row)
}

func (a *Alias) Children() []sql.Expression { return []sql.Expression{a.expr} }

func (a *Alias) WithChildren(newChildren ...sql.Expression) (sql.Expression, error) {
	if len(newChildren) != 1 {
		return nil, fmt.Errorf("expression: Alias takes 1 child, got %d", len(newChildren))
	}
	return NewAlias(a.name, newChildren[0]), nil
}

func (a *Alias) String() string { return fmt.Sprintf("%s AS %s", a.expr, a.name) }
