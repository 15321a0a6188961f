package expression

import (
	"fmt"

	"github.com/AdrS/sql-interpreter/sql"
)

// IsNull tests whether expr is NULL. Unlike every other boolean
// expression it never itself evaluates to NULL.
type IsNull struct {
	expr sql.Expression
}

func NewIsNull(expr sql.Expression) *IsNull { return &IsNull{expr: expr} }

func (n *IsNull) Type() sql.Type { return sql.Boolean }
func (n *IsNull) Nullable() bool { return false }

func (n *IsNull) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	v, err := n.expr.Eval(ctx, row)
	if err != nil {
		return nil, err
	}
	return v == nil, nil
}

func (n *IsNull) Children() []sql.Expression { return []sql.Expression{n.expr} }

func (n *IsNull) WithChildren(newChildren ...sql.Expression) (sql.Expression, error) {
	if len(newChildren) != 1 {
		return nil, fmt.Errorf("expression: IsNull takes 1 child, got %d", len(newChildren))
	}
	return NewIsNull(newChildren[0]), nil
}

func (n *IsNull) String() string { return fmt.Sprintf("(%s IS NULL)", n.expr) }

// IsNotNull is the complement of IsNull.
type IsNotNull struct {
	expr sql.Expression
}

func NewIsNotNull(expr sql.Expression) *IsNotNull { return &IsNotNull{expr: expr} }

func (n *IsNotNull) Type() sql.Type { return sql.Boolean }
func (n *IsNotNull) Nullable() bool { return false }

func (n *IsNotNull) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	v, err := n.expr.Eval(ctx, row)
	if err != nil {
		return nil, err
	}
	return v != nil, nil
}

func (n *IsNotNull) Children() []sql.Expression { return []sql.Expression{n.expr} }

func (n *IsNotNull) WithChildren(newChildren ...sql.Expression) (sql.Expression, error) {
	if len(newChildren) != 1 {
		return nil, fmt.Errorf("expression: IsNotNull takes 1 child, got %d", len(newChildren))
	}
	return NewIsNotNull(newChildren[0]), nil
}

func (n *IsNotNull) String() string { return fmt.Sprintf("(%s IS NOT NULL)", n.expr) }
