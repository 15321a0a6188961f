package expression

import (
	"fmt"

	"github.com/AdrS/sql-interpreter/sql"
)

// UnaryMinus negates a numeric expression, propagating NULL.
type UnaryMinus struct {
	expr sql.Expression
}

// NewUnaryMinus returns a UnaryMinus over expr, or an error if expr is not
// numeric.
func NewUnaryMinus(expr sql.Expression) (*UnaryMinus, error) {
	if !expr.Type().IsNumeric() {
		return nil, sql.ErrNonNumericOperand.New("unary -", expr.Type())
	}
	return &UnaryMinus{expr: expr}, nil
}

func (u *UnaryMinus) Type() sql.Type { return u.expr.Type() }
func (u *UnaryMinus) Nullable() bool { return u.expr.Nullable() }

func (u *UnaryMinus) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	v, err := u.expr.Eval(ctx, row)
	if err != nil || v == nil {
		return nil, err
	}
	switch n := v.(type) {
	case int64:
		return -n, nil
	case float64:
		return -n, nil
	default:
		panic("expression: UnaryMinus evaluated a non-numeric value")
	}
}

func (u *UnaryMinus) Children() []sql.Expression { return []sql.Expression{u.expr} }

func (u *UnaryMinus) WithChildren(newChildren ...sql.Expression) (sql.Expression, error) {
	if len(newChildren) != 1 {
		return nil, fmt.Errorf("expression: UnaryMinus takes 1 child, got %d", len(newChildren))
	}
	return NewUnaryMinus(newChildren[0])
}

func (u *UnaryMinus) String() string { return fmt.Sprintf("(-%s)", u.expr) }
