package expression

import (
	"fmt"

	"github.com/AdrS/sql-interpreter/sql"
)

// Not negates a boolean expression using SQL three-valued logic (NOT NULL
// is NULL).
type Not struct {
	expr sql.Expression
}

// NewNot returns a Not node, or an error if expr isn't BOOLEAN.
func NewNot(expr sql.Expression) (*Not, error) {
	if expr.Type() != sql.Boolean {
		return nil, sql.ErrNonBooleanOperand.New("NOT", expr.Type())
	}
	return &Not{expr: expr}, nil
}

func (n *Not) Type() sql.Type { return sql.Boolean }
func (n *Not) Nullable() bool { return n.expr.Nullable() }

func (n *Not) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	v, err := n.expr.Eval(ctx, row)
	if err != nil {
		return nil, err
	}
	return sql.Not3(v), nil
}

func (n *Not) Children() []sql.Expression { return []sql.Expression{n.expr} }

func (n *Not) WithChildren(newChildren ...sql.Expression) (sql.Expression, error) {
	if len(newChildren) != 1 {
		return nil, fmt.Errorf("expression: Not takes 1 child, got %d", len(newChildren))
	}
	return NewNot(newChildren[0])
}

func (n *Not) String() string { return fmt.Sprintf("(NOT %s)", n.expr) }
