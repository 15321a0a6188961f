package expression

import (
	"fmt"

	"github.com/AdrS/sql-interpreter/sql"
)

// And evaluates with SQL three-valued logic via sql.And3, short-circuiting
// when the left operand is already false.
type And struct {
	left, right sql.Expression
}

// NewAnd returns an And node, or an error if either operand isn't BOOLEAN.
func NewAnd(left, right sql.Expression) (*And, error) {
	if left.Type() != sql.Boolean {
		return nil, sql.ErrNonBooleanOperand.New("AND", left.Type())
	}
	if right.Type() != sql.Boolean {
		return nil, sql.ErrNonBooleanOperand.New("AND", right.Type())
	}
	return &And{left: left, right: right}, nil
}

func (a *And) Type() sql.Type { return sql.Boolean }
func (a *And) Nullable() bool { return a.left.Nullable() || a.right.Nullable() }

func (a *And) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	lv, err := a.left.Eval(ctx, row)
	if err != nil {
		return nil, err
	}
	if lv == false {
		return false, nil
	}
	rv, err := a.right.Eval(ctx, row)
	if err != nil {
		return nil, err
	}
	return sql.And3(lv, rv), nil
}

func (a *And) Children() []sql.Expression { return []sql.Expression{a.left, a.right} }

func (a *And) WithChildren(newChildren ...sql.Expression) (sql.Expression, error) {
	if len(newChildren) != 2 {
		return nil, fmt.Errorf("expression: And takes 2 children, got %d", len(newChildren))
	}
	return NewAnd(newChildren[0], newChildren[1])
}

func (a *And) String() string { return fmt.Sprintf("(%s AND %s)", a.left, a.right) }

// Or evaluates with SQL three-valued logic via sql.Or3, short-circuiting
// when the left operand is already true.
type Or struct {
	left, right sql.Expression
}

// NewOr returns an Or node, or an error if either operand isn't BOOLEAN.
func NewOr(left, right sql.Expression) (*Or, error) {
	if left.Type() != sql.Boolean {
		return nil, sql.ErrNonBooleanOperand.New("OR", left.Type())
	}
	if right.Type() != sql.Boolean {
		return nil, sql.ErrNonBooleanOperand.New("OR", right.Type())
	}
	return &Or{left: left, right: right}, nil
}

func (o *Or) Type() sql.Type { return sql.Boolean }
func (o *Or) Nullable() bool { return o.left.Nullable() || o.right.Nullable() }

func (o *Or) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	lv, err := o.left.Eval(ctx, row)
	if err != nil {
		return nil, err
	}
	if lv == true {
		return true, nil
	}
	rv, err := o.right.Eval(ctx, row)
	if err != nil {
		return nil, err
	}
	return sql.Or3(lv, rv), nil
}

func (o *Or) Children() []sql.Expression { return []sql.Expression{o.left, o.right} }

func (o *Or) WithChildren(newChildren ...sql.Expression) (sql.Expression, error) {
	if len(newChildren) != 2 {
		return nil, fmt.Errorf("expression: Or takes 2 children, got %d", len(newChildren))
	}
	return NewOr(newChildren[0], newChildren[1])
}

func (o *Or) String() string { return fmt.Sprintf("(%s OR %s)", o.left, o.right) }
