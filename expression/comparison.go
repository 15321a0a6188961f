package expression

import (
	"fmt"

	"github.com/AdrS/sql-interpreter/sql"
)

type compareOp int

const (
	opLT compareOp = iota
	opLE
	opEQ
	opGE
	opGT
	opNE
)

func (o compareOp) String() string {
	switch o {
	case opLT:
		return "<"
	case opLE:
		return "<="
	case opEQ:
		return "="
	case opGE:
		return ">="
	case opGT:
		return ">"
	case opNE:
		return "<>"
	default:
		return "?"
	}
}

// Comparison requires both operands to have the same ground type (no
// implicit numeric promotion); the result is BOOLEAN, NULL if either
// operand is NULL.
type Comparison struct {
	op          compareOp
	left, right sql.Expression
}

func newComparison(op compareOp, left, right sql.Expression) (*Comparison, error) {
	if left.Type() != right.Type() {
		return nil, sql.ErrOperandTypeMismatch.New(op, left.Type(), right.Type())
	}
	return &Comparison{op: op, left: left, right: right}, nil
}

func NewLessThan(left, right sql.Expression) (*Comparison, error) { return newComparison(opLT, left, right) }
func NewLessThanOrEqual(left, right sql.Expression) (*Comparison, error) {
	return newComparison(opLE, left, right)
}
func NewEquals(left, right sql.Expression) (*Comparison, error) { return newComparison(opEQ, left, right) }
func NewGreaterThanOrEqual(left, right sql.Expression) (*Comparison, error) {
	return newComparison(opGE, left, right)
}
func NewGreaterThan(left, right sql.Expression) (*Comparison, error) {
	return newComparison(opGT, left, right)
}
func NewNotEquals(left, right sql.Expression) (*Comparison, error) {
	return newComparison(opNE, left, right)
}

func (c *Comparison) Type() sql.Type { return sql.Boolean }
func (c *Comparison) Nullable() bool { return c.left.Nullable() || c.right.Nullable() }

func (c *Comparison) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	lv, err := c.left.Eval(ctx, row)
	if err != nil {
		return nil, err
	}
	if lv == nil {
		return nil, nil
	}
	rv, err := c.right.Eval(ctx, row)
	if err != nil {
		return nil, err
	}
	if rv == nil {
		return nil, nil
	}

	cmp := sql.CompareValues(lv, rv)
	switch c.op {
	case opLT:
		return cmp < 0, nil
	case opLE:
		return cmp <= 0, nil
	case opEQ:
		return cmp == 0, nil
	case opGE:
		return cmp >= 0, nil
	case opGT:
		return cmp > 0, nil
	case opNE:
		return cmp != 0, nil
	}
	panic("expression: unreachable comparison op")
}

func (c *Comparison) Children() []sql.Expression {
	return []sql.Expression{c.left, c.right}
}

func (c *Comparison) WithChildren(newChildren ...sql.Expression) (sql.Expression, error) {
	if len(newChildren) != 2 {
		return nil, fmt.Errorf("expression: Comparison takes 2 children, got %d", len(newChildren))
	}
	return newComparison(c.op, newChildren[0], newChildren[1])
}

func (c *Comparison) String() string {
	return fmt.Sprintf("(%s %s %s)", c.left, c.op, c.right)
}
