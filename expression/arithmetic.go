package expression

import (
	"fmt"

	"github.com/AdrS/sql-interpreter/sql"
)

type arithOp int

const (
	opPlus arithOp = iota
	opMinus
	opMult
	opDiv
)

func (o arithOp) String() string {
	switch o {
	case opPlus:
		return "+"
	case opMinus:
		return "-"
	case opMult:
		return "*"
	case opDiv:
		return "/"
	default:
		return "?"
	}
}

// Arithmetic requires both operands numeric; the result type is FLOAT if
// either operand is FLOAT else INTEGER. Division of two INTEGERs truncates
// toward zero; any other combination is true division; division by zero is
// an evaluation-time error.
type Arithmetic struct {
	op          arithOp
	left, right sql.Expression
	resultType  sql.Type
}

func newArithmetic(op arithOp, left, right sql.Expression) (*Arithmetic, error) {
	if !left.Type().IsNumeric() {
		return nil, sql.ErrNonNumericOperand.New(op, left.Type())
	}
	if !right.Type().IsNumeric() {
		return nil, sql.ErrNonNumericOperand.New(op, right.Type())
	}
	resultType := sql.Integer
	if left.Type() == sql.Float || right.Type() == sql.Float {
		resultType = sql.Float
	}
	return &Arithmetic{op: op, left: left, right: right, resultType: resultType}, nil
}

func NewPlus(left, right sql.Expression) (*Arithmetic, error)  { return newArithmetic(opPlus, left, right) }
func NewMinus(left, right sql.Expression) (*Arithmetic, error) { return newArithmetic(opMinus, left, right) }
func NewMult(left, right sql.Expression) (*Arithmetic, error)  { return newArithmetic(opMult, left, right) }
func NewDiv(left, right sql.Expression) (*Arithmetic, error)   { return newArithmetic(opDiv, left, right) }

func (a *Arithmetic) Type() sql.Type { return a.resultType }
func (a *Arithmetic) Nullable() bool { return a.left.Nullable() || a.right.Nullable() }

func (a *Arithmetic) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	lv, err := a.left.Eval(ctx, row)
	if err != nil {
		return nil, err
	}
	if lv == nil {
		return nil, nil
	}
	rv, err := a.right.Eval(ctx, row)
	if err != nil {
		return nil, err
	}
	if rv == nil {
		return nil, nil
	}

	if a.resultType == sql.Float {
		l, r := toFloat(lv), toFloat(rv)
		switch a.op {
		case opPlus:
			return l + r, nil
		case opMinus:
			return l - r, nil
		case opMult:
			return l * r, nil
		case opDiv:
			if r == 0 {
				return nil, sql.ErrDivisionByZero.New()
			}
			return l / r, nil
		}
	}

	l, r := lv.(int64), rv.(int64)
	switch a.op {
	case opPlus:
		return l + r, nil
	case opMinus:
		return l - r, nil
	case opMult:
		return l * r, nil
	case opDiv:
		if r == 0 {
			return nil, sql.ErrDivisionByZero.New()
		}
		return l / r, nil // Go integer division truncates toward zero
	}
	panic("expression: unreachable arithmetic op")
}

func toFloat(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	default:
		panic("expression: toFloat called with non-numeric value")
	}
}

func (a *Arithmetic) Children() []sql.Expression {
	return []sql.Expression{a.left, a.right}
}

func (a *Arithmetic) WithChildren(newChildren ...sql.Expression) (sql.Expression, error) {
	if len(newChildren) != 2 {
		return nil, fmt.Errorf("expression: Arithmetic takes 2 children, got %d", len(newChildren))
	}
	return newArithmetic(a.op, newChildren[0], newChildren[1])
}

func (a *Arithmetic) String() string {
	return fmt.Sprintf("(%s %s %s)", a.left, a.op, a.right)
}
