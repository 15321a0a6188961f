package aggregation

import "github.com/AdrS/sql-interpreter/sql"

// Avg averages the non-NULL values of Expr in a group, always as a FLOAT
// regardless of the operand's type. Eval returns NULL if the group is
// empty or every value was NULL.
type Avg struct {
	Expr sql.Expression
}

func NewAvg(expr sql.Expression) *Avg { return &Avg{Expr: expr} }

func (a *Avg) Type() sql.Type { return sql.Float }
func (a *Avg) Nullable() bool { return true }

// buffer layout: [0]=running sum (float64), [1]=count of non-NULL values
// seen (int64).
func (a *Avg) NewBuffer() sql.Row { return sql.NewRow(float64(0), int64(0)) }

func (a *Avg) Update(ctx *sql.Context, buffer sql.Row, row sql.Row) error {
	v, err := a.Expr.Eval(ctx, row)
	if err != nil || v == nil {
		return err
	}
	buffer[0] = buffer[0].(float64) + toFloat64(v)
	buffer[1] = buffer[1].(int64) + 1
	return nil
}

func (a *Avg) Merge(ctx *sql.Context, dst, src sql.Row) error {
	dst[0] = dst[0].(float64) + src[0].(float64)
	dst[1] = dst[1].(int64) + src[1].(int64)
	return nil
}

func (a *Avg) Eval(ctx *sql.Context, buffer sql.Row) (interface{}, error) {
	count := buffer[1].(int64)
	if count == 0 {
		return nil, nil
	}
	return buffer[0].(float64) / float64(count), nil
}

func (a *Avg) String() string { return "AVG(" + a.Expr.String() + ")" }
