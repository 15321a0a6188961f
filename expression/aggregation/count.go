package aggregation

import "github.com/AdrS/sql-interpreter/sql"

// Count counts rows. With an explicit argument expression it counts rows
// where the argument is non-NULL; with the bare `COUNT(*)` form (Expr is
// nil) it counts every row in the group regardless of nullability. Count
// never returns NULL, including for an empty group, where it returns 0.
type Count struct {
	Expr sql.Expression
}

func NewCount(expr sql.Expression) *Count { return &Count{Expr: expr} }

func (c *Count) Type() sql.Type { return sql.Integer }
func (c *Count) Nullable() bool { return false }

func (c *Count) NewBuffer() sql.Row { return sql.NewRow(int64(0)) }

func (c *Count) Update(ctx *sql.Context, buffer sql.Row, row sql.Row) error {
	if c.Expr == nil {
		buffer[0] = buffer[0].(int64) + 1
		return nil
	}
	v, err := c.Expr.Eval(ctx, row)
	if err != nil {
		return err
	}
	if v != nil {
		buffer[0] = buffer[0].(int64) + 1
	}
	return nil
}

func (c *Count) Merge(ctx *sql.Context, dst, src sql.Row) error {
	dst[0] = dst[0].(int64) + src[0].(int64)
	return nil
}

func (c *Count) Eval(ctx *sql.Context, buffer sql.Row) (interface{}, error) {
	return buffer[0], nil
}

func (c *Count) String() string {
	if c.Expr == nil {
		return "COUNT(*)"
	}
	return "COUNT(" + c.Expr.String() + ")"
}
