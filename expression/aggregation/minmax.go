package aggregation

import "github.com/AdrS/sql-interpreter/sql"

// Min tracks the smallest non-NULL value of Expr seen in a group, ignoring
// NULLs. Eval returns NULL if the group is empty or every value was NULL.
type Min struct {
	Expr sql.Expression
}

func NewMin(expr sql.Expression) *Min { return &Min{Expr: expr} }

func (m *Min) Type() sql.Type { return m.Expr.Type() }
func (m *Min) Nullable() bool { return true }

func (m *Min) NewBuffer() sql.Row { return sql.NewRow(nil) }

func (m *Min) Update(ctx *sql.Context, buffer sql.Row, row sql.Row) error {
	v, err := m.Expr.Eval(ctx, row)
	if err != nil || v == nil {
		return err
	}
	if buffer[0] == nil || sql.CompareValues(v, buffer[0]) < 0 {
		buffer[0] = v
	}
	return nil
}

func (m *Min) Merge(ctx *sql.Context, dst, src sql.Row) error {
	if src[0] == nil {
		return nil
	}
	if dst[0] == nil || sql.CompareValues(src[0], dst[0]) < 0 {
		dst[0] = src[0]
	}
	return nil
}

func (m *Min) Eval(ctx *sql.Context, buffer sql.Row) (interface{}, error) {
	return buffer[0], nil
}

func (m *Min) String() string { return "MIN(" + m.Expr.String() + ")" }

// Max tracks the largest non-NULL value of Expr seen in a group, the dual
// of Min.
type Max struct {
	Expr sql.Expression
}

func NewMax(expr sql.Expression) *Max { return &Max{Expr: expr} }

func (m *Max) Type() sql.Type { return m.Expr.Type() }
func (m *Max) Nullable() bool { return true }

func (m *Max) NewBuffer() sql.Row { return sql.NewRow(nil) }

func (m *Max) Update(ctx *sql.Context, buffer sql.Row, row sql.Row) error {
	v, err := m.Expr.Eval(ctx, row)
	if err != nil || v == nil {
		return err
	}
	if buffer[0] == nil || sql.CompareValues(v, buffer[0]) > 0 {
		buffer[0] = v
	}
	return nil
}

func (m *Max) Merge(ctx *sql.Context, dst, src sql.Row) error {
	if src[0] == nil {
		return nil
	}
	if dst[0] == nil || sql.CompareValues(src[0], dst[0]) > 0 {
		dst[0] = src[0]
	}
	return nil
}

func (m *Max) Eval(ctx *sql.Context, buffer sql.Row) (interface{}, error) {
	return buffer[0], nil
}

func (m *Max) String() string { return "MAX(" + m.Expr.String() + ")" }
