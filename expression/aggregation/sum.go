package aggregation

import "github.com/AdrS/sql-interpreter/sql"

// Sum adds the non-NULL values of Expr in a group. The result type follows
// the operand: FLOAT if Expr is FLOAT, otherwise INTEGER. Unlike Min/Max/
// Avg, Sum never returns NULL: an empty group or a group of all-NULL
// values sums to 0.
type Sum struct {
	Expr sql.Expression
}

func NewSum(expr sql.Expression) *Sum { return &Sum{Expr: expr} }

func (s *Sum) Type() sql.Type { return s.Expr.Type() }
func (s *Sum) Nullable() bool { return false }

func (s *Sum) zero() interface{} {
	if s.Expr.Type() == sql.Float {
		return float64(0)
	}
	return int64(0)
}

func (s *Sum) NewBuffer() sql.Row { return sql.NewRow(s.zero()) }

func (s *Sum) Update(ctx *sql.Context, buffer sql.Row, row sql.Row) error {
	v, err := s.Expr.Eval(ctx, row)
	if err != nil || v == nil {
		return err
	}
	buffer[0] = addNumeric(buffer[0], v, s.Expr.Type())
	return nil
}

func (s *Sum) Merge(ctx *sql.Context, dst, src sql.Row) error {
	dst[0] = addNumeric(dst[0], src[0], s.Expr.Type())
	return nil
}

func (s *Sum) Eval(ctx *sql.Context, buffer sql.Row) (interface{}, error) {
	return buffer[0], nil
}

func (s *Sum) String() string { return "SUM(" + s.Expr.String() + ")" }

// addNumeric adds v into acc, operating in float64 if t is FLOAT and int64
// otherwise.
func addNumeric(acc, v interface{}, t sql.Type) interface{} {
	if t == sql.Float {
		return acc.(float64) + toFloat64(v)
	}
	return acc.(int64) + v.(int64)
}

func toFloat64(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	default:
		panic("aggregation: toFloat64 called with non-numeric value")
	}
}
