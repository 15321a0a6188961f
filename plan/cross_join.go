package plan

import (
	"fmt"
	"io"

	"github.com/AdrS/sql-interpreter/sql"
)

// CrossJoin emits every pair of (left row, right row) in lhs-major,
// rhs-minor order: it finishes the right side once for every left row.
// The output schema is the left columns followed by the right columns,
// renumbered consecutively; column name collisions are left for the
// compiler to disambiguate via qualifiers.
type CrossJoin struct {
	sql.BinaryNode
}

func NewCrossJoin(left, right sql.Node) *CrossJoin {
	return &CrossJoin{BinaryNode: sql.BinaryNode{Left: left, Right: right}}
}

func (j *CrossJoin) Schema() sql.Schema {
	left := j.Left.Schema()
	right := j.Right.Schema()
	cols := make([]*sql.Column, 0, len(left)+len(right))
	for _, c := range left {
		cols = append(cols, c)
	}
	for _, c := range right {
		cols = append(cols, c)
	}
	return sql.NewSchema(cols...)
}

func (j *CrossJoin) RowIter(ctx *sql.Context, row sql.Row) (sql.RowIter, error) {
	leftIter, err := j.Left.RowIter(ctx, row)
	if err != nil {
		return nil, err
	}
	return &crossJoinIter{right: j.Right, left: leftIter, ctx: ctx}, nil
}

type crossJoinIter struct {
	right     sql.Node
	left      sql.RowIter
	rightIter sql.RowIter
	leftRow   sql.Row
	ctx       *sql.Context
}

func (i *crossJoinIter) Next(ctx *sql.Context) (sql.Row, error) {
	for {
		if i.rightIter == nil {
			leftRow, err := i.left.Next(ctx)
			if err != nil {
				return nil, err
			}
			i.leftRow = leftRow
			rightIter, err := i.right.RowIter(ctx, nil)
			if err != nil {
				return nil, err
			}
			i.rightIter = rightIter
		}

		rightRow, err := i.rightIter.Next(ctx)
		if err == io.EOF {
			i.rightIter.Close(ctx)
			i.rightIter = nil
			continue
		}
		if err != nil {
			return nil, err
		}

		out := make(sql.Row, 0, len(i.leftRow)+len(rightRow))
		out = append(out, i.leftRow...)
		out = append(out, rightRow...)
		return out, nil
	}
}

func (i *crossJoinIter) Close(ctx *sql.Context) error {
	if i.rightIter != nil {
		i.rightIter.Close(ctx)
	}
	return i.left.Close(ctx)
}

func (j *CrossJoin) String() string {
	return fmt.Sprintf("CrossJoin(%s, %s)", j.Left, j.Right)
}
