package plan

import (
	"fmt"

	"github.com/AdrS/sql-interpreter/sql"
)

// Distinct removes consecutive duplicate rows from its child. It is only
// ever wrapped around the sort-merge output of a set operation, where rows
// with equal content are already adjacent, so a consecutive-duplicate
// filter is sufficient; it does not hash the whole stream.
type Distinct struct {
	sql.UnaryNode
}

func NewDistinct(child sql.Node) *Distinct {
	return &Distinct{UnaryNode: sql.UnaryNode{Child: child}}
}

func (d *Distinct) Schema() sql.Schema { return d.Child.Schema() }

func (d *Distinct) RowIter(ctx *sql.Context, row sql.Row) (sql.RowIter, error) {
	childIter, err := d.Child.RowIter(ctx, row)
	if err != nil {
		return nil, err
	}
	return &distinctIter{child: childIter}, nil
}

type distinctIter struct {
	child   sql.RowIter
	prev    sql.Row
	hasPrev bool
}

func (i *distinctIter) Next(ctx *sql.Context) (sql.Row, error) {
	for {
		row, err := i.child.Next(ctx)
		if err != nil {
			return nil, err
		}
		if i.hasPrev && sql.CompareRows(i.prev, row, false) == 0 {
			continue
		}
		i.prev = row
		i.hasPrev = true
		return row, nil
	}
}

func (i *distinctIter) Close(ctx *sql.Context) error { return i.child.Close(ctx) }

func (d *Distinct) String() string { return fmt.Sprintf("Distinct(%s)", d.Child) }
