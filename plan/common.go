package plan

import (
	"io"

	"github.com/AdrS/sql-interpreter/sql"
)

// drainAll pulls n to completion and returns every row it produced. Used
// by the sort-merge set operators, which must see their whole input
// before emitting anything.
func drainAll(ctx *sql.Context, n sql.Node) ([]sql.Row, error) {
	iter, err := n.RowIter(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer iter.Close(ctx)

	var rows []sql.Row
	for {
		row, err := iter.Next(ctx)
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
}
