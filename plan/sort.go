package plan

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/AdrS/sql-interpreter/sql"
)

// Sort materializes its child and stably sorts it by SortFields, or by
// plain lexicographic tuple order when SortFields is empty. Every RowIter
// call pulls the child to completion and sorts it again; the sorted rows
// are not kept between iterations.
type Sort struct {
	sql.UnaryNode
	SortFields []sql.SortField
}

// NewSort returns a Sort over child keyed by fields (nil or empty for
// lexicographic tuple order).
func NewSort(fields []sql.SortField, child sql.Node) *Sort {
	return &Sort{UnaryNode: sql.UnaryNode{Child: child}, SortFields: fields}
}

func (s *Sort) Schema() sql.Schema { return s.Child.Schema() }

// materialize pulls child to completion and returns the stably sorted
// rows.
func (s *Sort) materialize(ctx *sql.Context) ([]sql.Row, error) {
	childIter, err := s.Child.RowIter(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer childIter.Close(ctx)

	var rows []sql.Row
	for {
		row, err := childIter.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	less := s.lessFunc(ctx, rows)
	sort.SliceStable(rows, less)
	return rows, nil
}

func (s *Sort) lessFunc(ctx *sql.Context, rows []sql.Row) func(i, j int) bool {
	if len(s.SortFields) == 0 {
		return func(i, j int) bool {
			return sql.CompareRows(rows[i], rows[j], false) < 0
		}
	}
	return func(i, j int) bool {
		for _, f := range s.SortFields {
			lv, _ := f.Column.Eval(ctx, rows[i])
			rv, _ := f.Column.Eval(ctx, rows[j])
			c := sql.CompareNullable(lv, rv, f.NullsOrder == sql.NullsLast)
			if f.Order == sql.Descending {
				c = -c
			}
			if c != 0 {
				return c < 0
			}
		}
		return false
	}
}

func (s *Sort) RowIter(ctx *sql.Context, row sql.Row) (sql.RowIter, error) {
	rows, err := s.materialize(ctx)
	if err != nil {
		return nil, err
	}
	return &sliceRowIter{rows: rows}, nil
}

// sliceRowIter iterates a pre-materialized, owned slice of rows. It is the
// shared replay iterator for Sort, GroupBy, and the sort-merge set
// operators, all of which buffer their entire input before emitting.
type sliceRowIter struct {
	rows []sql.Row
	pos  int
}

func (i *sliceRowIter) Next(ctx *sql.Context) (sql.Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if i.pos >= len(i.rows) {
		return nil, io.EOF
	}
	row := i.rows[i.pos]
	i.pos++
	return row, nil
}

func (i *sliceRowIter) Close(ctx *sql.Context) error {
	i.rows = nil
	return nil
}

func (s *Sort) String() string {
	if len(s.SortFields) == 0 {
		return "Sort()"
	}
	parts := make([]string, len(s.SortFields))
	for i, f := range s.SortFields {
		dir := "ASC"
		if f.Order == sql.Descending {
			dir = "DESC"
		}
		parts[i] = fmt.Sprintf("%s %s", f.Column, dir)
	}
	return fmt.Sprintf("Sort(%s)", strings.Join(parts, ", "))
}
