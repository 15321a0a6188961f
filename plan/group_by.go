package plan

import (
	"fmt"
	"io"
	"strings"

	"github.com/AdrS/sql-interpreter/expression"
	"github.com/AdrS/sql-interpreter/expression/aggregation"
	"github.com/AdrS/sql-interpreter/sql"
)

// GroupBy sorts its child by GroupingColumns, walks the sorted stream
// forming runs of equal keys, and for each run allocates one fresh
// accumulator per entry in Aggregates, updates them with every row in the
// run, and emits (key values ++ aggregate finals). With an empty grouping
// list and at least one aggregate, the whole child forms a single
// implicit group, even when the child is empty.
type GroupBy struct {
	sql.UnaryNode
	GroupingColumns []sql.Expression
	Aggregates      []aggregation.Aggregation
}

// NewGroupBy returns a GroupBy over child, grouping by groupingColumns and
// computing aggregates per group.
func NewGroupBy(aggregates []aggregation.Aggregation, groupingColumns []sql.Expression, child sql.Node) *GroupBy {
	return &GroupBy{
		UnaryNode:       sql.UnaryNode{Child: child},
		GroupingColumns: groupingColumns,
		Aggregates:      aggregates,
	}
}

func (g *GroupBy) Schema() sql.Schema {
	cols := make([]*sql.Column, 0, len(g.GroupingColumns)+len(g.Aggregates))
	for _, e := range g.GroupingColumns {
		cols = append(cols, &sql.Column{Name: groupKeyName(e), Type: e.Type(), Nullable: e.Nullable()})
	}
	for _, a := range g.Aggregates {
		cols = append(cols, &sql.Column{Type: a.Type(), Nullable: a.Nullable()})
	}
	return sql.NewSchema(cols...)
}

func groupKeyName(e sql.Expression) string {
	if f, ok := e.(*expression.GetField); ok {
		return f.Name()
	}
	return ""
}

func (g *GroupBy) sortFields() []sql.SortField {
	fields := make([]sql.SortField, len(g.GroupingColumns))
	for i, e := range g.GroupingColumns {
		fields[i] = sql.SortField{Column: e, Order: sql.Ascending, NullsOrder: sql.NullsFirst}
	}
	return fields
}

func (g *GroupBy) keyOf(ctx *sql.Context, row sql.Row) (sql.Row, error) {
	key := make(sql.Row, len(g.GroupingColumns))
	for i, e := range g.GroupingColumns {
		v, err := e.Eval(ctx, row)
		if err != nil {
			return nil, err
		}
		key[i] = v
	}
	return key, nil
}

func sameKey(ctx *sql.Context, a, b sql.Row) bool {
	return sql.CompareRows(a, b, false) == 0
}

func (g *GroupBy) RowIter(ctx *sql.Context, row sql.Row) (sql.RowIter, error) {
	sorted := NewSort(g.sortFields(), g.Child)
	childIter, err := sorted.RowIter(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer childIter.Close(ctx)

	var rows []sql.Row
	for {
		r, err := childIter.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, r)
	}

	var out []sql.Row
	if len(rows) == 0 {
		if len(g.GroupingColumns) == 0 && len(g.Aggregates) > 0 {
			finalRow, err := g.emit(ctx, nil)
			if err != nil {
				return nil, err
			}
			out = append(out, finalRow)
		}
		return &sliceRowIter{rows: out}, nil
	}

	start := 0
	for start < len(rows) {
		key, err := g.keyOf(ctx, rows[start])
		if err != nil {
			return nil, err
		}
		end := start + 1
		for end < len(rows) {
			otherKey, err := g.keyOf(ctx, rows[end])
			if err != nil {
				return nil, err
			}
			if !sameKey(ctx, key, otherKey) {
				break
			}
			end++
		}
		finalRow, err := g.emit(ctx, rows[start:end])
		if err != nil {
			return nil, err
		}
		out = append(out, finalRow)
		start = end
	}
	return &sliceRowIter{rows: out}, nil
}

// emit computes one output row for a run of rows sharing the same
// grouping key (run may be empty only for the single-implicit-group
// case).
func (g *GroupBy) emit(ctx *sql.Context, run []sql.Row) (sql.Row, error) {
	out := make(sql.Row, 0, len(g.GroupingColumns)+len(g.Aggregates))
	if len(run) > 0 {
		key, err := g.keyOf(ctx, run[0])
		if err != nil {
			return nil, err
		}
		out = append(out, key...)
	} else {
		for range g.GroupingColumns {
			out = append(out, nil)
		}
	}
	for _, agg := range g.Aggregates {
		buf := agg.NewBuffer()
		for _, r := range run {
			if err := agg.Update(ctx, buf, r); err != nil {
				return nil, err
			}
		}
		v, err := agg.Eval(ctx, buf)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (g *GroupBy) String() string {
	keys := make([]string, len(g.GroupingColumns))
	for i, e := range g.GroupingColumns {
		keys[i] = e.String()
	}
	aggs := make([]string, len(g.Aggregates))
	for i, a := range g.Aggregates {
		aggs[i] = a.String()
	}
	return fmt.Sprintf("GroupBy(%s; %s)", strings.Join(keys, ", "), strings.Join(aggs, ", "))
}
