package plan

import (
	"fmt"

	"github.com/AdrS/sql-interpreter/sql"
)

// Filter is the Selection operator: it yields each child row for which
// Predicate evaluates to exactly true, excluding both false and NULL.
type Filter struct {
	sql.UnaryNode
	Predicate sql.Expression
}

// NewFilter returns a Filter node, or an error if predicate isn't BOOLEAN.
func NewFilter(predicate sql.Expression, child sql.Node) (*Filter, error) {
	if predicate.Type() != sql.Boolean {
		return nil, sql.ErrNonBooleanPredicate.New(predicate.Type())
	}
	return &Filter{UnaryNode: sql.UnaryNode{Child: child}, Predicate: predicate}, nil
}

func (f *Filter) Schema() sql.Schema { return f.Child.Schema() }

func (f *Filter) RowIter(ctx *sql.Context, row sql.Row) (sql.RowIter, error) {
	childIter, err := f.Child.RowIter(ctx, row)
	if err != nil {
		return nil, err
	}
	return &filterIter{predicate: f.Predicate, child: childIter}, nil
}

type filterIter struct {
	predicate sql.Expression
	child     sql.RowIter
}

func (i *filterIter) Next(ctx *sql.Context) (sql.Row, error) {
	for {
		row, err := i.child.Next(ctx)
		if err != nil {
			return nil, err
		}
		v, err := i.predicate.Eval(ctx, row)
		if err != nil {
			return nil, err
		}
		if sql.IsTrueForPredicate(v) {
			return row, nil
		}
	}
}

func (i *filterIter) Close(ctx *sql.Context) error { return i.child.Close(ctx) }

func (f *Filter) String() string { return fmt.Sprintf("Filter(%s)", f.Predicate) }
