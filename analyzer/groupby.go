package analyzer

import (
	"fmt"

	"github.com/AdrS/sql-interpreter/expression"
	"github.com/AdrS/sql-interpreter/expression/aggregation"
	"github.com/AdrS/sql-interpreter/parser"
	"github.com/AdrS/sql-interpreter/sql"
)

// compileGroupByItem binds one GROUP BY entry. The grammar's colref
// production is narrower than the general expressions parseExpr accepts
// there, so an entry that isn't a bare (possibly qualified) column
// reference is rejected here rather than in the parser.
func compileGroupByItem(e parser.Expr, env environment) (envEntry, error) {
	switch v := e.(type) {
	case *parser.Identifier:
		return env.resolve("", v.Name)
	case *parser.QualifiedIdentifier:
		return env.resolve(v.Qualifier, v.Name)
	default:
		return envEntry{}, sql.ErrUnnamedColumnInGroupKey.New(e.String())
	}
}

// containsAggregate reports whether e or any descendant is an
// AggregateCall, walking generically through Children() the way the
// compiler walks any sql.Expression tree without needing to know its
// concrete node types.
func containsAggregate(e sql.Expression) bool {
	if e == nil {
		return false
	}
	if _, ok := e.(*expression.AggregateCall); ok {
		return true
	}
	for _, c := range e.Children() {
		if containsAggregate(c) {
			return true
		}
	}
	return false
}

// collectAggregates walks every compiled SELECT item and records one
// aggregation.Aggregation per AggregateCall node encountered, in the order
// found; assign maps each AggregateCall back to its position in the
// returned slice, which is also its offset into GroupBy's aggregate output
// columns.
func collectAggregates(items []sql.Expression) ([]aggregation.Aggregation, map[*expression.AggregateCall]int) {
	var aggs []aggregation.Aggregation
	assign := make(map[*expression.AggregateCall]int)
	var walk func(e sql.Expression)
	walk = func(e sql.Expression) {
		if e == nil {
			return
		}
		if ac, ok := e.(*expression.AggregateCall); ok {
			assign[ac] = len(aggs)
			aggs = append(aggs, ac.Agg)
			return
		}
		for _, c := range e.Children() {
			walk(c)
		}
	}
	for _, item := range items {
		walk(item)
	}
	return aggs, assign
}

// substitutePostGroup rewrites a SELECT item's compiled expression, built
// against the pre-GroupBy environment, into one valid against GroupBy's
// output row: every AggregateCall becomes a GetField into the aggregate
// output columns (at groupColumnCount+assign[ac]), and every GetField that
// referenced one of the grouping columns becomes a GetField at that
// column's new position. A GetField that matches neither - a column
// referenced outside an aggregate and outside the GROUP BY list - is
// exactly the classic "column must appear in GROUP BY or be aggregated"
// error.
func substitutePostGroup(e sql.Expression, assign map[*expression.AggregateCall]int, groupIndex map[int]int, groupColumnCount int) (sql.Expression, error) {
	if ac, ok := e.(*expression.AggregateCall); ok {
		idx, ok := assign[ac]
		if !ok {
			return nil, fmt.Errorf("analyzer: aggregate call %s missing from GroupBy plan", ac)
		}
		return expression.NewGetField(groupColumnCount+idx, ac.Type(), "", ac.Nullable()), nil
	}
	if gf, ok := e.(*expression.GetField); ok {
		newIndex, ok := groupIndex[gf.Index()]
		if !ok {
			return nil, sql.ErrColumnNotInGroupBy.New(gf.Name())
		}
		return expression.NewGetField(newIndex, gf.Type(), gf.Name(), gf.Nullable()), nil
	}
	children := e.Children()
	if len(children) == 0 {
		return e, nil
	}
	newChildren := make([]sql.Expression, len(children))
	changed := false
	for i, c := range children {
		nc, err := substitutePostGroup(c, assign, groupIndex, groupColumnCount)
		if err != nil {
			return nil, err
		}
		newChildren[i] = nc
		if nc != c {
			changed = true
		}
	}
	if !changed {
		return e, nil
	}
	return e.WithChildren(newChildren...)
}
