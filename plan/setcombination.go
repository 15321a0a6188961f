package plan

import (
	"fmt"

	"github.com/AdrS/sql-interpreter/sql"
)

// mergeFunc combines two ascending-sorted row slices into one ascending
// sorted slice, the Go analogue of original_source/relation.py's
// stream_union/stream_intersection/stream_difference generators.
type mergeFunc func(lhs, rhs []sql.Row) []sql.Row

// setCombination is the sort-merge operator behind UNION ALL, INTERSECT
// ALL and EXCEPT ALL: both children are fully sorted, then merged by
// combine. DISTINCT variants wrap this node in a Distinct node, valid
// because the merge output stays sorted.
type setCombination struct {
	sql.BinaryNode
	combine mergeFunc
	name    string
	schema  sql.Schema
}

func newSetCombination(name string, combine mergeFunc, left, right sql.Node) (*setCombination, error) {
	if !left.Schema().CompatibleForSetOp(right.Schema()) {
		return nil, sql.ErrSchemaMismatch.New(name)
	}
	return &setCombination{
		BinaryNode: sql.BinaryNode{Left: left, Right: right},
		combine:    combine,
		name:       name,
		schema:     left.Schema().MergeForSetOp(right.Schema()),
	}, nil
}

func (s *setCombination) Schema() sql.Schema { return s.schema }

func (s *setCombination) RowIter(ctx *sql.Context, row sql.Row) (sql.RowIter, error) {
	leftSorted, err := drainAll(ctx, NewSort(nil, s.Left))
	if err != nil {
		return nil, err
	}
	rightSorted, err := drainAll(ctx, NewSort(nil, s.Right))
	if err != nil {
		return nil, err
	}
	return &sliceRowIter{rows: s.combine(leftSorted, rightSorted)}, nil
}

func (s *setCombination) String() string {
	return fmt.Sprintf("%s(%s, %s)", s.name, s.Left, s.Right)
}

// mergeUnion yields every value from both sides, including duplicates.
func mergeUnion(lhs, rhs []sql.Row) []sql.Row {
	out := make([]sql.Row, 0, len(lhs)+len(rhs))
	i, j := 0, 0
	for i < len(lhs) && j < len(rhs) {
		if sql.CompareRows(lhs[i], rhs[j], false) <= 0 {
			out = append(out, lhs[i])
			i++
		} else {
			out = append(out, rhs[j])
			j++
		}
	}
	out = append(out, lhs[i:]...)
	out = append(out, rhs[j:]...)
	return out
}

// mergeIntersect yields, for each value v present on both sides with a
// occurrences on the left and b on the right, v repeated a+b times - the
// source's observed streaming-merge behavior rather than standard SQL bag
// intersection (min(a,b)); see DESIGN.md.
func mergeIntersect(lhs, rhs []sql.Row) []sql.Row {
	var out []sql.Row
	i, j := 0, 0
	for i < len(lhs) && j < len(rhs) {
		c := sql.CompareRows(lhs[i], rhs[j], false)
		if c < 0 {
			i++
			continue
		}
		if c > 0 {
			j++
			continue
		}
		value := lhs[i]
		for i < len(lhs) && sql.CompareRows(lhs[i], value, false) == 0 {
			out = append(out, lhs[i])
			i++
		}
		for j < len(rhs) && sql.CompareRows(rhs[j], value, false) == 0 {
			out = append(out, rhs[j])
			j++
		}
	}
	return out
}

// mergeExcept yields left-side rows whose value has no occurrence at all
// on the right; a value present on the right, in any multiplicity,
// suppresses every left occurrence of that value. This is the source's
// observed streaming-merge behavior; see DESIGN.md.
func mergeExcept(lhs, rhs []sql.Row) []sql.Row {
	var out []sql.Row
	i, j := 0, 0
	for i < len(lhs) && j < len(rhs) {
		c := sql.CompareRows(lhs[i], rhs[j], false)
		switch {
		case c < 0:
			value := lhs[i]
			for i < len(lhs) && sql.CompareRows(lhs[i], value, false) == 0 {
				out = append(out, lhs[i])
				i++
			}
		case c == 0:
			value := lhs[i]
			for i < len(lhs) && sql.CompareRows(lhs[i], value, false) == 0 {
				i++
			}
		default:
			j++
		}
	}
	out = append(out, lhs[i:]...)
	return out
}

// NewUnion returns UNION [ALL|DISTINCT] over left and right.
func NewUnion(left, right sql.Node, distinct bool) (sql.Node, error) {
	return newCombination("Union", mergeUnion, left, right, distinct)
}

// NewIntersect returns INTERSECT [ALL|DISTINCT] over left and right.
func NewIntersect(left, right sql.Node, distinct bool) (sql.Node, error) {
	return newCombination("Intersect", mergeIntersect, left, right, distinct)
}

// NewExcept returns EXCEPT [ALL|DISTINCT] over left and right.
func NewExcept(left, right sql.Node, distinct bool) (sql.Node, error) {
	return newCombination("Except", mergeExcept, left, right, distinct)
}

func newCombination(name string, combine mergeFunc, left, right sql.Node, distinct bool) (sql.Node, error) {
	node, err := newSetCombination(name, combine, left, right)
	if err != nil {
		return nil, err
	}
	if distinct {
		return NewDistinct(node), nil
	}
	return node, nil
}
