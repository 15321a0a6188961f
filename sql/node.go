package sql

// Expression is a typed, evaluable node in an expression tree. Every
// constructor in the expression package checks its operands' reported
// types at construction time and returns a construction error before an
// ill-typed tree can exist.
type Expression interface {
	// Type returns the static type this expression evaluates to.
	Type() Type
	// Nullable reports whether Eval can return nil for some row.
	Nullable() bool
	// Eval evaluates the expression against row. It is pure and
	// deterministic.
	Eval(ctx *Context, row Row) (interface{}, error)
	// Children returns the expression's direct operands, for generic
	// tree walks (aggregate detection and collection).
	Children() []Expression
	// WithChildren returns a copy of the expression with its children
	// replaced by newChildren, which must have the same length and
	// compatible types as Children(). Used by the compiler to rewrite
	// aggregate subexpressions into GetField references post-GroupBy.
	WithChildren(newChildren ...Expression) (Expression, error)
	String() string
}

// Node is a relation operator: a schema plus a restartable stream of rows
// matching that schema. RowIter's row parameter carries the current outer
// row for nodes evaluated in a correlated context; every Node in this
// engine ignores it since the grammar has no correlated subqueries, but
// the parameter is kept so every relation operator shares one RowIter
// shape regardless of whether it happens to need the outer row.
type Node interface {
	Schema() Schema
	RowIter(ctx *Context, row Row) (RowIter, error)
	Children() []Node
	String() string
}

// UnaryNode is embedded by relation operators with exactly one child,
// providing Children() and a Child field, the composition
// Filter/Project/Sort/Distinct/GroupBy all share.
type UnaryNode struct {
	Child Node
}

func (n *UnaryNode) Children() []Node {
	return []Node{n.Child}
}

// BinaryNode is embedded by relation operators with exactly two children
// (CrossJoin and the sort-merge set operators).
type BinaryNode struct {
	Left, Right Node
}

func (n *BinaryNode) Children() []Node {
	return []Node{n.Left, n.Right}
}

// SortOrder is the direction a SortField orders its column.
type SortOrder int

const (
	Ascending SortOrder = iota
	Descending
)

// NullsOrder controls where NULL values land relative to non-NULL values
// in a sort, independent of SortOrder.
type NullsOrder int

const (
	NullsLast NullsOrder = iota
	NullsFirst
)

// SortField is one key of a Sort or GroupBy operator: which expression to
// compare by, in which direction, and where NULLs land.
type SortField struct {
	Column     Expression
	Order      SortOrder
	NullsOrder NullsOrder
}
