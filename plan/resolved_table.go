// Package plan implements the streaming relation-operator tree the
// compiler emits: base-relation access, selection, projection, sort,
// sort-merge set operations, grouped aggregation and cross-join. Every
// node satisfies sql.Node and is restartable - RowIter can be called
// again after exhausting the previous iterator and observes a fresh pass
// over the child.
package plan

import "github.com/AdrS/sql-interpreter/sql"

// table is the subset of *memory.Table a ResolvedTable depends on. Kept as
// an interface rather than a concrete storage type so plan has no import
// on the memory package.
type table interface {
	Name() string
	Schema() sql.Schema
	RowIter(ctx *sql.Context, row sql.Row) (sql.RowIter, error)
}

// ResolvedTable is the leaf operator wrapping a base relation the compiler
// has already looked up in the catalog.
type ResolvedTable struct {
	Table table
}

// NewResolvedTable wraps t as a leaf relation operator.
func NewResolvedTable(t table) *ResolvedTable {
	return &ResolvedTable{Table: t}
}

func (r *ResolvedTable) Schema() sql.Schema { return r.Table.Schema() }

func (r *ResolvedTable) RowIter(ctx *sql.Context, row sql.Row) (sql.RowIter, error) {
	return r.Table.RowIter(ctx, row)
}

func (r *ResolvedTable) Children() []sql.Node { return nil }

func (r *ResolvedTable) String() string { return r.Table.Name() }
