// Package aggregation implements the five aggregate functions COUNT, MIN,
// MAX, SUM and AVG. Each is split into a stateless description (the
// Aggregation itself, which reports Type/Nullable/String the way an
// sql.Expression does) and a per-group accumulator (a sql.Row "buffer"):
// NewBuffer allocates a fresh accumulator, Update folds one row into it,
// Merge combines two accumulators (used by a parallel pre-aggregation pass
// this engine doesn't have, but kept for interface fidelity), and Eval
// produces the final value.
package aggregation

import "github.com/AdrS/sql-interpreter/sql"

// Aggregation collapses "the aggregate function being computed" and "a
// factory that creates per-group accumulators" into one interface: the
// factory methods (Type, Nullable, NewBuffer) and the accumulator methods
// (Update, Merge, Eval) live on the same value, since neither this
// engine's GroupBy nor its tests need them separated - each Aggregation
// instance is stateless and NewBuffer is what plays the factory role.
type Aggregation interface {
	// Type is the result type of the aggregate.
	Type() sql.Type
	// Nullable reports whether Eval can return NULL for this aggregate.
	Nullable() bool
	// NewBuffer returns a fresh accumulator row for one group.
	NewBuffer() sql.Row
	// Update folds row into buffer.
	Update(ctx *sql.Context, buffer sql.Row, row sql.Row) error
	// Merge combines src into dst, as if every row folded into src had
	// instead been folded into dst directly.
	Merge(ctx *sql.Context, dst, src sql.Row) error
	// Eval returns the accumulated result.
	Eval(ctx *sql.Context, buffer sql.Row) (interface{}, error)
	String() string
}
