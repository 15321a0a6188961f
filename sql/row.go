package sql

import "io"

// Row is a single tuple: an ordered sequence of values, one per schema
// position. A nil element represents SQL NULL. Dynamic types are one of
// bool, int64, float64 or string, matching Boolean, Integer, Float and
// String respectively.
type Row []interface{}

// NewRow returns a Row containing values, unchanged. It exists so callers
// read `sql.NewRow(1, "a", nil)` instead of a bare composite literal.
func NewRow(values ...interface{}) Row {
	return Row(values)
}

// Copy returns a shallow copy of r, so a caller may retain a row across
// iterations of a RowIter that reuses its buffer.
func (r Row) Copy() Row {
	cp := make(Row, len(r))
	copy(cp, r)
	return cp
}

// RowIter is a pull-based cursor over a finite stream of tuples. Next
// returns io.EOF once exhausted. Close releases any buffered state the
// iterator holds (materialized Sort buffers, partial aggregate instances)
// and must be safe to call more than once.
type RowIter interface {
	Next(ctx *Context) (Row, error)
	Close(ctx *Context) error
}

// ErrIterDone is a convenience alias for io.EOF, the sentinel every RowIter
// implementation in this module returns once exhausted.
var ErrIterDone = io.EOF
