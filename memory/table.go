// Package memory implements the catalog and base-relation layer: an
// append-only in-memory row buffer and the name-normalized table catalog.
package memory

import (
	"io"

	"github.com/AdrS/sql-interpreter/sql"
)

// Table is a materialized base relation: an owned, growable slice of rows.
// The catalog (Database) exclusively owns Tables; every relation operator
// that reads from one holds only a borrowed *Table pointer, so an INSERT
// is visible through every operator tree built before it.
type Table struct {
	name   string
	schema sql.Schema
	rows   []sql.Row
}

// NewTable returns an empty table with the given name and schema.
func NewTable(name string, schema sql.Schema) *Table {
	return &Table{name: name, schema: schema}
}

func (t *Table) Name() string      { return t.name }
func (t *Table) Schema() sql.Schema { return t.schema }

// Len returns the current row count, used by Database.InsertRows to take
// and restore a checkpoint for atomic multi-row INSERT.
func (t *Table) Len() int { return len(t.rows) }

// Truncate keeps the first n rows and discards the rest, restoring the table to the
// size it had before a failed INSERT.
func (t *Table) Truncate(n int) { t.rows = t.rows[:n] }

// Insert validates values against the schema (arity, per-position type,
// nullability) and appends it. It does not roll back previously inserted
// rows of a multi-row statement; that's Database.InsertRows's job.
func (t *Table) Insert(values sql.Row) error {
	if len(values) != len(t.schema) {
		return sql.ErrInsertColumnCountMismatch.New(t.name, len(t.schema), len(values))
	}
	for i, v := range values {
		if err := t.schema[i].CheckValue(v); err != nil {
			return err
		}
	}
	t.rows = append(t.rows, values.Copy())
	return nil
}

// RowIter returns an iterator yielding rows in insertion order.
// Table.RowIter is itself restartable - iterating it again starts over -
// since tableRowIter copies out the row slice the table had at the moment
// iteration started, insensitive to inserts made mid-iteration.
func (t *Table) RowIter(ctx *sql.Context, row sql.Row) (sql.RowIter, error) {
	return &tableRowIter{rows: t.rows, pos: 0}, nil
}

type tableRowIter struct {
	rows []sql.Row
	pos  int
}

func (i *tableRowIter) Next(ctx *sql.Context) (sql.Row, error) {
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

func (i *tableRowIter) Close(ctx *sql.Context) error {
	i.rows = nil
	return nil
}
