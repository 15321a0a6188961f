package expression

import (
	"fmt"

	"github.com/AdrS/sql-interpreter/sql"
)

// GetField is a reference to a column already bound to a position in the
// row it will be evaluated against.
// The binder builds these from the column environment entry that name
// resolution picked for an identifier; no GetField is ever constructed
// from raw parser output.
type GetField struct {
	index    int
	colType  sql.Type
	name     string
	nullable bool
}

// NewGetField returns a reference to row position index, of type t, with
// the given display name and nullability copied from the owning column.
func NewGetField(index int, t sql.Type, name string, nullable bool) *GetField {
	return &GetField{index: index, colType: t, name: name, nullable: nullable}
}

func (f *GetField) Index() int      { return f.index }
func (f *GetField) Type() sql.Type  { return f.colType }
func (f *GetField) Nullable() bool  { return f.nullable }
func (f *GetField) Name() string    { return f.name }

func (f *GetField) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	if f.index < 0 || f.index >= len(row) {
		return nil, fmt.Errorf("expression: GetField index %d out of range for row of length %d", f.index, len(row))
	}
	return row[f.index], nil
}

func (f *GetField) Children() []sql.Expression { return nil }

func (f *GetField) WithChildren(newChildren ...sql.Expression) (sql.Expression, error) {
	if len(newChildren) != 0 {
		return nil, fmt.Errorf("expression: GetField takes no children, got %d", len(newChildren))
	}
	return f, nil
}

func (f *GetField) String() string { return f.name }
