// Package expression implements a typed expression tree: every node
// type-checks its operands at construction (returning an error instead of
// building an ill-typed tree) and evaluates against a row with SQL
// three-valued logic.
package expression

import (
	"fmt"

	"github.com/AdrS/sql-interpreter/sql"
)

// Literal is a fixed value of a known type. A Literal holding a nil Value
// represents the untyped NULL constant
// and reports the type it was constructed with. The binder gives a NULL
// operand of a binary operator the other operand's type and the operand of
// NOT the BOOLEAN type; any other NULL (including the operand of a CAST)
// is built as INTEGER.
type Literal struct {
	value   interface{}
	colType sql.Type
}

// NewLiteral returns a Literal of type t holding value (or NULL if value
// is nil).
func NewLiteral(value interface{}, t sql.Type) *Literal {
	return &Literal{value: value, colType: t}
}

func (l *Literal) Type() sql.Type { return l.colType }
func (l *Literal) Nullable() bool { return l.value == nil }

func (l *Literal) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	return l.value, nil
}

func (l *Literal) Children() []sql.Expression { return nil }

func (l *Literal) WithChildren(newChildren ...sql.Expression) (sql.Expression, error) {
	if len(newChildren) != 0 {
		return nil, fmt.Errorf("expression: Literal takes no children, got %d", len(newChildren))
	}
	return l, nil
}

func (l *Literal) String() string {
	if l.value == nil {
		return "NULL"
	}
	if l.colType == sql.String {
		return fmt.Sprintf("%q", l.value)
	}
	return fmt.Sprintf("%v", l.value)
}
