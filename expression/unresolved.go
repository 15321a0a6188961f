package expression

import (
	"fmt"

	"github.com/AdrS/sql-interpreter/sql"
)

// UnresolvedColumn is a name-only column reference for a bare or qualified
// identifier. Neither the parser (which produces parser.Identifier) nor
// the binder (package analyzer, which builds GetField directly) constructs
// one; Eval always returns an error.
type UnresolvedColumn struct {
	// Qualifier is empty for a bare identifier, or the table/alias name
	// for a qualified reference (`q.c`).
	Qualifier string
	Name      string
}

func NewUnresolvedColumn(name string) *UnresolvedColumn {
	return &UnresolvedColumn{Name: name}
}

func NewUnresolvedQualifiedColumn(qualifier, name string) *UnresolvedColumn {
	return &UnresolvedColumn{Qualifier: qualifier, Name: name}
}

func (c *UnresolvedColumn) Type() sql.Type { return sql.Unknown }
func (c *UnresolvedColumn) Nullable() bool { return false }

func (c *UnresolvedColumn) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	return nil, fmt.Errorf("expression: unresolved column %s was not bound before evaluation", c)
}

func (c *UnresolvedColumn) Children() []sql.Expression { return nil }

func (c *UnresolvedColumn) WithChildren(newChildren ...sql.Expression) (sql.Expression, error) {
	if len(newChildren) != 0 {
		return nil, fmt.Errorf("expression: UnresolvedColumn takes no children, got %d", len(newChildren))
	}
	return c, nil
}

func (c *UnresolvedColumn) String() string {
	if c.Qualifier == "" {
		return c.Name
	}
	return c.Qualifier + "." + c.Name
}
