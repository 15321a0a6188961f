package expression

import (
	"fmt"

	"github.com/AdrS/sql-interpreter/sql"
)

// Star is the `*` wildcard placeholder the binder builds for a `*` or `t.*`
// SELECT item. The binder always expands it into one GetField per column
// of the current environment before building the final projection; it is
// never evaluated.
type Star struct {
	// Qualifier is empty for a bare `*`, or the table/alias name for
	// `t.*`.
	Qualifier string
}

func NewStar() *Star                       { return &Star{} }
func NewQualifiedStar(qualifier string) *Star { return &Star{Qualifier: qualifier} }

func (s *Star) Type() sql.Type { return sql.Unknown }
func (s *Star) Nullable() bool { return false }

func (s *Star) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	return nil, fmt.Errorf("expression: * was not expanded before evaluation")
}

func (s *Star) Children() []sql.Expression { return nil }

func (s *Star) WithChildren(newChildren ...sql.Expression) (sql.Expression, error) {
	if len(newChildren) != 0 {
		return nil, fmt.Errorf("expression: Star takes no children, got %d", len(newChildren))
	}
	return s, nil
}

func (s *Star) String() string {
	if s.Qualifier == "" {
		return "*"
	}
	return s.Qualifier + ".*"
}
