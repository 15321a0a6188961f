package plan

import (
	"fmt"
	"strings"

	"github.com/AdrS/sql-interpreter/expression"
	"github.com/AdrS/sql-interpreter/sql"
)

// Project is the generalized projection operator: one output column per
// expression, named after the expression when it is a bare attribute
// reference or an explicit alias, unnamed (empty string) otherwise.
type Project struct {
	sql.UnaryNode
	Expressions []sql.Expression
}

// NewProject returns a Project wrapping child with the given output
// expressions.
func NewProject(expressions []sql.Expression, child sql.Node) *Project {
	return &Project{UnaryNode: sql.UnaryNode{Child: child}, Expressions: expressions}
}

func (p *Project) Schema() sql.Schema {
	cols := make([]*sql.Column, len(p.Expressions))
	for i, e := range p.Expressions {
		cols[i] = &sql.Column{
			Name:     projectedName(e),
			Type:     e.Type(),
			Nullable: e.Nullable(),
		}
	}
	return sql.NewSchema(cols...)
}

func projectedName(e sql.Expression) string {
	switch n := e.(type) {
	case *expression.Alias:
		return n.Name()
	case *expression.GetField:
		return n.Name()
	default:
		return ""
	}
}

func (p *Project) RowIter(ctx *sql.Context, row sql.Row) (sql.RowIter, error) {
	childIter, err := p.Child.RowIter(ctx, row)
	if err != nil {
		return nil, err
	}
	return &projectIter{expressions: p.Expressions, child: childIter}, nil
}

type projectIter struct {
	expressions []sql.Expression
	child       sql.RowIter
}

func (i *projectIter) Next(ctx *sql.Context) (sql.Row, error) {
	row, err := i.child.Next(ctx)
	if err != nil {
		return nil, err
	}
	out := make(sql.Row, len(i.expressions))
	for idx, e := range i.expressions {
		v, err := e.Eval(ctx, row)
		if err != nil {
			return nil, err
		}
		out[idx] = v
	}
	return out, nil
}

func (i *projectIter) Close(ctx *sql.Context) error { return i.child.Close(ctx) }

func (p *Project) String() string {
	parts := make([]string, len(p.Expressions))
	for i, e := range p.Expressions {
		parts[i] = e.String()
	}
	return fmt.Sprintf("Project(%s)", strings.Join(parts, ", "))
}
