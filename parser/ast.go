package parser

import "fmt"

// Node is any AST node; String renders it back to (roughly) the source
// text it was parsed from, useful in error messages and tests.
type Node interface {
	String() string
}

// Statement is a top-level statement: CREATE TABLE, INSERT INTO, or a
// query.
type Statement interface {
	Node
	statementNode()
}

// CreateTable is `CREATE TABLE id (col, ...)`.
type CreateTable struct {
	Table   string
	Columns []ColumnDef
}

func (c *CreateTable) statementNode() {}
func (c *CreateTable) String() string { return fmt.Sprintf("CREATE TABLE %s(...)", c.Table) }

// ColumnDef is one column in a CREATE TABLE column list.
type ColumnDef struct {
	Name     string
	Type     string
	Nullable bool
}

// InsertInto is `INSERT INTO id VALUES row, ...`.
type InsertInto struct {
	Table string
	Rows  [][]Expr
}

func (i *InsertInto) statementNode() {}
func (i *InsertInto) String() string { return fmt.Sprintf("INSERT INTO %s VALUES (...)", i.Table) }

// Query is a statement that yields a result set: a SELECT, or two
// queries combined by a set operator.
type Query interface {
	Statement
	queryNode()
}

// Select is `SELECT sel, ... FROM from, ... [WHERE expr] [GROUP BY colref, ...]`.
type Select struct {
	Items   []SelectItem
	From    []FromItem
	Where   Expr
	GroupBy []Expr
}

func (s *Select) statementNode() {}
func (s *Select) queryNode()     {}
func (s *Select) String() string { return "SELECT ..." }

// SelectItem is one entry of a SELECT list: either `*`/`qualifier.*`, or
// an expression with an optional `AS alias`.
type SelectItem struct {
	Star      bool
	Qualifier string
	Expr      Expr
	Alias     string
}

// FromItem is one entry of a FROM clause: a named base table, or a
// parenthesized subquery, with an optional alias.
type FromItem struct {
	Table     string
	Subquery  Query
	Alias     string
}

// SetOp is `query setop distinctness query`.
type SetOp struct {
	Op       Type // UNION, INTERSECT or EXCEPT
	Distinct bool
	Left     Query
	Right    Query
}

func (s *SetOp) statementNode() {}
func (s *SetOp) queryNode()     {}
func (s *SetOp) String() string { return fmt.Sprintf("(%s %s %s)", s.Left, s.Op, s.Right) }

// Paren wraps a parenthesized query so precedence survives into the
// analyzer without needing it to re-derive associativity.
type Paren struct {
	Query Query
}

func (p *Paren) statementNode() {}
func (p *Paren) queryNode()     {}
func (p *Paren) String() string { return fmt.Sprintf("(%s)", p.Query) }

// Expr is a scalar expression node.
type Expr interface {
	Node
	exprNode()
}

// Identifier is a bare column reference.
type Identifier struct {
	Name string
}

func (i *Identifier) exprNode()     {}
func (i *Identifier) String() string { return i.Name }

// QualifiedIdentifier is a `qualifier.name` column reference.
type QualifiedIdentifier struct {
	Qualifier string
	Name      string
}

func (q *QualifiedIdentifier) exprNode()     {}
func (q *QualifiedIdentifier) String() string { return q.Qualifier + "." + q.Name }

// IntLiteral is an INTEGER literal.
type IntLiteral struct{ Value int64 }

func (l *IntLiteral) exprNode()      {}
func (l *IntLiteral) String() string { return fmt.Sprintf("%d", l.Value) }

// FloatLiteral is a FLOAT literal.
type FloatLiteral struct{ Value float64 }

func (l *FloatLiteral) exprNode()      {}
func (l *FloatLiteral) String() string { return fmt.Sprintf("%g", l.Value) }

// StringLiteral is a STRING literal, already unescaped.
type StringLiteral struct{ Value string }

func (l *StringLiteral) exprNode()      {}
func (l *StringLiteral) String() string { return "'" + l.Value + "'" }

// BoolLiteral is TRUE or FALSE.
type BoolLiteral struct{ Value bool }

func (l *BoolLiteral) exprNode()      {}
func (l *BoolLiteral) String() string { return fmt.Sprintf("%v", l.Value) }

// NullLiteral is the untyped NULL constant.
type NullLiteral struct{}

func (l *NullLiteral) exprNode()      {}
func (l *NullLiteral) String() string { return "NULL" }

// UnaryExpr is a prefix operator: NOT or unary MINUS.
type UnaryExpr struct {
	Op    string
	Right Expr
}

func (u *UnaryExpr) exprNode()      {}
func (u *UnaryExpr) String() string { return fmt.Sprintf("(%s %s)", u.Op, u.Right) }

// BinaryExpr is an infix operator: OR, AND, a comparison, or an
// additive/multiplicative arithmetic operator.
type BinaryExpr struct {
	Op    string
	Left  Expr
	Right Expr
}

func (b *BinaryExpr) exprNode()      {}
func (b *BinaryExpr) String() string { return fmt.Sprintf("(%s %s %s)", b.Left, b.Op, b.Right) }

// IsNullExpr is a postfix `expr IS [NOT] NULL` test.
type IsNullExpr struct {
	Expr Expr
	Not  bool
}

func (e *IsNullExpr) exprNode() {}
func (e *IsNullExpr) String() string {
	if e.Not {
		return fmt.Sprintf("(%s IS NOT NULL)", e.Expr)
	}
	return fmt.Sprintf("(%s IS NULL)", e.Expr)
}

// CastExpr is `CAST(expr AS type)`.
type CastExpr struct {
	Expr Expr
	Type string
}

func (c *CastExpr) exprNode() {}
func (c *CastExpr) String() string {
	return fmt.Sprintf("CAST(%s AS %s)", c.Expr, c.Type)
}

// FuncCall is an aggregate function call: COUNT(*), or
// COUNT/SUM/AVG/MIN/MAX applied to one argument expression.
type FuncCall struct {
	Name string
	Star bool
	Arg  Expr
}

func (f *FuncCall) exprNode() {}
func (f *FuncCall) String() string {
	if f.Star {
		return f.Name + "(*)"
	}
	return fmt.Sprintf("%s(%s)", f.Name, f.Arg)
}
