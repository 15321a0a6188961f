package sqle

import (
	"github.com/AdrS/sql-interpreter/parser"
	"github.com/AdrS/sql-interpreter/sql"
)

// columnDefsToSchema translates the parser's CREATE TABLE column list into
// a sql.Schema. Nullability already defaults to true in the parser unless
// NOT NULL was given, so no further default is applied here.
func columnDefsToSchema(defs []parser.ColumnDef) (sql.Schema, error) {
	cols := make([]*sql.Column, len(defs))
	for i, d := range defs {
		t, err := sql.TypeFromName(d.Type)
		if err != nil {
			return nil, err
		}
		cols[i] = &sql.Column{Name: d.Name, Type: t, Nullable: d.Nullable}
	}
	return sql.NewSchema(cols...), nil
}

// literalsToRow translates one INSERT INTO VALUES row - parser.Expr nodes
// that are always literals per the grammar - into a sql.Row of Go dynamic
// values.
func literalsToRow(exprs []parser.Expr) (sql.Row, error) {
	row := make(sql.Row, len(exprs))
	for i, e := range exprs {
		v, err := literalValue(e)
		if err != nil {
			return nil, err
		}
		row[i] = v
	}
	return row, nil
}

func literalValue(e parser.Expr) (interface{}, error) {
	switch v := e.(type) {
	case *parser.IntLiteral:
		return v.Value, nil
	case *parser.FloatLiteral:
		return v.Value, nil
	case *parser.StringLiteral:
		return v.Value, nil
	case *parser.BoolLiteral:
		return v.Value, nil
	case *parser.NullLiteral:
		return nil, nil
	default:
		return nil, sql.ErrInvalidType.New(e.String())
	}
}
