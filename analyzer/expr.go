package analyzer

import (
	"fmt"

	"github.com/AdrS/sql-interpreter/expression"
	"github.com/AdrS/sql-interpreter/expression/aggregation"
	"github.com/AdrS/sql-interpreter/parser"
	"github.com/AdrS/sql-interpreter/sql"
)

// compileExpr binds a scalar parser.Expr against env, producing a typed
// sql.Expression. allowAggregates gates whether a bare aggregate function
// call (COUNT, SUM, AVG, MIN, MAX) may appear in this subtree: true for a
// SELECT item, false everywhere else (WHERE, an aggregate's own argument,
// GROUP BY), matching ordinary SQL's HAVING-less restriction that
// aggregates may only be computed once per group, directly in the select
// list.
func compileExpr(e parser.Expr, env environment, allowAggregates bool) (sql.Expression, error) {
	switch v := e.(type) {
	case *parser.Identifier:
		ent, err := env.resolve("", v.Name)
		if err != nil {
			return nil, err
		}
		return fieldOf(ent), nil
	case *parser.QualifiedIdentifier:
		ent, err := env.resolve(v.Qualifier, v.Name)
		if err != nil {
			return nil, err
		}
		return fieldOf(ent), nil
	case *parser.IntLiteral:
		return expression.NewLiteral(v.Value, sql.Integer), nil
	case *parser.FloatLiteral:
		return expression.NewLiteral(v.Value, sql.Float), nil
	case *parser.StringLiteral:
		return expression.NewLiteral(v.Value, sql.String), nil
	case *parser.BoolLiteral:
		return expression.NewLiteral(v.Value, sql.Boolean), nil
	case *parser.NullLiteral:
		// An untyped NULL with nothing to contextualize it (not an operand
		// of a binary operator, which infers its type from the other side)
		// defaults to INTEGER; see DESIGN.md.
		return expression.NewLiteral(nil, sql.Integer), nil
	case *parser.UnaryExpr:
		return compileUnary(v, env, allowAggregates)
	case *parser.BinaryExpr:
		return compileBinary(v, env, allowAggregates)
	case *parser.IsNullExpr:
		inner, err := compileExpr(v.Expr, env, allowAggregates)
		if err != nil {
			return nil, err
		}
		if v.Not {
			return expression.NewIsNotNull(inner), nil
		}
		return expression.NewIsNull(inner), nil
	case *parser.CastExpr:
		inner, err := compileExpr(v.Expr, env, allowAggregates)
		if err != nil {
			return nil, err
		}
		target, err := sql.TypeFromName(v.Type)
		if err != nil {
			return nil, err
		}
		return expression.NewConvert(inner, target)
	case *parser.FuncCall:
		if !allowAggregates {
			return nil, sql.ErrAggregateNotAllowedHere.New(v.String())
		}
		return compileAggregateCall(v, env)
	default:
		return nil, fmt.Errorf("analyzer: unsupported expression %T", e)
	}
}

func fieldOf(ent envEntry) *expression.GetField {
	c := ent.column
	return expression.NewGetField(c.Index, c.Type, c.Name, c.Nullable)
}

// compileOperandPair compiles a binary operator's two operands, resolving
// an untyped NULL literal on either side to the other side's type so `a =
// NULL` and similar comparisons type-check instead of tripping the strict
// same-type rule Comparison/Arithmetic/logic enforce.
func compileOperandPair(le, re parser.Expr, env environment, allowAggregates bool) (sql.Expression, sql.Expression, error) {
	_, lNull := le.(*parser.NullLiteral)
	_, rNull := re.(*parser.NullLiteral)
	switch {
	case lNull && rNull:
		return expression.NewLiteral(nil, sql.Integer), expression.NewLiteral(nil, sql.Integer), nil
	case lNull:
		right, err := compileExpr(re, env, allowAggregates)
		if err != nil {
			return nil, nil, err
		}
		return expression.NewLiteral(nil, right.Type()), right, nil
	case rNull:
		left, err := compileExpr(le, env, allowAggregates)
		if err != nil {
			return nil, nil, err
		}
		return left, expression.NewLiteral(nil, left.Type()), nil
	default:
		left, err := compileExpr(le, env, allowAggregates)
		if err != nil {
			return nil, nil, err
		}
		right, err := compileExpr(re, env, allowAggregates)
		if err != nil {
			return nil, nil, err
		}
		return left, right, nil
	}
}

func compileUnary(u *parser.UnaryExpr, env environment, allowAggregates bool) (sql.Expression, error) {
	if _, ok := u.Right.(*parser.NullLiteral); ok {
		if u.Op == "NOT" {
			return expression.NewNot(expression.NewLiteral(nil, sql.Boolean))
		}
		return expression.NewUnaryMinus(expression.NewLiteral(nil, sql.Integer))
	}
	inner, err := compileExpr(u.Right, env, allowAggregates)
	if err != nil {
		return nil, err
	}
	switch u.Op {
	case "NOT":
		return expression.NewNot(inner)
	case "-":
		return expression.NewUnaryMinus(inner)
	default:
		panic("analyzer: unreachable unary operator " + u.Op)
	}
}

func compileBinary(b *parser.BinaryExpr, env environment, allowAggregates bool) (sql.Expression, error) {
	left, right, err := compileOperandPair(b.Left, b.Right, env, allowAggregates)
	if err != nil {
		return nil, err
	}
	switch b.Op {
	case "OR":
		return expression.NewOr(left, right)
	case "AND":
		return expression.NewAnd(left, right)
	case "=":
		return expression.NewEquals(left, right)
	case "<>":
		return expression.NewNotEquals(left, right)
	case "<":
		return expression.NewLessThan(left, right)
	case "<=":
		return expression.NewLessThanOrEqual(left, right)
	case ">":
		return expression.NewGreaterThan(left, right)
	case ">=":
		return expression.NewGreaterThanOrEqual(left, right)
	case "+":
		return expression.NewPlus(left, right)
	case "-":
		return expression.NewMinus(left, right)
	case "*":
		return expression.NewMult(left, right)
	case "/":
		return expression.NewDiv(left, right)
	default:
		panic("analyzer: unreachable binary operator " + b.Op)
	}
}

// compileAggregateCall binds one COUNT/SUM/AVG/MIN/MAX call, compiling its
// argument against env with allowAggregates=false (aggregates don't nest)
// and wrapping the result in an expression.AggregateCall, which the
// GroupBy-insertion pass in groupby.go later substitutes out.
func compileAggregateCall(f *parser.FuncCall, env environment) (sql.Expression, error) {
	if f.Name == "COUNT" && f.Star {
		return expression.NewAggregateCall(aggregation.NewCount(nil)), nil
	}
	arg, err := compileExpr(f.Arg, env, false)
	if err != nil {
		return nil, err
	}
	switch f.Name {
	case "COUNT":
		return expression.NewAggregateCall(aggregation.NewCount(arg)), nil
	case "SUM":
		if !arg.Type().IsNumeric() {
			return nil, sql.ErrNonNumericOperand.New("SUM", arg.Type())
		}
		return expression.NewAggregateCall(aggregation.NewSum(arg)), nil
	case "AVG":
		if !arg.Type().IsNumeric() {
			return nil, sql.ErrNonNumericOperand.New("AVG", arg.Type())
		}
		return expression.NewAggregateCall(aggregation.NewAvg(arg)), nil
	case "MIN":
		return expression.NewAggregateCall(aggregation.NewMin(arg)), nil
	case "MAX":
		return expression.NewAggregateCall(aggregation.NewMax(arg)), nil
	default:
		return nil, fmt.Errorf("analyzer: unknown aggregate function %s", f.Name)
	}
}
