package expression

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AdrS/sql-interpreter/sql"
)

// Convert is a CAST node. The set of legal (from, to) pairs and their
// conversion rules form a cast matrix carried over from
// original_source/relation.py's Cast.conversion_functions table, including
// its str_to_bool/str_to_int/str_to_float string-parsing rules.
type Convert struct {
	expr   sql.Expression
	target sql.Type
	fn     func(interface{}) (interface{}, error)
}

// convertFuncs[from][to] is nil for illegal combinations (BOOLEAN<->FLOAT).
var convertFuncs = map[sql.Type]map[sql.Type]func(interface{}) (interface{}, error){
	sql.Boolean: {
		sql.Boolean: func(v interface{}) (interface{}, error) { return v, nil },
		sql.Integer: func(v interface{}) (interface{}, error) {
			if v.(bool) {
				return int64(1), nil
			}
			return int64(0), nil
		},
		sql.String: func(v interface{}) (interface{}, error) {
			if v.(bool) {
				return "true", nil
			}
			return "false", nil
		},
	},
	sql.Integer: {
		sql.Boolean: func(v interface{}) (interface{}, error) { return v.(int64) != 0, nil },
		sql.Integer: func(v interface{}) (interface{}, error) { return v, nil },
		sql.Float:   func(v interface{}) (interface{}, error) { return float64(v.(int64)), nil },
		sql.String:  func(v interface{}) (interface{}, error) { return strconv.FormatInt(v.(int64), 10), nil },
	},
	sql.Float: {
		sql.Integer: func(v interface{}) (interface{}, error) { return int64(v.(float64)), nil }, // truncates toward zero
		sql.Float:   func(v interface{}) (interface{}, error) { return v, nil },
		sql.String:  func(v interface{}) (interface{}, error) { return strconv.FormatFloat(v.(float64), 'g', -1, 64), nil },
	},
	sql.String: {
		sql.Boolean: func(v interface{}) (interface{}, error) { return stringToBool(v.(string)) },
		sql.Integer: func(v interface{}) (interface{}, error) { return stringToInt(v.(string)) },
		sql.Float:   func(v interface{}) (interface{}, error) { return stringToFloat(v.(string)) },
		sql.String:  func(v interface{}) (interface{}, error) { return v, nil },
	},
}

func stringToBool(s string) (interface{}, error) {
	switch strings.ToLower(s) {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	default:
		return nil, fmt.Errorf("expression: string %q is not a valid BOOLEAN", s)
	}
}

func stringToInt(s string) (interface{}, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("expression: string %q is not a valid INTEGER", s)
	}
	return n, nil
}

func stringToFloat(s string) (interface{}, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("expression: string %q is not a valid FLOAT", s)
	}
	return f, nil
}

// NewConvert returns a Convert node casting expr to target, or an error if
// the (expr.Type(), target) pair is not in the cast matrix. Identity casts
// (T to T) are permitted.
func NewConvert(expr sql.Expression, target sql.Type) (*Convert, error) {
	row, ok := convertFuncs[expr.Type()]
	if !ok {
		return nil, sql.ErrIllegalCast.New(expr.Type(), target)
	}
	fn, ok := row[target]
	if !ok {
		return nil, sql.ErrIllegalCast.New(expr.Type(), target)
	}
	return &Convert{expr: expr, target: target, fn: fn}, nil
}

func (c *Convert) Type() sql.Type { return c.target }
func (c *Convert) Nullable() bool { return c.expr.Nullable() }

func (c *Convert) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	v, err := c.expr.Eval(ctx, row)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	return c.fn(v)
}

func (c *Convert) Children() []sql.Expression { return []sql.Expression{c.expr} }

func (c *Convert) WithChildren(newChildren ...sql.Expression) (sql.Expression, error) {
	if len(newChildren) != 1 {
		return nil, fmt.Errorf("expression: Convert takes 1 child, got %d", len(newChildren))
	}
	return NewConvert(newChildren[0], c.target)
}

func (c *Convert) String() string {
	return fmt.Sprintf("CAST(%s AS %s)", c.expr, c.target)
}
