package expression_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AdrS/sql-interpreter/expression"
	"github.com/AdrS/sql-interpreter/sql"
)

func TestArithmeticIntegerDivisionTruncates(t *testing.T) {
	require := require.New(t)
	a, err := expression.NewDiv(
		expression.NewLiteral(int64(7), sql.Integer),
		expression.NewLiteral(int64(2), sql.Integer),
	)
	require.NoError(err)
	require.Equal(sql.Integer, a.Type())
	require.Equal(int64(3), eval(t, a, nil))
}

func TestArithmeticFloatPromotion(t *testing.T) {
	require := require.New(t)
	a, err := expression.NewPlus(
		expression.NewLiteral(int64(1), sql.Integer),
		expression.NewLiteral(1.5, sql.Float),
	)
	require.NoError(err)
	require.Equal(sql.Float, a.Type())
	require.Equal(2.5, eval(t, a, nil))
}

func TestArithmeticDivisionByZero(t *testing.T) {
	require := require.New(t)
	a, err := expression.NewDiv(
		expression.NewLiteral(int64(1), sql.Integer),
		expression.NewLiteral(int64(0), sql.Integer),
	)
	require.NoError(err)
	_, err = a.Eval(sql.NewEmptyContext(), nil)
	require.Error(err)
	require.True(sql.ErrDivisionByZero.Is(err))
}

func TestArithmeticNullPropagates(t *testing.T) {
	require := require.New(t)
	a, err := expression.NewPlus(
		expression.NewLiteral(nil, sql.Integer),
		expression.NewLiteral(int64(1), sql.Integer),
	)
	require.NoError(err)
	require.Nil(eval(t, a, nil))
}

func TestArithmeticNonNumericOperand(t *testing.T) {
	require := require.New(t)
	_, err := expression.NewPlus(
		expression.NewLiteral("x", sql.String),
		expression.NewLiteral(int64(1), sql.Integer),
	)
	require.Error(err)
	require.True(sql.ErrNonNumericOperand.Is(err))
}
