package expression_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AdrS/sql-interpreter/expression"
	"github.com/AdrS/sql-interpreter/sql"
)

func TestUnaryMinusInteger(t *testing.T) {
	require := require.New(t)
	u, err := expression.NewUnaryMinus(expression.NewLiteral(int64(5), sql.Integer))
	require.NoError(err)
	require.Equal(int64(-5), eval(t, u, nil))
}

func TestUnaryMinusFloat(t *testing.T) {
	require := require.New(t)
	u, err := expression.NewUnaryMinus(expression.NewLiteral(2.5, sql.Float))
	require.NoError(err)
	require.Equal(-2.5, eval(t, u, nil))
}

func TestUnaryMinusNonNumeric(t *testing.T) {
	require := require.New(t)
	_, err := expression.NewUnaryMinus(expression.NewLiteral("x", sql.String))
	require.Error(err)
}

func TestUnaryMinusNull(t *testing.T) {
	require := require.New(t)
	u, err := expression.NewUnaryMinus(expression.NewLiteral(nil, sql.Integer))
	require.NoError(err)
	require.Nil(eval(t, u, nil))
}
