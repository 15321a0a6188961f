package expression_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AdrS/sql-interpreter/expression"
	"github.com/AdrS/sql-interpreter/sql"
)

func TestComparisonOperators(t *testing.T) {
	require := require.New(t)
	one := expression.NewLiteral(int64(1), sql.Integer)
	two := expression.NewLiteral(int64(2), sql.Integer)

	lt, err := expression.NewLessThan(one, two)
	require.NoError(err)
	require.Equal(true, eval(t, lt, nil))

	eq, err := expression.NewEquals(one, one)
	require.NoError(err)
	require.Equal(true, eval(t, eq, nil))

	ne, err := expression.NewNotEquals(one, two)
	require.NoError(err)
	require.Equal(true, eval(t, ne, nil))
}

func TestComparisonTypeMismatch(t *testing.T) {
	require := require.New(t)
	_, err := expression.NewEquals(
		expression.NewLiteral(int64(1), sql.Integer),
		expression.NewLiteral("1", sql.String),
	)
	require.Error(err)
	require.True(sql.ErrOperandTypeMismatch.Is(err))
}

func TestComparisonNullPropagates(t *testing.T) {
	require := require.New(t)
	eq, err := expression.NewEquals(
		expression.NewLiteral(nil, sql.Integer),
		expression.NewLiteral(int64(1), sql.Integer),
	)
	require.NoError(err)
	require.Nil(eval(t, eq, nil))
}
