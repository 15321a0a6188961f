package expression_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AdrS/sql-interpreter/expression"
	"github.com/AdrS/sql-interpreter/sql"
)

func TestLiteralEval(t *testing.T) {
	require := require.New(t)
	lit := expression.NewLiteral(int64(42), sql.Integer)
	require.Equal(sql.Integer, lit.Type())
	require.False(lit.Nullable())
	require.Equal(int64(42), eval(t, lit, nil))
}

func TestLiteralNull(t *testing.T) {
	require := require.New(t)
	lit := expression.NewLiteral(nil, sql.String)
	require.True(lit.Nullable())
	require.Nil(eval(t, lit, nil))
	require.Equal("NULL", lit.String())
}

func TestLiteralStringQuoting(t *testing.T) {
	require := require.New(t)
	lit := expression.NewLiteral("hi", sql.String)
	require.Equal(`"hi"`, lit.String())
}
