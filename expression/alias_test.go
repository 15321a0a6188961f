package expression_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AdrS/sql-interpreter/expression"
	"github.com/AdrS/sql-interpreter/sql"
)

func TestAliasDelegatesToChild(t *testing.T) {
	require := require.New(t)
	a := expression.NewAlias("total", expression.NewLiteral(int64(7), sql.Integer))
	require.Equal("total", a.Name())
	require.Equal(sql.Integer, a.Type())
	require.False(a.Nullable())
	require.Equal(int64(7), eval(t, a, nil))
}
