package expression_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AdrS/sql-interpreter/expression"
	"github.com/AdrS/sql-interpreter/sql"
)

func TestNotTruthTable(t *testing.T) {
	require := require.New(t)
	cases := []struct {
		in, want interface{}
	}{
		{true, false},
		{false, true},
		{nil, nil},
	}
	for _, c := range cases {
		n, err := expression.NewNot(boolLit(c.in))
		require.NoError(err)
		require.Equal(c.want, eval(t, n, nil))
	}
}

func TestNotNonBoolean(t *testing.T) {
	require := require.New(t)
	_, err := expression.NewNot(expression.NewLiteral(int64(1), sql.Integer))
	require.Error(err)
}
