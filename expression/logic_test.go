package expression_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AdrS/sql-interpreter/expression"
	"github.com/AdrS/sql-interpreter/sql"
)

func boolLit(v interface{}) *expression.Literal {
	return expression.NewLiteral(v, sql.Boolean)
}

func TestAndTruthTable(t *testing.T) {
	require := require.New(t)
	cases := []struct {
		l, r, want interface{}
	}{
		{true, true, true},
		{true, false, false},
		{false, true, false},
		{false, false, false},
		{true, nil, nil},
		{nil, true, nil},
		{false, nil, false},
		{nil, false, false},
		{nil, nil, nil},
	}
	for _, c := range cases {
		a, err := expression.NewAnd(boolLit(c.l), boolLit(c.r))
		require.NoError(err)
		require.Equal(c.want, eval(t, a, nil))
	}
}

func TestOrTruthTable(t *testing.T) {
	require := require.New(t)
	cases := []struct {
		l, r, want interface{}
	}{
		{true, true, true},
		{true, false, true},
		{false, false, false},
		{false, nil, nil},
		{nil, false, nil},
		{true, nil, true},
		{nil, true, true},
		{nil, nil, nil},
	}
	for _, c := range cases {
		o, err := expression.NewOr(boolLit(c.l), boolLit(c.r))
		require.NoError(err)
		require.Equal(c.want, eval(t, o, nil))
	}
}

func TestAndNonBooleanOperand(t *testing.T) {
	require := require.New(t)
	_, err := expression.NewAnd(
		expression.NewLiteral(int64(1), sql.Integer),
		boolLit(true),
	)
	require.Error(err)
	require.True(sql.ErrNonBooleanOperand.Is(err))
}
