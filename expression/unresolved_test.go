package expression_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AdrS/sql-interpreter/expression"
	"github.com/AdrS/sql-interpreter/sql"
)

func TestUnresolvedColumnString(t *testing.T) {
	require := require.New(t)
	require.Equal("a", expression.NewUnresolvedColumn("a").String())
	require.Equal("t.a", expression.NewUnresolvedQualifiedColumn("t", "a").String())
}

func TestUnresolvedColumnEvalFails(t *testing.T) {
	require := require.New(t)
	_, err := expression.NewUnresolvedColumn("a").Eval(sql.NewEmptyContext(), nil)
	require.Error(err)
}
