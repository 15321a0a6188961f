package expression_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AdrS/sql-interpreter/expression"
	"github.com/AdrS/sql-interpreter/sql"
)

func TestStarString(t *testing.T) {
	require := require.New(t)
	require.Equal("*", expression.NewStar().String())
	require.Equal("t.*", expression.NewQualifiedStar("t").String())
}

func TestStarEvalFails(t *testing.T) {
	require := require.New(t)
	_, err := expression.NewStar().Eval(sql.NewEmptyContext(), nil)
	require.Error(err)
}
