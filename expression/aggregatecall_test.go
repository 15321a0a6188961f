package expression_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AdrS/sql-interpreter/expression"
	"github.com/AdrS/sql-interpreter/expression/aggregation"
	"github.com/AdrS/sql-interpreter/sql"
)

func TestAggregateCallReportsUnderlyingType(t *testing.T) {
	require := require.New(t)
	call := expression.NewAggregateCall(aggregation.NewCount(nil))
	require.Equal(sql.Integer, call.Type())
	require.False(call.Nullable())
	require.Equal("COUNT(*)", call.String())
}

func TestAggregateCallEvalFails(t *testing.T) {
	require := require.New(t)
	call := expression.NewAggregateCall(aggregation.NewCount(nil))
	_, err := call.Eval(sql.NewEmptyContext(), nil)
	require.Error(err)
}
