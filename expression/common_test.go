package expression_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AdrS/sql-interpreter/sql"
)

// eval evaluates expr against row and fails the test on error.
func eval(t *testing.T, expr sql.Expression, row sql.Row) interface{} {
	t.Helper()
	v, err := expr.Eval(sql.NewEmptyContext(), row)
	require.NoError(t, err)
	return v
}
