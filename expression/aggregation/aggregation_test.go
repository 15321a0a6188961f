package aggregation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AdrS/sql-interpreter/expression"
	"github.com/AdrS/sql-interpreter/sql"
)

func intCol() *expression.GetField {
	return expression.NewGetField(0, sql.Integer, "n", true)
}

func floatCol() *expression.GetField {
	return expression.NewGetField(0, sql.Float, "n", true)
}

func runUpdates(t *testing.T, agg Aggregation, rows []sql.Row) interface{} {
	require := require.New(t)
	ctx := sql.NewEmptyContext()
	buf := agg.NewBuffer()
	for _, row := range rows {
		require.NoError(agg.Update(ctx, buf, row))
	}
	v, err := agg.Eval(ctx, buf)
	require.NoError(err)
	return v
}

func TestCountStar(t *testing.T) {
	require := require.New(t)
	agg := NewCount(nil)
	v := runUpdates(t, agg, []sql.Row{{int64(1)}, {nil}, {int64(3)}})
	require.Equal(int64(3), v)
}

func TestCountExpr(t *testing.T) {
	require := require.New(t)
	agg := NewCount(intCol())
	v := runUpdates(t, agg, []sql.Row{{int64(1)}, {nil}, {int64(3)}})
	require.Equal(int64(2), v)
}

func TestCountEmptyGroup(t *testing.T) {
	require := require.New(t)
	agg := NewCount(nil)
	v := runUpdates(t, agg, nil)
	require.Equal(int64(0), v)
}

func TestMinMax(t *testing.T) {
	require := require.New(t)
	rows := []sql.Row{{int64(5)}, {nil}, {int64(1)}, {int64(3)}}
	require.Equal(int64(1), runUpdates(t, NewMin(intCol()), rows))
	require.Equal(int64(5), runUpdates(t, NewMax(intCol()), rows))
}

func TestMinAllNullIsNull(t *testing.T) {
	require := require.New(t)
	v := runUpdates(t, NewMin(intCol()), []sql.Row{{nil}, {nil}})
	require.Nil(v)
}

func TestSumInteger(t *testing.T) {
	require := require.New(t)
	v := runUpdates(t, NewSum(intCol()), []sql.Row{{int64(1)}, {nil}, {int64(2)}})
	require.Equal(int64(3), v)
}

func TestSumFloat(t *testing.T) {
	require := require.New(t)
	v := runUpdates(t, NewSum(floatCol()), []sql.Row{{1.5}, {2.5}})
	require.Equal(4.0, v)
}

func TestSumAllNullIsZero(t *testing.T) {
	require := require.New(t)
	v := runUpdates(t, NewSum(intCol()), []sql.Row{{nil}})
	require.Equal(int64(0), v)
}

func TestSumEmptyGroupIsZero(t *testing.T) {
	require := require.New(t)
	v := runUpdates(t, NewSum(intCol()), nil)
	require.Equal(int64(0), v)
	require.False(NewSum(intCol()).Nullable())
}

func TestAvg(t *testing.T) {
	require := require.New(t)
	v := runUpdates(t, NewAvg(intCol()), []sql.Row{{int64(2)}, {int64(4)}, {nil}})
	require.Equal(3.0, v)
}

func TestAvgEmptyGroupIsNull(t *testing.T) {
	require := require.New(t)
	v := runUpdates(t, NewAvg(intCol()), nil)
	require.Nil(v)
}

func TestMergeCombinesPartialBuffers(t *testing.T) {
	require := require.New(t)
	ctx := sql.NewEmptyContext()
	agg := NewSum(intCol())

	a := agg.NewBuffer()
	require.NoError(agg.Update(ctx, a, sql.Row{int64(1)}))
	require.NoError(agg.Update(ctx, a, sql.Row{int64(2)}))

	b := agg.NewBuffer()
	require.NoError(agg.Update(ctx, b, sql.Row{int64(10)}))

	require.NoError(agg.Merge(ctx, a, b))
	v, err := agg.Eval(ctx, a)
	require.NoError(err)
	require.Equal(int64(13), v)
}
