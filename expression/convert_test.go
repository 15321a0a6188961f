package expression_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AdrS/sql-interpreter/expression"
	"github.com/AdrS/sql-interpreter/sql"
)

func TestConvertIntegerToFloat(t *testing.T) {
	require := require.New(t)
	c, err := expression.NewConvert(expression.NewLiteral(int64(3), sql.Integer), sql.Float)
	require.NoError(err)
	require.Equal(3.0, eval(t, c, nil))
}

func TestConvertFloatToIntegerTruncates(t *testing.T) {
	require := require.New(t)
	c, err := expression.NewConvert(expression.NewLiteral(3.9, sql.Float), sql.Integer)
	require.NoError(err)
	require.Equal(int64(3), eval(t, c, nil))
}

func TestConvertBooleanToFloatIsIllegal(t *testing.T) {
	require := require.New(t)
	_, err := expression.NewConvert(expression.NewLiteral(true, sql.Boolean), sql.Float)
	require.Error(err)
	require.True(sql.ErrIllegalCast.Is(err))
}

func TestConvertFloatToBooleanIsIllegal(t *testing.T) {
	require := require.New(t)
	_, err := expression.NewConvert(expression.NewLiteral(1.0, sql.Float), sql.Boolean)
	require.Error(err)
}

func TestConvertStringToBoolean(t *testing.T) {
	require := require.New(t)
	for _, tc := range []struct {
		in   string
		want bool
	}{
		{"true", true}, {"TRUE", true}, {"1", true},
		{"false", false}, {"FALSE", false}, {"0", false},
	} {
		c, err := expression.NewConvert(expression.NewLiteral(tc.in, sql.String), sql.Boolean)
		require.NoError(err)
		require.Equal(tc.want, eval(t, c, nil))
	}
}

func TestConvertStringToBooleanInvalid(t *testing.T) {
	require := require.New(t)
	c, err := expression.NewConvert(expression.NewLiteral("nope", sql.String), sql.Boolean)
	require.NoError(err)
	_, err = c.Eval(sql.NewEmptyContext(), nil)
	require.Error(err)
}

func TestConvertStringToInt(t *testing.T) {
	require := require.New(t)
	c, err := expression.NewConvert(expression.NewLiteral("42", sql.String), sql.Integer)
	require.NoError(err)
	require.Equal(int64(42), eval(t, c, nil))
}

func TestConvertNullPassesThrough(t *testing.T) {
	require := require.New(t)
	c, err := expression.NewConvert(expression.NewLiteral(nil, sql.Integer), sql.String)
	require.NoError(err)
	require.Nil(eval(t, c, nil))
}

func TestConvertIdentity(t *testing.T) {
	require := require.New(t)
	c, err := expression.NewConvert(expression.NewLiteral(int64(1), sql.Integer), sql.Integer)
	require.NoError(err)
	require.Equal(int64(1), eval(t, c, nil))
}
