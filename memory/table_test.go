package memory

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AdrS/sql-interpreter/sql"
)

func schemaAB() sql.Schema {
	return sql.NewSchema(
		col("a", sql.Integer, true),
		col("b", sql.String, true),
	)
}

func col(name string, t sql.Type, nullable bool) *sql.Column {
	return &sql.Column{Name: name, Type: t, Nullable: nullable}
}

func TestTableInsertAndIterate(t *testing.T) {
	require := require.New(t)
	ctx := sql.NewEmptyContext()

	tbl := NewTable("t", schemaAB())
	require.NoError(tbl.Insert(sql.NewRow(int64(1), "x")))
	require.NoError(tbl.Insert(sql.NewRow(int64(2), nil)))

	iter, err := tbl.RowIter(ctx, nil)
	require.NoError(err)

	row, err := iter.Next(ctx)
	require.NoError(err)
	require.Equal(sql.NewRow(int64(1), "x"), row)

	row, err = iter.Next(ctx)
	require.NoError(err)
	require.Equal(sql.NewRow(int64(2), nil), row)

	_, err = iter.Next(ctx)
	require.Equal(io.EOF, err)
}

func TestTableInsertValidation(t *testing.T) {
	require := require.New(t)

	tbl := NewTable("t", schemaAB())

	err := tbl.Insert(sql.NewRow(int64(1)))
	require.True(sql.ErrInsertColumnCountMismatch.Is(err))

	err = tbl.Insert(sql.NewRow("wrong type", "x"))
	require.True(sql.ErrInsertColumnTypeMismatch.Is(err))

	notNullSchema := sql.NewSchema(col("a", sql.Integer, false))
	tbl2 := NewTable("t2", notNullSchema)
	err = tbl2.Insert(sql.NewRow(nil))
	require.True(sql.ErrNullConstraintViolation.Is(err))
}

func TestTableRestartable(t *testing.T) {
	require := require.New(t)
	ctx := sql.NewEmptyContext()

	tbl := NewTable("t", schemaAB())
	require.NoError(tbl.Insert(sql.NewRow(int64(1), "x")))

	for pass := 0; pass < 2; pass++ {
		iter, err := tbl.RowIter(ctx, nil)
		require.NoError(err)
		row, err := iter.Next(ctx)
		require.NoError(err)
		require.Equal(sql.NewRow(int64(1), "x"), row)
	}
}
