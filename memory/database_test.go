package memory

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AdrS/sql-interpreter/sql"
)

func TestDatabaseCreateAndLookup(t *testing.T) {
	require := require.New(t)

	db := NewDatabase()
	_, err := db.CreateTable("Users", schemaAB())
	require.NoError(err)

	tbl, err := db.Table("users")
	require.NoError(err)
	require.Equal("users", tbl.Name())

	_, err = db.CreateTable("users", schemaAB())
	require.True(sql.ErrTableAlreadyExists.Is(err))

	_, err = db.Table("missing")
	require.True(sql.ErrTableNotFound.Is(err))
}

func TestDatabaseInsertRowsAtomic(t *testing.T) {
	require := require.New(t)

	db := NewDatabase()
	_, err := db.CreateTable("t", schemaAB())
	require.NoError(err)

	err = db.InsertRows("t", []sql.Row{
		sql.NewRow(int64(1), "a"),
		sql.NewRow(int64(2), "b"),
	})
	require.NoError(err)

	tbl, _ := db.Table("t")
	require.Equal(2, tbl.Len())

	err = db.InsertRows("t", []sql.Row{
		sql.NewRow(int64(3), "c"),
		sql.NewRow(int64(4)), // wrong arity - this statement must roll back entirely
		sql.NewRow(int64(5), "e"),
	})
	require.Error(err)
	require.Equal(2, tbl.Len(), "failed multi-row INSERT must leave the table at its prior size")
}
