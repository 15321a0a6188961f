package sqle_test

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	sqle "github.com/AdrS/sql-interpreter"
	"github.com/AdrS/sql-interpreter/memory"
	"github.com/AdrS/sql-interpreter/sql"
)

func newEngine(t *testing.T) *sqle.Engine {
	t.Helper()
	return sqle.NewEngine(memory.NewDatabase(), sqle.DefaultConfig())
}

func collectRows(t *testing.T, node sql.Node) []sql.Row {
	t.Helper()
	ctx := sql.NewEmptyContext()
	iter, err := node.RowIter(ctx, nil)
	require.NoError(t, err)
	defer iter.Close(ctx)

	var rows []sql.Row
	for {
		row, err := iter.Next(ctx)
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		rows = append(rows, row)
	}
	return rows
}

func TestEngineCreateInsertSelect(t *testing.T) {
	e := newEngine(t)
	require.NoError(t, e.Exec("CREATE TABLE t(a INTEGER, b STRING);"))
	require.NoError(t, e.Exec("INSERT INTO t VALUES (1,'a'),(2,'b');"))

	node, err := e.Query("SELECT a,b FROM t;")
	require.NoError(t, err)
	require.Equal(t, []sql.Row{sql.NewRow(int64(1), "a"), sql.NewRow(int64(2), "b")}, collectRows(t, node))
}

func TestEngineThreeValuedLogicSelection(t *testing.T) {
	e := newEngine(t)
	require.NoError(t, e.Exec("CREATE TABLE t(a INTEGER NULL);"))
	require.NoError(t, e.Exec("INSERT INTO t VALUES (1),(NULL),(3);"))

	node, err := e.Query("SELECT a FROM t WHERE a < 3;")
	require.NoError(t, err)
	require.Equal(t, []sql.Row{sql.NewRow(int64(1))}, collectRows(t, node))
}

func TestEngineCastIntegerToBoolean(t *testing.T) {
	e := newEngine(t)
	require.NoError(t, e.Exec("CREATE TABLE t(a INTEGER);"))
	require.NoError(t, e.Exec("INSERT INTO t VALUES (0),(10);"))

	node, err := e.Query("SELECT CAST(a AS BOOLEAN) FROM t;")
	require.NoError(t, err)
	require.Equal(t, []sql.Row{sql.NewRow(false), sql.NewRow(true)}, collectRows(t, node))
}

func TestEngineGroupedAggregation(t *testing.T) {
	e := newEngine(t)
	require.NoError(t, e.Exec("CREATE TABLE t(a INTEGER, b INTEGER);"))
	require.NoError(t, e.Exec("INSERT INTO t VALUES (1,11),(1,12),(3,31),(3,32);"))

	node, err := e.Query("SELECT a,MAX(b),MIN(b),COUNT(b),AVG(b),SUM(b) FROM t GROUP BY a;")
	require.NoError(t, err)
	require.Equal(t, []sql.Row{
		sql.NewRow(int64(1), int64(12), int64(11), int64(2), 11.5, int64(23)),
		sql.NewRow(int64(3), int64(32), int64(31), int64(2), 31.5, int64(63)),
	}, collectRows(t, node))
}

func TestEngineSetOperationPrecedence(t *testing.T) {
	e := newEngine(t)
	require.NoError(t, e.Exec("CREATE TABLE t(s STRING, v INTEGER);"))
	require.NoError(t, e.Exec("INSERT INTO t VALUES ('a',1),('b',1),('c',2);"))

	node, err := e.Query("SELECT v FROM t WHERE s='a' INTERSECT SELECT v FROM t WHERE s='b' UNION SELECT v FROM t WHERE s='c';")
	require.NoError(t, err)
	require.Equal(t, []sql.Row{sql.NewRow(int64(1)), sql.NewRow(int64(2))}, collectRows(t, node))
}

func TestEngineCrossJoinWithQualifiedReference(t *testing.T) {
	e := newEngine(t)
	require.NoError(t, e.Exec("CREATE TABLE r(a INTEGER);"))
	require.NoError(t, e.Exec("CREATE TABLE s(a INTEGER);"))
	require.NoError(t, e.Exec("INSERT INTO r VALUES (0),(10);"))
	require.NoError(t, e.Exec("INSERT INTO s VALUES (1),(2);"))

	node, err := e.Query("SELECT r.a, s.a FROM r, s;")
	require.NoError(t, err)
	require.Equal(t, []sql.Row{
		sql.NewRow(int64(0), int64(1)),
		sql.NewRow(int64(0), int64(2)),
		sql.NewRow(int64(10), int64(1)),
		sql.NewRow(int64(10), int64(2)),
	}, collectRows(t, node))
}

func TestEngineInsertAtomicityOnFailure(t *testing.T) {
	e := newEngine(t)
	require.NoError(t, e.Exec("CREATE TABLE t(a INTEGER NOT NULL);"))
	require.NoError(t, e.Exec("INSERT INTO t VALUES (1);"))

	err := e.Exec("INSERT INTO t VALUES (2),(NULL);")
	require.Error(t, err)

	node, err := e.Query("SELECT a FROM t;")
	require.NoError(t, err)
	require.Equal(t, []sql.Row{sql.NewRow(int64(1))}, collectRows(t, node))
}

func TestEngineMaxInsertBatchRejectsOversizedInsert(t *testing.T) {
	config := sqle.DefaultConfig()
	config.MaxInsertBatch = 1
	e := sqle.NewEngine(memory.NewDatabase(), config)
	require.NoError(t, e.Exec("CREATE TABLE t(a INTEGER);"))

	err := e.Exec("INSERT INTO t VALUES (1),(2);")
	require.Error(t, err)
}

func TestEngineQueryRejectsNonQueryStatement(t *testing.T) {
	e := newEngine(t)
	_, err := e.Query("CREATE TABLE t(a INTEGER);")
	require.Error(t, err)
}

func TestEngineExecRejectsQueryStatement(t *testing.T) {
	e := newEngine(t)
	require.NoError(t, e.Exec("CREATE TABLE t(a INTEGER);"))
	err := e.Exec("SELECT a FROM t;")
	require.Error(t, err)
}
