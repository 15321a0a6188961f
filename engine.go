// Package sqle is the statement dispatcher: it parses a statement, routes
// CREATE TABLE and INSERT INTO directly against the catalog, and compiles
// everything else through the analyzer into a relation-operator tree the
// caller drives by iterating.
package sqle

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/AdrS/sql-interpreter/analyzer"
	"github.com/AdrS/sql-interpreter/memory"
	"github.com/AdrS/sql-interpreter/parser"
	"github.com/AdrS/sql-interpreter/sql"
)

// EngineConfig holds the Engine's tunables, the nested-struct-with-
// DefaultConfig shape forma.Config uses rather than a flags/env parsing
// library, since this is an embedded engine and not a standalone service.
type EngineConfig struct {
	// MaxInsertBatch caps the number of rows a single INSERT INTO may
	// add in one statement. Zero means unbounded.
	MaxInsertBatch int
	// Logger receives one structured line per dispatched statement. A
	// caller that doesn't want logging leaves this nil; NewEngine
	// substitutes zap.NewNop().
	Logger *zap.Logger
}

// DefaultConfig returns the Engine's default configuration: no batch cap,
// no logging.
func DefaultConfig() EngineConfig {
	return EngineConfig{
		MaxInsertBatch: 0,
		Logger:         zap.NewNop(),
	}
}

// Engine binds a catalog to a configuration and dispatches statements
// against it.
type Engine struct {
	db     *memory.Database
	config EngineConfig
}

// NewEngine returns an Engine operating on db. A nil logger in config is
// replaced with zap.NewNop(), so callers that don't care about logging
// don't need to construct one.
func NewEngine(db *memory.Database, config EngineConfig) *Engine {
	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}
	return &Engine{db: db, config: config}
}

// Exec runs a CREATE TABLE or INSERT INTO statement. It returns an error
// for a query statement; use Query for those.
func (e *Engine) Exec(stmt string) error {
	start := time.Now()
	parsed, err := parser.ParseStatement(stmt)
	if err != nil {
		e.config.Logger.Warn("parse failed", zap.String("statement", stmt), zap.Error(err))
		return err
	}

	switch v := parsed.(type) {
	case *parser.CreateTable:
		err := e.execCreateTable(v)
		e.config.Logger.Info("create table",
			zap.String("table", v.Table),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err))
		return err
	case *parser.InsertInto:
		err := e.execInsertInto(v)
		e.config.Logger.Info("insert into",
			zap.String("table", v.Table),
			zap.Int("rows", len(v.Rows)),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err))
		return err
	default:
		return fmt.Errorf("sqle: %q is a query, not a CREATE TABLE or INSERT INTO statement; use Query", stmt)
	}
}

// Query compiles a SELECT/UNION/INTERSECT/EXCEPT statement into a
// sql.Node. The returned node is not executed; the caller drives it with
// RowIter. Exec's CREATE TABLE/INSERT INTO side effects made before Query
// is called are visible, since every operator tree holds a borrowed
// *memory.Table pointer into the live catalog.
func (e *Engine) Query(stmt string) (sql.Node, error) {
	start := time.Now()
	parsed, err := parser.ParseStatement(stmt)
	if err != nil {
		e.config.Logger.Warn("parse failed", zap.String("statement", stmt), zap.Error(err))
		return nil, err
	}

	q, ok := parsed.(parser.Query)
	if !ok {
		err := fmt.Errorf("sqle: %q is a CREATE TABLE or INSERT INTO statement, not a query; use Exec", stmt)
		e.config.Logger.Warn("query dispatch failed", zap.String("statement", stmt), zap.Error(err))
		return nil, err
	}

	node, err := analyzer.Compile(q, e.db)
	e.config.Logger.Info("query compiled",
		zap.Duration("duration", time.Since(start)),
		zap.Error(err))
	return node, err
}

func (e *Engine) execCreateTable(stmt *parser.CreateTable) error {
	schema, err := columnDefsToSchema(stmt.Columns)
	if err != nil {
		return err
	}
	_, err = e.db.CreateTable(stmt.Table, schema)
	return err
}

func (e *Engine) execInsertInto(stmt *parser.InsertInto) error {
	if e.config.MaxInsertBatch > 0 && len(stmt.Rows) > e.config.MaxInsertBatch {
		return sql.ErrInsertBatchTooLarge.New(len(stmt.Rows), e.config.MaxInsertBatch)
	}
	rows := make([]sql.Row, len(stmt.Rows))
	for i, exprs := range stmt.Rows {
		row, err := literalsToRow(exprs)
		if err != nil {
			return err
		}
		rows[i] = row
	}
	return e.db.InsertRows(stmt.Table, rows)
}
