// Package analyzer is the semantic compiler: it binds a parser.Query to
// the catalog, resolving every identifier to a schema position and turning
// the parser's untyped AST into a typed sql.Expression/sql.Node tree built
// from the expression and plan packages. No parser.Expr or parser.Query
// value survives analysis; everything downstream operates on sql.Node.
package analyzer

import "github.com/AdrS/sql-interpreter/sql"

// envEntry is one column visible at some point during compilation: its
// qualifier (table name or alias, empty for an unaliased subquery) and the
// underlying column, whose Index is its absolute position in the row the
// environment currently describes.
type envEntry struct {
	qualifier string
	column    *sql.Column
}

// environment is the column namespace compileExpr resolves identifiers
// against - the binder's name-resolution scope, rebuilt from scratch after
// every relation operator that changes the row shape (CrossJoin, GroupBy).
type environment []envEntry

// resolve looks up name, optionally qualified. An empty qualifier matches
// any entry with that column name; a non-empty qualifier also requires the
// entry's qualifier to match.
func (env environment) resolve(qualifier, name string) (envEntry, error) {
	var matches []envEntry
	for _, e := range env {
		if e.column.Name != name {
			continue
		}
		if qualifier != "" && e.qualifier != qualifier {
			continue
		}
		matches = append(matches, e)
	}
	switch len(matches) {
	case 0:
		if qualifier != "" {
			return envEntry{}, sql.ErrColumnNotFound.New(qualifier + "." + name)
		}
		return envEntry{}, sql.ErrColumnNotFound.New(name)
	case 1:
		return matches[0], nil
	default:
		return envEntry{}, sql.ErrAmbiguousColumn.New(name)
	}
}

// columnsFor returns every entry matching qualifier (all entries if
// qualifier is empty), for wildcard expansion. ok is false when qualifier
// is non-empty and no entry carries it, distinguishing "t.* where t isn't
// in scope" from "t.* where t has no columns" (which cannot happen).
func (env environment) columnsFor(qualifier string) (matches []envEntry, ok bool) {
	for _, e := range env {
		if qualifier != "" && e.qualifier != qualifier {
			continue
		}
		matches = append(matches, e)
		ok = true
	}
	if qualifier == "" {
		ok = true
	}
	return matches, ok
}
