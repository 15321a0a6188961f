package memory

import "github.com/AdrS/sql-interpreter/sql"

// Database is the catalog: a name-normalized mapping from table name to
// the Table storing its tuples.
type Database struct {
	tables map[string]*Table
}

// NewDatabase returns an empty catalog.
func NewDatabase() *Database {
	return &Database{tables: make(map[string]*Table)}
}

// CreateTable registers a new, empty table. It fails if a table with the
// same normalized name already exists.
func (d *Database) CreateTable(name string, schema sql.Schema) (*Table, error) {
	key := sql.NormalizeIdentifier(name)
	if _, ok := d.tables[key]; ok {
		return nil, sql.ErrTableAlreadyExists.New(name)
	}
	t := NewTable(key, schema)
	d.tables[key] = t
	return t, nil
}

// Table looks up a table by name, folding case the way the lexer folds
// every identifier. It returns ErrTableNotFound, a distinct error kind
// from a failed CreateTable.
func (d *Database) Table(name string) (*Table, error) {
	key := sql.NormalizeIdentifier(name)
	t, ok := d.tables[key]
	if !ok {
		return nil, sql.ErrTableNotFound.New(name)
	}
	return t, nil
}

// HasTable reports whether name exists in the catalog without producing an
// error, for callers that want to check-then-act without allocating an
// error on the "doesn't exist" path. The binder uses Table instead.
func (d *Database) HasTable(name string) bool {
	_, ok := d.tables[sql.NormalizeIdentifier(name)]
	return ok
}

// InsertRows validates and appends every row in values to the named table,
// atomically: if any row fails validation, the table is restored to the
// size it had before the call and the first error encountered is returned.
func (d *Database) InsertRows(name string, values []sql.Row) error {
	t, err := d.Table(name)
	if err != nil {
		return err
	}
	checkpoint := t.Len()
	for _, row := range values {
		if err := t.Insert(row); err != nil {
			t.Truncate(checkpoint)
			return err
		}
	}
	return nil
}
