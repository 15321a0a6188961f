// Package sql defines the value, type and schema model shared by every
// other package in the engine: expressions, relation operators, the
// catalog and the semantic compiler all build on the types declared here.
package sql

import "fmt"

// Type identifies one of the four ground types a Column or Expression can
// carry. There is no implicit numeric promotion at this level: promotion
// is a property of specific expression constructors (see expression.NewPlus
// and friends), not of Type itself.
type Type int

const (
	// Unknown is the zero value. It is the type reported by the
	// placeholder expressions Star and UnresolvedColumn and the Type
	// TypeFromName returns alongside an error; NULL literals are always
	// built with a ground type.
	Unknown Type = iota
	Boolean
	Integer
	Float
	String
)

func (t Type) String() string {
	switch t {
	case Boolean:
		return "BOOLEAN"
	case Integer:
		return "INTEGER"
	case Float:
		return "FLOAT"
	case String:
		return "STRING"
	default:
		return "UNKNOWN"
	}
}

// IsNumeric reports whether t participates in arithmetic and ordering as a
// number.
func (t Type) IsNumeric() bool {
	return t == Integer || t == Float
}

// TypeFromName maps one of the grammar's type keywords (BOOLEAN, INTEGER,
// FLOAT, STRING) to its Type, for CREATE TABLE column definitions and CAST
// target types.
func TypeFromName(name string) (Type, error) {
	switch name {
	case "BOOLEAN":
		return Boolean, nil
	case "INTEGER":
		return Integer, nil
	case "FLOAT":
		return Float, nil
	case "STRING":
		return String, nil
	default:
		return Unknown, ErrUnknownColumnType.New(name)
	}
}

// Column describes one position of a Schema: its name, ground type,
// nullability and position. Index is assigned when the column is bound
// into a Schema (NewSchema below); a Column built standalone for use in an
// Expression carries whatever Index its source schema gave it.
type Column struct {
	Name     string
	Type     Type
	Nullable bool
	Index    int
}

// WithIndex returns a copy of c with Index replaced; used when a column is
// renumbered into a new schema position (e.g. CrossJoin, set operations).
func (c *Column) WithIndex(index int) *Column {
	cp := *c
	cp.Index = index
	return &cp
}

// WithName returns a copy of c with Name replaced. Nothing in the engine
// calls it; expression.Alias reports its name itself.
func (c *Column) WithName(name string) *Column {
	cp := *c
	cp.Name = name
	return &cp
}

func (c *Column) String() string {
	null := "NULL"
	if !c.Nullable {
		null = "NOT NULL"
	}
	return fmt.Sprintf("%s %s %s", c.Name, c.Type, null)
}

// CheckValue reports an error if value is not a legal value for c: NULL in
// a non-nullable column, or a Go value of the wrong dynamic type for c.Type.
func (c *Column) CheckValue(value interface{}) error {
	if value == nil {
		if c.Nullable {
			return nil
		}
		return ErrNullConstraintViolation.New(c.Name)
	}
	if !typeMatches(c.Type, value) {
		return ErrInsertColumnTypeMismatch.New(c.Name, c.Type, value)
	}
	return nil
}

func typeMatches(t Type, value interface{}) bool {
	switch value.(type) {
	case bool:
		return t == Boolean
	case int64:
		return t == Integer
	case float64:
		return t == Float
	case string:
		return t == String
	default:
		return false
	}
}

// Schema is an ordered sequence of columns; the position of each column in
// the slice must equal its Index.
type Schema []*Column

// NewSchema returns a schema built from cols, assigning consecutive
// indices starting at 0 and leaving name/type/nullability untouched. This
// is the Go analogue of relation.py's Relation.__init__, which re-indexes
// every column it is given.
func NewSchema(cols ...*Column) Schema {
	out := make(Schema, len(cols))
	for i, c := range cols {
		out[i] = c.WithIndex(i)
	}
	return out
}

// Column returns the column named name, or nil if no column has that name.
func (s Schema) Column(name string) *Column {
	for _, c := range s {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// CompatibleForSetOp reports whether s and other can be combined by a
// set operation: equal length and pairwise equal types.
func (s Schema) CompatibleForSetOp(other Schema) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i].Type != other[i].Type {
			return false
		}
	}
	return true
}

// MergeForSetOp returns the schema of a set operation combining s (left)
// with other (right): s's column order and names are kept, and
// nullability is the logical OR of the two inputs.
func (s Schema) MergeForSetOp(other Schema) Schema {
	merged := make(Schema, len(s))
	for i, c := range s {
		merged[i] = c.WithIndex(i)
		if other[i].Nullable {
			cp := *merged[i]
			cp.Nullable = true
			merged[i] = &cp
		}
	}
	return merged
}
