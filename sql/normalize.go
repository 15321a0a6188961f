package sql

import "strings"

// NormalizeIdentifier folds an identifier to lower case, the fold applied
// by the lexer to every keyword and identifier and again by the catalog on
// table lookups so `CREATE TABLE Foo` and `SELECT * FROM FOO` agree.
// Quoted identifiers are not modeled, so this is unconditional.
func NormalizeIdentifier(name string) string {
	return strings.ToLower(name)
}
