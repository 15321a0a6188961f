package sql

import errors "gopkg.in/src-d/go-errors.v1"

// Each error kind is a distinct *errors.Kind so callers can distinguish
// them with Is.
var (
	// SyntaxError

	ErrSyntax = errors.NewKind("syntax error at line %d, column %d: %s")

	// NameError

	ErrTableNotFound      = errors.NewKind("table not found: %s")
	ErrTableAlreadyExists = errors.NewKind("table already exists: %s")
	ErrColumnNotFound     = errors.NewKind("column not found: %s")
	ErrAmbiguousColumn    = errors.NewKind("ambiguous column reference: %s")
	ErrDuplicateAlias     = errors.NewKind("duplicate table name or alias: %s")

	// TypeError

	ErrInvalidType               = errors.NewKind("invalid type: %s")
	ErrIllegalCast                = errors.NewKind("cannot cast %s to %s")
	ErrNullConstraintViolation    = errors.NewKind("column %s does not allow NULL values")
	ErrInsertColumnCountMismatch  = errors.NewKind("table %s has %d columns, but %d values were supplied")
	ErrInsertColumnTypeMismatch   = errors.NewKind("value for column %s has type %s, got %v")
	ErrNonBooleanPredicate        = errors.NewKind("predicate must evaluate to BOOLEAN, got %s")
	ErrOperandTypeMismatch        = errors.NewKind("operands of %s must have the same type, got %s and %s")
	ErrNonNumericOperand          = errors.NewKind("operands of %s must be numeric, got %s")
	ErrNonBooleanOperand          = errors.NewKind("operands of %s must be BOOLEAN, got %s")
	ErrAggregateNotAllowedHere    = errors.NewKind("aggregate functions are not allowed here: %s")
	ErrColumnNotInGroupBy         = errors.NewKind("column %s must appear in the GROUP BY clause or be used in an aggregate function")

	// ValueError

	ErrSchemaMismatch          = errors.NewKind("relations are not compatible for a set operation: %s")
	ErrUnnamedColumnInGroupKey = errors.NewKind("GROUP BY column %s does not resolve to a named column")
	ErrInsertBatchTooLarge     = errors.NewKind("insert of %d rows exceeds the configured maximum of %d")
	ErrUnknownColumnType       = errors.NewKind("unknown column type: %s")

	// ArithmeticError

	ErrDivisionByZero = errors.NewKind("division by zero")
)
