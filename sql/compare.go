package sql

// This file implements the three-valued logic and null-aware ordering
// primitives shared by expression evaluation (expression.Comparison,
// expression.And, expression.Or) and by the sort-merge relation operators
// (plan.Sort, plan.Union/Intersect/Except).

// And3 implements SQL three-valued AND. Either operand may be nil (NULL,
// the "unknown" truth value); the result follows the standard truth table:
// false absorbs, true defers to the other operand, and unknown propagates
// unless the other operand is already false.
func And3(lhs, rhs interface{}) interface{} {
	if lhs == false || rhs == false {
		return false
	}
	if lhs == nil || rhs == nil {
		return nil
	}
	return lhs.(bool) && rhs.(bool)
}

// Or3 implements SQL three-valued OR, the dual of And3.
func Or3(lhs, rhs interface{}) interface{} {
	if lhs == true || rhs == true {
		return true
	}
	if lhs == nil || rhs == nil {
		return nil
	}
	return lhs.(bool) || rhs.(bool)
}

// Not3 implements SQL three-valued NOT: NULL propagates, otherwise the
// ordinary boolean complement.
func Not3(v interface{}) interface{} {
	if v == nil {
		return nil
	}
	return !v.(bool)
}

// IsTrueForPredicate reports whether a predicate's result should include
// the tuple: NULL and false both exclude it.
func IsTrueForPredicate(v interface{}) bool {
	b, ok := v.(bool)
	return ok && b
}

// CompareValues orders two non-NULL values of the same dynamic type,
// returning -1, 0 or 1. It panics if the values are not comparable (the
// expression and operator constructors that call it have already checked
// type compatibility, so this is an invariant, not a user-facing error).
func CompareValues(lhs, rhs interface{}) int {
	switch l := lhs.(type) {
	case bool:
		r := rhs.(bool)
		if l == r {
			return 0
		}
		if !l {
			return -1
		}
		return 1
	case int64:
		r := rhs.(int64)
		switch {
		case l < r:
			return -1
		case l > r:
			return 1
		default:
			return 0
		}
	case float64:
		r := rhs.(float64)
		switch {
		case l < r:
			return -1
		case l > r:
			return 1
		default:
			return 0
		}
	case string:
		r := rhs.(string)
		switch {
		case l < r:
			return -1
		case l > r:
			return 1
		default:
			return 0
		}
	default:
		panic("sql: CompareValues called with incomparable value")
	}
}

// CompareNullable orders two values, either of which may be NULL (nil).
// When exactly one side is NULL, nullsLast decides whether it sorts
// greater (true) or lesser (false) than any non-NULL value; two NULLs
// compare equal. This is the sort-key half of the Sort operator's
// contract.
func CompareNullable(lhs, rhs interface{}, nullsLast bool) int {
	if lhs == nil && rhs == nil {
		return 0
	}
	if lhs == nil {
		if nullsLast {
			return 1
		}
		return -1
	}
	if rhs == nil {
		if nullsLast {
			return -1
		}
		return 1
	}
	return CompareValues(lhs, rhs)
}

// CompareRows lexicographically compares two rows of equal length,
// position by position, using CompareNullable, stopping at the first
// position that differs. Used by Sort when no explicit sort key is given
// (plain lexicographic tuple order) and by the sort-merge set operators to
// order their inputs.
func CompareRows(lhs, rhs Row, nullsLast bool) int {
	for i := range lhs {
		if c := CompareNullable(lhs[i], rhs[i], nullsLast); c != 0 {
			return c
		}
	}
	return 0
}
