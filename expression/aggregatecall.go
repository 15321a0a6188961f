package expression

import (
	"fmt"

	"github.com/AdrS/sql-interpreter/expression/aggregation"
	"github.com/AdrS/sql-interpreter/sql"
)

// AggregateCall is the handle an aggregate function call (COUNT, MIN, MAX,
// SUM, AVG) leaves in an expression tree before the compiler extracts it
// into a GroupBy. It reports the Type/Nullable of the underlying
// aggregation.Aggregation so type-checking elsewhere in the tree (a
// comparison against an aggregate result, say) can proceed before GROUP BY
// planning runs, but it is never evaluated directly: the compiler always
// rewrites it into a GetField referencing the GroupBy's output column.
type AggregateCall struct {
	Agg aggregation.Aggregation
}

func NewAggregateCall(agg aggregation.Aggregation) *AggregateCall {
	return &AggregateCall{Agg: agg}
}

func (a *AggregateCall) Type() sql.Type { return a.Agg.Type() }
func (a *AggregateCall) Nullable() bool { return a.Agg.Nullable() }

func (a *AggregateCall) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	return nil, fmt.Errorf("expression: aggregate call %s was not substituted before evaluation", a)
}

func (a *AggregateCall) Children() []sql.Expression { return nil }

func (a *AggregateCall) WithChildren(newChildren ...sql.Expression) (sql.Expression, error) {
	if len(newChildren) != 0 {
		return nil, fmt.Errorf("expression: AggregateCall takes no children, got %d", len(newChildren))
	}
	return a, nil
}

func (a *AggregateCall) String() string { return a.Agg.String() }
