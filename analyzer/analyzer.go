package analyzer

import (
	"fmt"

	"github.com/AdrS/sql-interpreter/expression"
	"github.com/AdrS/sql-interpreter/memory"
	"github.com/AdrS/sql-interpreter/parser"
	"github.com/AdrS/sql-interpreter/plan"
	"github.com/AdrS/sql-interpreter/sql"
)

// Compile binds q against db's catalog and returns the relation-operator
// tree that computes it. The returned sql.Node is not executed - the
// caller drives it by calling RowIter and iterating. CREATE TABLE and
// INSERT INTO are not compiled here: they're resolved directly against the
// catalog by the engine, since neither produces a relation operator tree.
func Compile(q parser.Query, db *memory.Database) (sql.Node, error) {
	return compileQuery(q, db)
}

func compileQuery(q parser.Query, db *memory.Database) (sql.Node, error) {
	switch v := q.(type) {
	case *parser.Select:
		return compileSelect(v, db)
	case *parser.SetOp:
		return compileSetOp(v, db)
	case *parser.Paren:
		return compileQuery(v.Query, db)
	default:
		return nil, fmt.Errorf("analyzer: unsupported query %T", q)
	}
}

func compileSetOp(s *parser.SetOp, db *memory.Database) (sql.Node, error) {
	left, err := compileQuery(s.Left, db)
	if err != nil {
		return nil, err
	}
	right, err := compileQuery(s.Right, db)
	if err != nil {
		return nil, err
	}
	switch s.Op {
	case parser.UNION:
		return plan.NewUnion(left, right, s.Distinct)
	case parser.INTERSECT:
		return plan.NewIntersect(left, right, s.Distinct)
	case parser.EXCEPT:
		return plan.NewExcept(left, right, s.Distinct)
	default:
		return nil, fmt.Errorf("analyzer: unsupported set operator %s", s.Op)
	}
}

// compileSelect implements the select-compilation pipeline: build the
// FROM-clause environment and cross-join tree, apply WHERE, detect and
// plan aggregation, expand wildcards, and wrap everything in a Project.
func compileSelect(sel *parser.Select, db *memory.Database) (sql.Node, error) {
	node, env, err := buildFrom(sel.From, db)
	if err != nil {
		return nil, err
	}

	if sel.Where != nil {
		predicate, err := compileExpr(sel.Where, env, false)
		if err != nil {
			return nil, err
		}
		node, err = plan.NewFilter(predicate, node)
		if err != nil {
			return nil, err
		}
	}

	compiledItems := make([]sql.Expression, len(sel.Items))
	for i, item := range sel.Items {
		if item.Star {
			continue
		}
		e, err := compileExpr(item.Expr, env, true)
		if err != nil {
			return nil, err
		}
		compiledItems[i] = e
	}

	var groupEntries []envEntry
	for _, g := range sel.GroupBy {
		ent, err := compileGroupByItem(g, env)
		if err != nil {
			return nil, err
		}
		groupEntries = append(groupEntries, ent)
	}

	hasAggregate := false
	for _, e := range compiledItems {
		if containsAggregate(e) {
			hasAggregate = true
			break
		}
	}

	if hasAggregate || len(groupEntries) > 0 {
		node, env, compiledItems, err = planGroupBy(node, env, groupEntries, compiledItems)
		if err != nil {
			return nil, err
		}
	}

	var finalExprs []sql.Expression
	for i, item := range sel.Items {
		if item.Star {
			expanded, err := expandWildcard(item.Qualifier, env)
			if err != nil {
				return nil, err
			}
			finalExprs = append(finalExprs, expanded...)
			continue
		}
		e := compiledItems[i]
		if item.Alias != "" {
			e = expression.NewAlias(item.Alias, e)
		}
		finalExprs = append(finalExprs, e)
	}

	return plan.NewProject(finalExprs, node), nil
}

// planGroupBy inserts a GroupBy node over node, grouping by groupEntries
// and aggregating every AggregateCall found in items, then rewrites items
// and the environment to describe GroupBy's output row instead of node's.
func planGroupBy(node sql.Node, env environment, groupEntries []envEntry, items []sql.Expression) (sql.Node, environment, []sql.Expression, error) {
	groupingColumns := make([]sql.Expression, len(groupEntries))
	groupIndex := make(map[int]int, len(groupEntries))
	for i, ent := range groupEntries {
		groupingColumns[i] = fieldOf(ent)
		groupIndex[ent.column.Index] = i
	}

	aggs, assign := collectAggregates(items)
	groupBy := plan.NewGroupBy(aggs, groupingColumns, node)

	postEnv := make(environment, 0, len(groupEntries)+len(aggs))
	for i, ent := range groupEntries {
		postEnv = append(postEnv, envEntry{
			qualifier: ent.qualifier,
			column:    &sql.Column{Name: ent.column.Name, Type: ent.column.Type, Nullable: ent.column.Nullable, Index: i},
		})
	}
	for i, agg := range aggs {
		postEnv = append(postEnv, envEntry{
			column: &sql.Column{Type: agg.Type(), Nullable: agg.Nullable(), Index: len(groupEntries) + i},
		})
	}

	newItems := make([]sql.Expression, len(items))
	for i, e := range items {
		if e == nil {
			continue
		}
		substituted, err := substitutePostGroup(e, assign, groupIndex, len(groupEntries))
		if err != nil {
			return nil, nil, nil, err
		}
		newItems[i] = substituted
	}

	return groupBy, postEnv, newItems, nil
}

// buildFrom compiles every FROM item left-to-right into one cross-joined
// relation operator, and builds the column environment describing its
// output row. Non-empty qualifiers (table names or aliases) must be
// unique; an unaliased subquery contributes columns with no qualifier,
// reachable only by bare name.
func buildFrom(items []parser.FromItem, db *memory.Database) (sql.Node, environment, error) {
	var node sql.Node
	var env environment
	seen := make(map[string]bool)
	offset := 0

	for _, item := range items {
		qualifier, src, err := compileFromItem(item, db)
		if err != nil {
			return nil, nil, err
		}
		if qualifier != "" {
			if seen[qualifier] {
				return nil, nil, sql.ErrDuplicateAlias.New(qualifier)
			}
			seen[qualifier] = true
		}
		schema := src.Schema()
		for _, c := range schema {
			env = append(env, envEntry{qualifier: qualifier, column: c.WithIndex(offset + c.Index)})
		}
		offset += len(schema)

		if node == nil {
			node = src
		} else {
			node = plan.NewCrossJoin(node, src)
		}
	}

	return node, env, nil
}

func compileFromItem(item parser.FromItem, db *memory.Database) (string, sql.Node, error) {
	if item.Subquery != nil {
		node, err := compileQuery(item.Subquery, db)
		if err != nil {
			return "", nil, err
		}
		return item.Alias, node, nil
	}
	t, err := db.Table(item.Table)
	if err != nil {
		return "", nil, err
	}
	qualifier := item.Alias
	if qualifier == "" {
		qualifier = item.Table
	}
	return qualifier, plan.NewResolvedTable(t), nil
}

// expandWildcard resolves `*` (qualifier == "") or `qualifier.*` into one
// GetField per matching column, in environment order.
func expandWildcard(qualifier string, env environment) ([]sql.Expression, error) {
	star := expression.NewStar()
	if qualifier != "" {
		star = expression.NewQualifiedStar(qualifier)
	}
	matches, ok := env.columnsFor(star.Qualifier)
	if !ok {
		return nil, sql.ErrTableNotFound.New(star.Qualifier)
	}
	out := make([]sql.Expression, len(matches))
	for i, ent := range matches {
		out[i] = fieldOf(ent)
	}
	return out, nil
}
