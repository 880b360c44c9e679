package eval

import (
	"fmt"

	"RelAlgDb/internal/ast"
	c "RelAlgDb/internal/common"
	"RelAlgDb/internal/condition"
	ops "RelAlgDb/internal/operations"
	"RelAlgDb/internal/relation"
)

// Evaluate walks the tree depth-first; every node materialises its result.
func (e *Evaluator) Evaluate(expr ast.Expression) (relation.Relation, error) {
	switch expr := expr.(type) {
	case *ast.Empty:
		return relation.New(), nil
	case *ast.RelationRef:
		rel, ok := e.catalog.Lookup(expr.Name)
		if !ok {
			return relation.Relation{}, c.NewParseError(c.ErrUnknownExpression, expr.Name)
		}
		return rel, nil
	case *ast.Group:
		return e.Evaluate(expr.Inner)
	case *ast.Project:
		source, err := e.Evaluate(expr.Source)
		if err != nil {
			return relation.Relation{}, err
		}
		return ops.Project(source, expr.Columns), nil
	case *ast.Select:
		source, err := e.Evaluate(expr.Source)
		if err != nil {
			return relation.Relation{}, err
		}
		cond, err := condition.Parse(expr.Condition)
		if err != nil {
			return relation.Relation{}, err
		}
		return ops.Select(source, cond), nil
	case *ast.Rename:
		source, err := e.Evaluate(expr.Source)
		if err != nil {
			return relation.Relation{}, err
		}
		return ops.Rename(source, expr.Label), nil
	case *ast.BinaryExpression:
		return e.evaluateBinary(expr)
	default:
		return relation.Relation{}, fmt.Errorf("unsupported expression type: %T", expr)
	}
}

func (e *Evaluator) evaluateBinary(expr *ast.BinaryExpression) (relation.Relation, error) {
	left, err := e.Evaluate(expr.Left)
	if err != nil {
		return relation.Relation{}, err
	}
	right, err := e.Evaluate(expr.Right)
	if err != nil {
		return relation.Relation{}, err
	}

	e.logger.Debug("Applying %s to %d and %d row(s)", expr.Operation(), left.Len(), right.Len())

	switch expr.Operation() {
	case c.Union:
		return ops.Union(left, right), nil
	case c.Difference:
		return ops.Difference(left, right), nil
	case c.Join:
		return ops.Join(left, right), nil
	case c.Product:
		return ops.Product(left, right), nil
	default:
		return relation.Relation{}, fmt.Errorf("unsupported binary operator: %s", expr.Op)
	}
}
