package eval

import (
	"RelAlgDb/internal/catalog"
	p "RelAlgDb/internal/interpreter/parser"
	log "RelAlgDb/internal/logger"
	"RelAlgDb/internal/relation"
)

type Evaluator struct {
	catalog catalog.Catalog
	logger  *log.Logger
}

func NewEvaluator(cat catalog.Catalog) *Evaluator {
	return &Evaluator{
		catalog: cat,
		logger:  log.Get("eval"),
	}
}

func (e *Evaluator) Catalog() catalog.Catalog {
	return e.catalog
}

// Execute parses query and evaluates it against the evaluator's catalog.
func (e *Evaluator) Execute(query string) (relation.Relation, error) {
	e.logger.Debug("Executing expression: %s", query)

	expr, err := p.Parse(query)
	if err != nil {
		e.logger.Error("Failed to parse expression: %s with error: %s", query, err)
		return relation.Relation{}, err
	}

	result, err := e.Evaluate(expr)
	if err != nil {
		e.logger.Error("Failed to evaluate expression: %s with error: %s", query, err)
		return relation.Relation{}, err
	}

	e.logger.Debug("Expression evaluated to %d row(s)", result.Len())
	return result, nil
}

// Evaluate parses and evaluates expr against cat.
func Evaluate(expr string, cat catalog.Catalog) (relation.Relation, error) {
	return NewEvaluator(cat).Execute(expr)
}

