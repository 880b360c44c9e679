package interpreter

import (
	"RelAlgDb/internal/catalog"
	e "RelAlgDb/internal/interpreter/eval"
	"RelAlgDb/internal/relation"
)

func Execute(expr string, cat catalog.Catalog) (relation.Relation, error) {
	return SetupEvaluator(cat).Execute(expr)
}

func SetupEvaluator(cat catalog.Catalog) *e.Evaluator {
	return e.NewEvaluator(cat)
}
