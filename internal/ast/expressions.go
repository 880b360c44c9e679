package ast

import (
	"fmt"
	"strings"

	c "RelAlgDb/internal/common"
)

// Expression is a node of a parsed relational-algebra expression.
type Expression interface {
	Operation() c.OperationType
	String() string
}

// Empty is the empty expression; it evaluates to a relation with no rows.
type Empty struct{}

func (e *Empty) Operation() c.OperationType { return c.Relation }
func (e *Empty) String() string             { return "" }

// RelationRef names a base relation in the catalog.
type RelationRef struct {
	Name string
}

func (r *RelationRef) Operation() c.OperationType { return c.Relation }
func (r *RelationRef) String() string             { return r.Name }

type Group struct {
	Inner Expression
}

func (g *Group) Operation() c.OperationType { return c.Group }
func (g *Group) String() string             { return c.LPAREN + g.Inner.String() + c.RPAREN }

type Project struct {
	Columns []string
	Source  Expression
}

func (p *Project) Operation() c.OperationType { return c.Project }
func (p *Project) String() string {
	return unary(c.PROJECT, strings.Join(p.Columns, c.COMMA), p.Source)
}

// Select keeps the raw condition text; it is parsed when the node is
// evaluated.
type Select struct {
	Condition string
	Source    Expression
}

func (s *Select) Operation() c.OperationType { return c.Select }
func (s *Select) String() string             { return unary(c.SELECT, s.Condition, s.Source) }

type Rename struct {
	Label  string
	Source Expression
}

func (r *Rename) Operation() c.OperationType { return c.Rename }
func (r *Rename) String() string             { return unary(c.RENAME, r.Label, r.Source) }

// BinaryExpression is a union, difference, join or product.
type BinaryExpression struct {
	Left  Expression
	Right Expression
	Op    string
}

func (b *BinaryExpression) Operation() c.OperationType { return c.BinaryOperation(b.Op) }
func (b *BinaryExpression) String() string {
	return fmt.Sprintf("%s %s %s", b.Left, b.Op, b.Right)
}

func unary(symbol, arg string, source Expression) string {
	return symbol + "_" + c.LBRACE + arg + c.RBRACE + c.LPAREN + source.String() + c.RPAREN
}
