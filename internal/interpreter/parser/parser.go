package parser

import (
	"fmt"
	"strings"

	"RelAlgDb/internal/ast"
	c "RelAlgDb/internal/common"
)

func NewParser(input string) *Parser {
	return &Parser{input: input}
}

// Parse builds the expression tree for input.
func Parse(input string) (ast.Expression, error) {
	return NewParser(input).ParseExpression()
}

func (p *Parser) ParseExpression() (ast.Expression, error) {
	return p.parseExpression(p.input)
}

// parseExpression tries, in order: the binary operators at depth zero in
// their fixed priority, the unary prefix forms, an outer pair of parentheses,
// and finally a relation name. A binary operator earlier in the priority list
// always wins the split, wherever it sits in the string.
func (p *Parser) parseExpression(s string) (ast.Expression, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return &ast.Empty{}, nil
	}

	for _, symbol := range c.BinaryPriority {
		left, right, ok := splitTop(s, symbol)
		if !ok {
			continue
		}
		return p.parseBinaryExpression(symbol, left, right)
	}

	if m := projectPattern.FindStringSubmatch(s); m != nil {
		source, err := p.parseExpression(m[2])
		if err != nil {
			return nil, err
		}
		return &ast.Project{Columns: splitColumns(m[1]), Source: source}, nil
	}

	if m := selectPattern.FindStringSubmatch(s); m != nil {
		source, err := p.parseExpression(m[2])
		if err != nil {
			return nil, err
		}
		return &ast.Select{Condition: m[1], Source: source}, nil
	}

	if m := renamePattern.FindStringSubmatch(s); m != nil {
		source, err := p.parseExpression(m[2])
		if err != nil {
			return nil, err
		}
		return &ast.Rename{Label: strings.TrimSpace(m[1]), Source: source}, nil
	}

	if m := groupPattern.FindStringSubmatch(s); m != nil {
		inner, err := p.parseExpression(m[1])
		if err != nil {
			return nil, err
		}
		return &ast.Group{Inner: inner}, nil
	}

	return p.parseRelationRef(s)
}

func (p *Parser) parseBinaryExpression(symbol, left, right string) (ast.Expression, error) {
	l, err := p.parseExpression(left)
	if err != nil {
		return nil, err
	}
	r, err := p.parseExpression(right)
	if err != nil {
		return nil, err
	}
	return &ast.BinaryExpression{Left: l, Right: r, Op: symbol}, nil
}

// parseRelationRef accepts any remaining text as a relation name; whether the
// name exists is up to the catalog. Text that still contains grammar symbols
// cannot be a name.
func (p *Parser) parseRelationRef(s string) (ast.Expression, error) {
	if strings.ContainsAny(s, c.LPAREN+c.RPAREN) {
		return nil, c.NewParseError(c.ErrUnknownExpression, s)
	}
	return &ast.RelationRef{Name: s}, nil
}

// MustParse is Parse for expressions known to be valid, such as test fixtures.
func MustParse(input string) ast.Expression {
	expr, err := Parse(input)
	if err != nil {
		panic(fmt.Sprintf("parser.MustParse(%q): %v", input, err))
	}
	return expr
}
