package condition

import (
	"regexp"
	"strconv"
	"strings"

	c "RelAlgDb/internal/common"
	"RelAlgDb/internal/relation"
)

// A condition is a column, the first run of comparison characters, and a
// literal, e.g. "age >= 30" or "dept = 'HR'".
var conditionPattern = regexp.MustCompile(`([^<>=!]+)([<>=!]+)(.+)`)

var digitsPattern = regexp.MustCompile(`^[0-9]+$`)

// Condition is a single comparison between a row's column and a literal.
type Condition struct {
	Column  string
	Op      string
	Literal relation.Value
}

// Parse splits a condition string into column, operator and literal.
func Parse(s string) (Condition, error) {
	m := conditionPattern.FindStringSubmatch(s)
	if m == nil {
		return Condition{}, c.NewParseError(c.ErrMalformedCondition, s)
	}

	return Condition{
		Column:  strings.TrimSpace(m[1]),
		Op:      m[2],
		Literal: parseLiteral(m[3]),
	}, nil
}

// parseLiteral reads digits as a number and anything else as text with one
// pair of matching surrounding quotes removed.
func parseLiteral(raw string) relation.Value {
	s := strings.TrimSpace(raw)
	if digitsPattern.MatchString(s) {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i
		}
		f, _ := strconv.ParseFloat(s, 64)
		return f
	}
	if len(s) >= 2 && (s[0] == '\'' || s[0] == '"') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

// Evaluate applies the condition to row. Unknown operators are false.
func (cond Condition) Evaluate(row relation.Row) bool {
	// An absent column reads as nil and only != holds for it.
	v, _ := row.Get(cond.Column)

	switch cond.Op {
	case c.ASSIGN:
		return c.LooseEqual(v, cond.Literal)
	case c.NOT_EQ:
		return !c.LooseEqual(v, cond.Literal)
	case c.GREATER_THAN:
		return c.GreaterThanComparison(v, cond.Literal)
	case c.LESS_THAN:
		return c.LessThanComparison(v, cond.Literal)
	case c.GREATER_THAN_OR_EQ:
		return c.GreaterThanOrEqualComparison(v, cond.Literal)
	case c.LESS_THAN_OR_EQ:
		return c.LessThanOrEqualComparison(v, cond.Literal)
	default:
		return false
	}
}

// Evaluate parses condition and applies it to row in one step.
func Evaluate(condition string, row relation.Row) (bool, error) {
	cond, err := Parse(condition)
	if err != nil {
		return false, err
	}
	return cond.Evaluate(row), nil
}
