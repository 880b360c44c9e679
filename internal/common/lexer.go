package common

const (
	// Binary operators, listed in the order the parser looks for them
	UNION      = "∪"
	DIFFERENCE = "-"
	JOIN       = "⋈"
	PRODUCT    = "×"

	// Unary prefix operators, written as symbol_{argument}(expression)
	PROJECT = "π"
	SELECT  = "σ"
	RENAME  = "ρ"

	// Comparison Operators
	ASSIGN             = "="
	NOT_EQ             = "!="
	LESS_THAN          = "<"
	LESS_THAN_OR_EQ    = "<="
	GREATER_THAN       = ">"
	GREATER_THAN_OR_EQ = ">="

	// Delimiters
	COMMA  = ","
	LPAREN = "("
	RPAREN = ")"
	LBRACE = "{"
	RBRACE = "}"
)

// BinaryPriority is the fixed order in which top-level binary operators are
// tried. The first one found at depth zero splits the expression.
var BinaryPriority = []string{UNION, DIFFERENCE, JOIN, PRODUCT}

var ComparisonOperators = map[string]bool{
	ASSIGN:             true,
	NOT_EQ:             true,
	LESS_THAN:          true,
	LESS_THAN_OR_EQ:    true,
	GREATER_THAN:       true,
	GREATER_THAN_OR_EQ: true,
}

// IsComparisonChar reports whether c can be part of a comparison operator run.
func IsComparisonChar(c byte) bool {
	return c == '<' || c == '>' || c == '=' || c == '!'
}
