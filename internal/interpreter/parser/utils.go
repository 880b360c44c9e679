package parser

import (
	"strings"

	c "RelAlgDb/internal/common"
)

// splitTop finds the first occurrence of symbol outside any parentheses and
// splits s around it. Only '(' and ')' change the depth.
func splitTop(s string, symbol string) (string, string, bool) {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		default:
			if depth == 0 && strings.HasPrefix(s[i:], symbol) {
				return s[:i], s[i+len(symbol):], true
			}
		}
	}
	return "", "", false
}

func splitColumns(arg string) []string {
	parts := strings.Split(arg, c.COMMA)
	columns := make([]string, len(parts))
	for i, p := range parts {
		columns[i] = strings.TrimSpace(p)
	}
	return columns
}
