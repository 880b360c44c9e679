package common

import "fmt"

// ParseError reports an expression, sub-expression or condition that matches
// none of the grammar's forms. Fragment is the offending text.
type ParseError struct {
	Fragment string
	Reason   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Reason, e.Fragment)
}

func NewParseError(reason string, fragment string) *ParseError {
	return &ParseError{Fragment: fragment, Reason: reason}
}

const (
	ErrUnknownExpression  = "unknown expression"
	ErrMalformedCondition = "malformed condition"
)
