package parser

import "regexp"

type Parser struct {
	input string
}

// Unary forms are matched against the whole remaining string.
var (
	projectPattern = regexp.MustCompile(`^π_\{([^}]*)\}\((.*)\)$`)
	selectPattern  = regexp.MustCompile(`^σ_\{([^}]*)\}\((.*)\)$`)
	renamePattern  = regexp.MustCompile(`^ρ_\{([^}]*)\}\((.*)\)$`)
	groupPattern   = regexp.MustCompile(`^\((.*)\)$`)
)
