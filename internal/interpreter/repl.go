package interpreter

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	e "RelAlgDb/internal/interpreter/eval"
	log "RelAlgDb/internal/logger"
)

// Repl reads one expression per line from in and writes each result to out.
// "exit" ends the session and "tables" lists the catalog.
func Repl(in io.Reader, out io.Writer, evaluator *e.Evaluator) error {
	logger := log.Get("repl")
	logger.Info("Starting REPL session")
	fmt.Fprintln(out, "Welcome to RelAlgDb")
	fmt.Fprintln(out, "Enter relational algebra expressions, 'tables' to list relations, or 'exit' to quit")

	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())

		switch strings.ToLower(input) {
		case "exit":
			logger.Info("User requested exit")
			logger.Info("REPL session ended")
			return nil
		case "tables":
			fmt.Fprintln(out, strings.Join(evaluator.Catalog().Names(), "\n"))
			continue
		case "":
			continue
		}

		logger.Debug("Processing expression: %s", input)

		result, err := evaluator.Execute(input)
		if err != nil {
			logger.Error("Expression evaluation failed: %v", err)
			fmt.Fprintf(out, "Error: %v\n", err)
			continue
		}

		fmt.Fprintln(out, FormatResult(result))
	}

	if err := scanner.Err(); err != nil {
		logger.Error("Error reading input: %v", err)
		return fmt.Errorf("error reading input: %w", err)
	}

	logger.Info("REPL session ended")
	return nil
}
