package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"RelAlgDb/helpers"
	"RelAlgDb/internal/catalog"
	"RelAlgDb/internal/interpreter"
	l "RelAlgDb/internal/logger"
	"RelAlgDb/internal/server"
)

func main() {
	catalogPath := flag.String("catalog", "", "JSON catalog file (default: sample Employees/Departments)")
	logDir := flag.String("log-dir", "logs", "log directory, empty for stderr")
	logLevel := flag.String("log-level", "error", "log level: debug, info or error")
	serve := flag.String("serve", "", "also serve HTTP on this address, e.g. :8080")
	flag.Parse()

	if err := helpers.SetupLoggers(*logDir, *logLevel, "repl", "eval", "server"); err != nil {
		fmt.Println("Error setting up logging:", err)
		os.Exit(1)
	}
	replLogger := l.Get("repl")

	cat, err := catalog.Load(*catalogPath)
	if err != nil {
		fmt.Println("Error loading catalog:", err)
		os.Exit(1)
	}
	evaluator := interpreter.SetupEvaluator(cat)

	if *serve != "" {
		go func() {
			if err := server.StartServer(*serve, evaluator); err != nil {
				replLogger.Error("Server stopped: %v", err)
			}
		}()
		if err := helpers.WaitForServer(helpers.NormalizeAddr(*serve), 50, 100*time.Millisecond); err != nil {
			fmt.Println("Error starting server:", err)
			os.Exit(1)
		}
		replLogger.Info("Serving HTTP on %s", *serve)
	}

	if err := interpreter.Repl(os.Stdin, os.Stdout, evaluator); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
