package main

import (
	"flag"
	"fmt"
	"os"

	"RelAlgDb/helpers"
	"RelAlgDb/internal/catalog"
	"RelAlgDb/internal/interpreter"
	"RelAlgDb/internal/server"
)

func main() {
	addr := flag.String("addr", ":8080", "address to listen on")
	catalogPath := flag.String("catalog", "", "JSON catalog file (default: sample Employees/Departments)")
	logDir := flag.String("log-dir", "logs", "log directory, empty for stderr")
	logLevel := flag.String("log-level", "error", "log level: debug, info or error")
	flag.Parse()

	if err := helpers.SetupLoggers(*logDir, *logLevel, "server", "eval"); err != nil {
		fmt.Println("Error setting up logging:", err)
		os.Exit(1)
	}

	cat, err := catalog.Load(*catalogPath)
	if err != nil {
		fmt.Println("Error loading catalog:", err)
		os.Exit(1)
	}

	if err := server.StartServer(*addr, interpreter.SetupEvaluator(cat)); err != nil {
		fmt.Println("Error running server:", err)
		os.Exit(1)
	}
}
