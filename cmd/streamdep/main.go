package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/hydroplan/streamdep/pkg/interfaces/cli/commands"
)

func main() {
	// Command line flags
	var (
		scenarioFile = flag.String(
			"scenario",
			"",
			"Path to scenario YAML file describing the model and inputs",
		)
		usageFile = flag.String("usage", "", "Override the scenario's usage CSV path")
		urfFile   = flag.String("urf", "", "Override the scenario's URF CSV path")
		outputDir = flag.String("output", "", "Output directory for results (optional)")
		format    = flag.String("format", "text", "Output format: text, json, csv")
		verbose   = flag.Bool("verbose", false, "Enable diagnostic logging")
		help      = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	// Create command configuration
	config := commands.Config{
		ScenarioFile: *scenarioFile,
		UsageFile:    *usageFile,
		URFFile:      *urfFile,
		OutputDir:    *outputDir,
		Format:       *format,
		Verbose:      *verbose,
		Help:         *help,
	}

	// Create and execute command
	cmd := commands.NewRunCommand(config)
	ctx := context.Background()

	if err := cmd.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
