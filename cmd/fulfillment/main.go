package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/orderdesk/fulfillment/pkg/interfaces/cli/commands"
)

func main() {
	// Command line flags
	var (
		ordersFile    = flag.String("orders", "", "Path to orders CSV file")
		inventoryFile = flag.String("inventory", "", "Path to inventory CSV file")
		configFile    = flag.String("config", "", "Path to YAML run configuration")
		outputDir     = flag.String("output", "", "Output directory for the decision log")
		format        = flag.String("format", "", "Output format: text, json, csv")
		verbose       = flag.Bool("verbose", false, "Enable verbose output")
		help          = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	// Create command configuration
	config := commands.Config{
		OrdersFile:    *ordersFile,
		InventoryFile: *inventoryFile,
		ConfigFile:    *configFile,
		OutputDir:     *outputDir,
		Format:        *format,
		Verbose:       *verbose,
		Help:          *help,
	}

	// Create and execute command
	cmd := commands.NewAllocateCommand(config)
	ctx := context.Background()

	if err := cmd.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
