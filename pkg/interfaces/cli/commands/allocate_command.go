package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/orderdesk/fulfillment/pkg/application/services"
	"github.com/orderdesk/fulfillment/pkg/infrastructure/repositories/csv"
	"github.com/orderdesk/fulfillment/pkg/infrastructure/repositories/memory"
	"github.com/orderdesk/fulfillment/pkg/interfaces/cli/output"
)

// Config holds configuration for the allocate command
type Config struct {
	OrdersFile    string
	InventoryFile string
	OutputDir     string
	Format        string
	ConfigFile    string
	Verbose       bool
	Help          bool
}

// AllocateCommand handles the main allocation execution logic
type AllocateCommand struct {
	config Config
}

// NewAllocateCommand creates a new allocate command with the given configuration
func NewAllocateCommand(config Config) *AllocateCommand {
	return &AllocateCommand{
		config: config,
	}
}

// Execute runs the allocate command
func (c *AllocateCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}

	if err := c.resolveConfig(); err != nil {
		return err
	}

	if err := c.validateInputs(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if c.config.Verbose {
		fmt.Println("Loading data from CSV files...")
	}

	csvLoader := csv.NewLoader()

	orders, err := csvLoader.LoadOrders(c.config.OrdersFile)
	if err != nil {
		return fmt.Errorf("error loading orders: %w", err)
	}

	entries, err := csvLoader.LoadInventory(c.config.InventoryFile)
	if err != nil {
		return fmt.Errorf("error loading inventory: %w", err)
	}

	if c.config.Verbose {
		fmt.Printf("Data loaded successfully:\n")
		fmt.Printf("  Orders: %d\n", len(orders))
		fmt.Printf("  Inventory Entries: %d\n", len(entries))
		fmt.Println()
	}

	orderRepo := memory.NewOrderRepository()
	if err := orderRepo.LoadOrders(orders); err != nil {
		return fmt.Errorf("failed to load orders into repository: %w", err)
	}

	inventoryRepo := memory.NewInventoryRepository()
	if err := inventoryRepo.LoadEntries(entries); err != nil {
		return fmt.Errorf("failed to load inventory into repository: %w", err)
	}

	service := services.NewAllocationService()

	startTime := time.Now()
	result, err := service.Run(ctx, orderRepo, inventoryRepo)
	if err != nil {
		return err
	}
	runTime := time.Since(startTime)

	outputConfig := output.Config{
		Format:    c.config.Format,
		OutputDir: c.config.OutputDir,
		Verbose:   c.config.Verbose,
		RunTime:   runTime,
	}

	return output.Generate(result, outputConfig)
}

// resolveConfig layers the optional YAML config under explicit flag values
func (c *AllocateCommand) resolveConfig() error {
	fileConfig := DefaultRunConfig()

	if c.config.ConfigFile != "" {
		loaded, err := LoadRunConfig(c.config.ConfigFile)
		if err != nil {
			return err
		}
		fileConfig = loaded
	}

	if c.config.OrdersFile == "" {
		c.config.OrdersFile = fileConfig.OrdersFile
	}
	if c.config.InventoryFile == "" {
		c.config.InventoryFile = fileConfig.InventoryFile
	}
	if c.config.OutputDir == "" {
		c.config.OutputDir = fileConfig.OutputDir
	}
	if c.config.Format == "" {
		c.config.Format = fileConfig.Format
	}
	if fileConfig.Verbose {
		c.config.Verbose = true
	}

	return nil
}

// validateInputs checks that required inputs are present and coherent
func (c *AllocateCommand) validateInputs() error {
	if c.config.OrdersFile == "" {
		return fmt.Errorf("orders file is required (use -orders or a config file)")
	}
	if c.config.InventoryFile == "" {
		return fmt.Errorf("inventory file is required (use -inventory or a config file)")
	}

	switch c.config.Format {
	case "text", "json", "csv":
	default:
		return fmt.Errorf("invalid format: %s (must be text, json, or csv)", c.config.Format)
	}

	return nil
}

// showHelp displays usage information
func (c *AllocateCommand) showHelp() {
	fmt.Println("Fulfillment Allocator - daily capacity and inventory allocation")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  fulfillment -orders orders.csv -inventory inventory.csv [options]")
	fmt.Println("  fulfillment -config run.yaml")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -orders     Path to orders CSV file")
	fmt.Println("  -inventory  Path to inventory CSV file")
	fmt.Println("  -config     Path to YAML run configuration")
	fmt.Println("  -output     Output directory for the decision log (default: output)")
	fmt.Println("  -format     Output format: text, json, csv (default: text)")
	fmt.Println("  -verbose    Enable verbose output")
	fmt.Println("  -help       Show this help message")
	fmt.Println()
	fmt.Println("Orders CSV columns:    OrderID,ProductCode,Quantity,OrderDate,Priority")
	fmt.Println("Inventory CSV columns: ProductCode,AvailableStock")
}
