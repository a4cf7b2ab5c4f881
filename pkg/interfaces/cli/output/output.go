package output

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/orderdesk/fulfillment/pkg/application/dto"
)

// DecisionLogName is the file the decision log is written to inside the
// output directory
const DecisionLogName = "decisions.log"

// Config holds configuration for output generation
type Config struct {
	Format    string
	OutputDir string
	Verbose   bool
	RunTime   time.Duration
}

// Generate renders an allocation result in the configured format and, when
// an output directory is set, persists the decision log there. Decisions are
// always rendered in the order received; reordering here would break the
// engine's traversal-order contract.
func Generate(result *dto.AllocationResult, config Config) error {
	switch config.Format {
	case "text":
		if err := generateTextOutput(result, config, os.Stdout); err != nil {
			return err
		}
	case "json":
		if err := generateJSONOutput(result, os.Stdout); err != nil {
			return err
		}
	case "csv":
		if err := generateCSVOutput(result, os.Stdout); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}

	if config.OutputDir != "" {
		return writeDecisionLogFile(result, config)
	}

	return nil
}

// WriteDecisionLog writes the pipe-delimited decision lines to w, one per
// record, in the order received
func WriteDecisionLog(w io.Writer, result *dto.AllocationResult) error {
	buffered := bufio.NewWriter(w)
	for _, record := range result.Decisions {
		if _, err := fmt.Fprintln(buffered, record.Line()); err != nil {
			return fmt.Errorf("failed to write decision line: %w", err)
		}
	}
	return buffered.Flush()
}

// generateTextOutput prints the decision log followed by a run summary
func generateTextOutput(result *dto.AllocationResult, config Config, w io.Writer) error {
	if err := WriteDecisionLog(w, result); err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Allocation Summary\n")
	fmt.Fprintf(w, "==================\n")
	fmt.Fprintf(w, "Run ID:        %s\n", result.RunID)
	fmt.Fprintf(w, "Orders:        %d\n", result.Summary.TotalOrders)
	fmt.Fprintf(w, "Approved:      %d\n", result.Summary.Approved)
	fmt.Fprintf(w, "Split:         %d\n", result.Summary.Split)
	fmt.Fprintf(w, "Delayed:       %d\n", result.Summary.Delayed)
	fmt.Fprintf(w, "Escalated:     %d\n", result.Summary.Escalated)
	fmt.Fprintf(w, "Approval Rate: %s\n", result.Summary.ApprovalRate.String())
	if config.Verbose {
		fmt.Fprintf(w, "Run Time:      %v\n", config.RunTime)
	}

	return nil
}

// generateJSONOutput renders the full run result as indented JSON
func generateJSONOutput(result *dto.AllocationResult, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		return fmt.Errorf("failed to encode JSON output: %w", err)
	}
	return nil
}

// generateCSVOutput renders the decision records as CSV rows
func generateCSVOutput(result *dto.AllocationResult, w io.Writer) error {
	writer := csv.NewWriter(w)

	header := []string{"order_id", "product_code", "order_date", "requested_quantity", "decision", "reason"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, record := range result.Decisions {
		row := []string{
			record.OrderID,
			string(record.ProductCode),
			record.OrderDate,
			fmt.Sprintf("%d", record.RequestedQuantity),
			record.Decision.String(),
			record.Reason,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// writeDecisionLogFile persists the decision log under the output directory
func writeDecisionLogFile(result *dto.AllocationResult, config Config) error {
	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	logPath := filepath.Join(config.OutputDir, DecisionLogName)
	file, err := os.Create(logPath)
	if err != nil {
		return fmt.Errorf("failed to create decision log %s: %w", logPath, err)
	}
	defer file.Close()

	if err := WriteDecisionLog(file, result); err != nil {
		return err
	}

	if config.Verbose {
		fmt.Printf("Decision log saved to: %s\n", logPath)
	}

	return nil
}
