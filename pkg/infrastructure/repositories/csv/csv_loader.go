package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/orderdesk/fulfillment/pkg/domain/entities"
)

// Loader handles loading allocation input data from CSV files.
//
// The loader owns all schema validation: the allocation engine assumes its
// input invariants (unique IDs, positive quantities, known priorities,
// parseable dates, non-negative stock) already hold and does not re-check
// them.
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

const dateLayout = "2006-01-02"

// LoadOrders loads and validates orders from a CSV file
func (l *Loader) LoadOrders(filename string) ([]*entities.Order, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open orders file %s: %w", filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read orders CSV: %w", err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("orders CSV must have header and at least one data row")
	}

	expectedHeader := []string{"orderid", "productcode", "quantity", "orderdate", "priority"}
	header := records[0]
	if !validateHeader(header, expectedHeader) {
		return nil, fmt.Errorf("orders CSV header mismatch. Expected: %v, Got: %v", expectedHeader, header)
	}

	seenIDs := make(map[string]bool)

	var orders []*entities.Order
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("orders CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		order, err := parseOrder(record)
		if err != nil {
			return nil, fmt.Errorf("orders CSV row %d: %w", i+2, err)
		}

		if seenIDs[order.OrderID] {
			return nil, fmt.Errorf("orders CSV row %d: duplicate order ID %s", i+2, order.OrderID)
		}
		seenIDs[order.OrderID] = true

		orders = append(orders, &order)
	}

	return orders, nil
}

// LoadInventory loads and validates the inventory snapshot from a CSV file
func (l *Loader) LoadInventory(filename string) ([]*entities.InventoryEntry, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open inventory file %s: %w", filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read inventory CSV: %w", err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("inventory CSV must have header and at least one data row")
	}

	expectedHeader := []string{"productcode", "availablestock"}
	header := records[0]
	if !validateHeader(header, expectedHeader) {
		return nil, fmt.Errorf("inventory CSV header mismatch. Expected: %v, Got: %v", expectedHeader, header)
	}

	seenCodes := make(map[entities.ProductCode]bool)

	var entries []*entities.InventoryEntry
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("inventory CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		entry, err := parseInventoryEntry(record)
		if err != nil {
			return nil, fmt.Errorf("inventory CSV row %d: %w", i+2, err)
		}

		if seenCodes[entry.ProductCode] {
			return nil, fmt.Errorf("inventory CSV row %d: duplicate product code %s", i+2, entry.ProductCode)
		}
		seenCodes[entry.ProductCode] = true

		entries = append(entries, &entry)
	}

	return entries, nil
}

// Helper functions for parsing CSV records

func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}

	for i, col := range expected {
		if strings.ToLower(strings.TrimSpace(actual[i])) != col {
			return false
		}
	}

	return true
}

func parseOrder(record []string) (entities.Order, error) {
	orderID := strings.TrimSpace(record[0])
	productCode := entities.ProductCode(strings.TrimSpace(record[1]))

	if orderID == "" {
		return entities.Order{}, fmt.Errorf("missing order ID")
	}
	if string(productCode) == "" {
		return entities.Order{}, fmt.Errorf("missing product code")
	}

	quantity, err := strconv.ParseInt(strings.TrimSpace(record[2]), 10, 64)
	if err != nil {
		return entities.Order{}, fmt.Errorf("invalid quantity: %s", record[2])
	}
	if quantity <= 0 {
		return entities.Order{}, fmt.Errorf("quantity must be positive, got %d", quantity)
	}

	orderDate, err := time.Parse(dateLayout, strings.TrimSpace(record[3]))
	if err != nil {
		return entities.Order{}, fmt.Errorf("invalid order date: %s (expected YYYY-MM-DD)", record[3])
	}

	priority, err := entities.ParsePriority(record[4])
	if err != nil {
		return entities.Order{}, err
	}

	order, err := entities.NewOrder(orderID, productCode, entities.Quantity(quantity), orderDate, priority)
	if err != nil {
		return entities.Order{}, err
	}

	return *order, nil
}

func parseInventoryEntry(record []string) (entities.InventoryEntry, error) {
	productCode := entities.ProductCode(strings.TrimSpace(record[0]))
	if string(productCode) == "" {
		return entities.InventoryEntry{}, fmt.Errorf("missing product code")
	}

	availableStock, err := strconv.ParseInt(strings.TrimSpace(record[1]), 10, 64)
	if err != nil {
		return entities.InventoryEntry{}, fmt.Errorf("invalid available stock: %s", record[1])
	}
	if availableStock < 0 {
		return entities.InventoryEntry{}, fmt.Errorf("available stock cannot be negative, got %d", availableStock)
	}

	entry, err := entities.NewInventoryEntry(productCode, entities.Quantity(availableStock))
	if err != nil {
		return entities.InventoryEntry{}, err
	}

	return *entry, nil
}
