package entities

import "fmt"

// InventoryEntry represents the available stock for a single product
type InventoryEntry struct {
	ProductCode    ProductCode
	AvailableStock Quantity
}

// NewInventoryEntry creates a validated InventoryEntry
func NewInventoryEntry(productCode ProductCode, availableStock Quantity) (*InventoryEntry, error) {
	if string(productCode) == "" {
		return nil, fmt.Errorf("product code cannot be empty")
	}
	if availableStock < 0 {
		return nil, fmt.Errorf("available stock cannot be negative, got %d", availableStock)
	}

	return &InventoryEntry{
		ProductCode:    productCode,
		AvailableStock: availableStock,
	}, nil
}
