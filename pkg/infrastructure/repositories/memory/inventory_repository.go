package memory

import (
	"fmt"

	"github.com/orderdesk/fulfillment/pkg/domain/entities"
	"github.com/orderdesk/fulfillment/pkg/domain/repositories"
)

// InventoryRepository provides in-memory inventory snapshot storage
type InventoryRepository struct {
	stock map[entities.ProductCode]entities.Quantity
}

// NewInventoryRepository creates a new in-memory inventory repository
func NewInventoryRepository() *InventoryRepository {
	return &InventoryRepository{
		stock: make(map[entities.ProductCode]entities.Quantity),
	}
}

// Verify interface compliance
var _ repositories.InventoryRepository = (*InventoryRepository)(nil)

// LoadEntries loads inventory entries into the repository
func (r *InventoryRepository) LoadEntries(entries []*entities.InventoryEntry) error {
	for _, entry := range entries {
		if err := r.AddEntry(*entry); err != nil {
			return err
		}
	}
	return nil
}

// AddEntry adds a single inventory entry
func (r *InventoryRepository) AddEntry(entry entities.InventoryEntry) error {
	if _, exists := r.stock[entry.ProductCode]; exists {
		return fmt.Errorf("duplicate product code: %s", entry.ProductCode)
	}
	r.stock[entry.ProductCode] = entry.AvailableStock
	return nil
}

// GetAvailableStock returns the available stock for a product. Unknown
// products report zero stock rather than an error; the engine treats them
// the same way.
func (r *InventoryRepository) GetAvailableStock(productCode entities.ProductCode) (entities.Quantity, error) {
	return r.stock[productCode], nil
}

// Snapshot returns a copy of the current stock levels keyed by product code
func (r *InventoryRepository) Snapshot() (map[entities.ProductCode]entities.Quantity, error) {
	snapshot := make(map[entities.ProductCode]entities.Quantity, len(r.stock))
	for code, stock := range r.stock {
		snapshot[code] = stock
	}
	return snapshot, nil
}

// Count returns the number of distinct products in the snapshot
func (r *InventoryRepository) Count() int {
	return len(r.stock)
}
