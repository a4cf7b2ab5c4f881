package repositories

import "github.com/orderdesk/fulfillment/pkg/domain/entities"

// InventoryRepository provides access to the inventory snapshot
type InventoryRepository interface {
	GetAvailableStock(productCode entities.ProductCode) (entities.Quantity, error)
	Snapshot() (map[entities.ProductCode]entities.Quantity, error)
	LoadEntries(entries []*entities.InventoryEntry) error
}
