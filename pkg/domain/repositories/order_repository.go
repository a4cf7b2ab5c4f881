package repositories

import "github.com/orderdesk/fulfillment/pkg/domain/entities"

// OrderRepository provides access to the order batch awaiting allocation.
// GetOrders returns orders in insertion order; the engine's stable priority
// sort uses that order as the tie-break.
type OrderRepository interface {
	GetOrders() ([]*entities.Order, error)
	LoadOrders(orders []*entities.Order) error
}
