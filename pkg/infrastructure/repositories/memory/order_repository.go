package memory

import (
	"fmt"

	"github.com/orderdesk/fulfillment/pkg/domain/entities"
	"github.com/orderdesk/fulfillment/pkg/domain/repositories"
)

// OrderRepository provides in-memory order storage
type OrderRepository struct {
	orders []entities.Order
	seen   map[string]bool
}

// NewOrderRepository creates a new in-memory order repository
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{
		orders: []entities.Order{},
		seen:   make(map[string]bool),
	}
}

// Verify interface compliance
var _ repositories.OrderRepository = (*OrderRepository)(nil)

// LoadOrders loads a batch of orders into the repository
func (r *OrderRepository) LoadOrders(orders []*entities.Order) error {
	for _, order := range orders {
		if err := r.AddOrder(*order); err != nil {
			return err
		}
	}
	return nil
}

// AddOrder adds a single order, preserving insertion order
func (r *OrderRepository) AddOrder(order entities.Order) error {
	if r.seen[order.OrderID] {
		return fmt.Errorf("duplicate order ID: %s", order.OrderID)
	}
	r.seen[order.OrderID] = true
	r.orders = append(r.orders, order)
	return nil
}

// GetOrders returns all orders in insertion order
func (r *OrderRepository) GetOrders() ([]*entities.Order, error) {
	orders := make([]*entities.Order, len(r.orders))
	for i := range r.orders {
		orders[i] = &r.orders[i]
	}
	return orders, nil
}

// Count returns the number of stored orders
func (r *OrderRepository) Count() int {
	return len(r.orders)
}
