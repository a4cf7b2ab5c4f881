package memory

import (
	"testing"
	"time"

	"github.com/orderdesk/fulfillment/pkg/domain/entities"
)

func TestOrderRepository_LoadAndGetOrders(t *testing.T) {
	repo := NewOrderRepository()

	orderDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	orders := []*entities.Order{
		{OrderID: "O2", ProductCode: "P1", Quantity: 5, OrderDate: orderDate, Priority: entities.Normal},
		{OrderID: "O1", ProductCode: "P2", Quantity: 3, OrderDate: orderDate, Priority: entities.Urgent},
	}

	if err := repo.LoadOrders(orders); err != nil {
		t.Fatalf("Failed to load orders: %v", err)
	}

	got, err := repo.GetOrders()
	if err != nil {
		t.Fatalf("Failed to get orders: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("Expected 2 orders, got %d", len(got))
	}

	// Insertion order is the engine's tie-break and must survive a round trip
	if got[0].OrderID != "O2" || got[1].OrderID != "O1" {
		t.Errorf("Expected insertion order [O2 O1], got [%s %s]", got[0].OrderID, got[1].OrderID)
	}

	if repo.Count() != 2 {
		t.Errorf("Expected count 2, got %d", repo.Count())
	}
}

func TestOrderRepository_RejectsDuplicateID(t *testing.T) {
	repo := NewOrderRepository()

	orderDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	order := entities.Order{OrderID: "O1", ProductCode: "P1", Quantity: 5, OrderDate: orderDate, Priority: entities.Normal}

	if err := repo.AddOrder(order); err != nil {
		t.Fatalf("First add failed: %v", err)
	}

	if err := repo.AddOrder(order); err == nil {
		t.Error("Expected duplicate order ID error, got none")
	}
}
