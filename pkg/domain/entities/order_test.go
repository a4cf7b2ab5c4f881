package entities

import (
	"testing"
	"time"
)

func TestParsePriority(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  Priority
		expectErr bool
	}{
		{"lowercase_urgent", "urgent", Urgent, false},
		{"lowercase_normal", "normal", Normal, false},
		{"mixed_case", "Urgent", Urgent, false},
		{"uppercase", "NORMAL", Normal, false},
		{"padded", "  urgent  ", Urgent, false},
		{"unknown", "critical", Normal, true},
		{"empty", "", Normal, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			priority, err := ParsePriority(tt.input)

			if tt.expectErr {
				if err == nil {
					t.Errorf("Expected error for input %q, got none", tt.input)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for input %q: %v", tt.input, err)
			}
			if priority != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, priority)
			}
		})
	}
}

func TestNewOrder_Valid(t *testing.T) {
	orderDate := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	order, err := NewOrder("O1", "P1", 10, orderDate, Urgent)
	if err != nil {
		t.Fatalf("Failed to create valid order: %v", err)
	}

	if order.OrderID != "O1" {
		t.Errorf("Expected order ID O1, got %s", order.OrderID)
	}
	if order.Quantity != 10 {
		t.Errorf("Expected quantity 10, got %d", order.Quantity)
	}
	if order.Priority != Urgent {
		t.Errorf("Expected urgent priority, got %s", order.Priority)
	}
}

func TestNewOrder_Invalid(t *testing.T) {
	orderDate := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		orderID     string
		productCode ProductCode
		quantity    Quantity
		orderDate   time.Time
	}{
		{"empty_order_id", "", "P1", 10, orderDate},
		{"empty_product_code", "O1", "", 10, orderDate},
		{"zero_quantity", "O1", "P1", 0, orderDate},
		{"negative_quantity", "O1", "P1", -5, orderDate},
		{"zero_date", "O1", "P1", 10, time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewOrder(tt.orderID, tt.productCode, tt.quantity, tt.orderDate, Normal); err == nil {
				t.Error("Expected validation error, got none")
			}
		})
	}
}

func TestNewInventoryEntry(t *testing.T) {
	entry, err := NewInventoryEntry("P1", 50)
	if err != nil {
		t.Fatalf("Failed to create valid entry: %v", err)
	}
	if entry.AvailableStock != 50 {
		t.Errorf("Expected stock 50, got %d", entry.AvailableStock)
	}

	if _, err := NewInventoryEntry("", 50); err == nil {
		t.Error("Expected error for empty product code")
	}
	if _, err := NewInventoryEntry("P1", -1); err == nil {
		t.Error("Expected error for negative stock")
	}

	// Zero stock is a valid snapshot state
	if _, err := NewInventoryEntry("P1", 0); err != nil {
		t.Errorf("Unexpected error for zero stock: %v", err)
	}
}
