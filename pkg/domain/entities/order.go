package entities

import (
	"fmt"
	"strings"
	"time"
)

// ProductCode represents a unique product identifier
type ProductCode string

// Quantity represents an integer quantity of fulfillment units
type Quantity int64

// Priority represents the fulfillment priority of an order
type Priority int

const (
	Urgent Priority = iota
	Normal
)

// String method for Priority enum
func (p Priority) String() string {
	switch p {
	case Urgent:
		return "urgent"
	case Normal:
		return "normal"
	default:
		return "unknown"
	}
}

// ParsePriority parses a priority string, case-insensitively
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "urgent":
		return Urgent, nil
	case "normal":
		return Normal, nil
	default:
		return Normal, fmt.Errorf("invalid priority: %s (expected: urgent or normal)", s)
	}
}

// Order represents a single customer order awaiting an allocation decision
type Order struct {
	OrderID     string
	ProductCode ProductCode
	Quantity    Quantity
	OrderDate   time.Time
	Priority    Priority
}

// NewOrder creates a validated Order
func NewOrder(
	orderID string,
	productCode ProductCode,
	quantity Quantity,
	orderDate time.Time,
	priority Priority,
) (*Order, error) {
	if orderID == "" {
		return nil, fmt.Errorf("order ID cannot be empty")
	}
	if string(productCode) == "" {
		return nil, fmt.Errorf("product code cannot be empty")
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive, got %d", quantity)
	}
	if orderDate.IsZero() {
		return nil, fmt.Errorf("order date cannot be zero")
	}

	return &Order{
		OrderID:     orderID,
		ProductCode: productCode,
		Quantity:    quantity,
		OrderDate:   orderDate,
		Priority:    priority,
	}, nil
}
