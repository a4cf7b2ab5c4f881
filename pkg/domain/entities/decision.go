package entities

import (
	"encoding/json"
	"fmt"
)

// Decision represents the allocation outcome for a single order
type Decision int

const (
	Approve Decision = iota
	Split
	Delay
	Escalate
)

// String method for Decision enum
func (d Decision) String() string {
	switch d {
	case Approve:
		return "Approve"
	case Split:
		return "Split"
	case Delay:
		return "Delay"
	case Escalate:
		return "Escalate"
	default:
		return "Unknown"
	}
}

// MarshalJSON renders the decision as its string form
func (d Decision) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// DecisionRecord represents the allocation outcome emitted for one order
type DecisionRecord struct {
	OrderID           string      `json:"order_id"`
	ProductCode       ProductCode `json:"product_code"`
	OrderDate         string      `json:"order_date"`
	RequestedQuantity Quantity    `json:"requested_quantity"`
	Decision          Decision    `json:"decision"`
	Reason            string      `json:"reason"`
}

// Line renders the record in the pipe-delimited log form consumed downstream
func (r DecisionRecord) Line() string {
	return fmt.Sprintf("%s | %s | %s | %s | %s",
		r.OrderID, r.ProductCode, r.OrderDate, r.Decision, r.Reason)
}
