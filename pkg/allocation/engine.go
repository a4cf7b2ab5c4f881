package allocation

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/orderdesk/fulfillment/pkg/domain/entities"
)

// MaxDailyCapacity is the shared ceiling on total units fulfillable across
// all products for a single calendar date. It resets at every date boundary
// and is never carried over.
const MaxDailyCapacity entities.Quantity = 200

// EngineConfig holds configuration for the allocation engine
type EngineConfig struct {
	// DailyCapacity sets the per-date fulfillment ceiling (0 = MaxDailyCapacity)
	DailyCapacity entities.Quantity
}

// Engine implements the per-day, priority-ordered allocation logic
type Engine struct {
	config EngineConfig
}

// NewEngine creates a new allocation engine with the default daily capacity
func NewEngine() *Engine {
	return NewEngineWithConfig(EngineConfig{DailyCapacity: MaxDailyCapacity})
}

// NewEngineWithConfig creates a new allocation engine with custom configuration
func NewEngineWithConfig(config EngineConfig) *Engine {
	if config.DailyCapacity <= 0 {
		config.DailyCapacity = MaxDailyCapacity
	}
	return &Engine{config: config}
}

// ConsistencyError reports an internal counter computed as negative after a
// mutation. The decision arithmetic is designed to make this unreachable, so
// it signals a logic defect in the engine itself, not a data problem. The run
// must abort; there is nothing to retry.
type ConsistencyError struct {
	Counter string
	OrderID string
	Value   entities.Quantity
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("%s went negative (%d) after order %s: allocation logic defect",
		e.Counter, e.Value, e.OrderID)
}

// Allocate resolves a batch of validated orders against an inventory snapshot.
//
// Orders are grouped by calendar date and visited in ascending date order.
// Within a date, urgent orders precede normal orders; ties keep their input
// order (stable sort). Each order consumes from a shared working copy of the
// inventory and from a daily capacity counter that resets to the configured
// ceiling at every date boundary. Exactly one DecisionRecord is emitted per
// input order, in traversal order.
//
// The caller guarantees validated input (unique order IDs, positive
// quantities, non-negative stock); no re-validation happens here. Product
// codes absent from the snapshot are treated as zero available stock.
func (e *Engine) Allocate(
	ctx context.Context,
	orders []entities.Order,
	snapshot map[entities.ProductCode]entities.Quantity,
) ([]entities.DecisionRecord, error) {
	// Working copy: the caller's snapshot is never mutated
	inventory := make(map[entities.ProductCode]entities.Quantity, len(snapshot))
	for code, stock := range snapshot {
		inventory[code] = stock
	}

	// Partition orders by calendar date, time of day discarded
	ordersByDate := make(map[time.Time][]entities.Order)
	for _, order := range orders {
		day := dateOnly(order.OrderDate)
		ordersByDate[day] = append(ordersByDate[day], order)
	}

	dates := make([]time.Time, 0, len(ordersByDate))
	for day := range ordersByDate {
		dates = append(dates, day)
	}
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})

	decisions := make([]entities.DecisionRecord, 0, len(orders))

	for _, day := range dates {
		remainingCapacity := e.config.DailyCapacity

		daily := ordersByDate[day]
		// Urgent before normal; stable so same-priority orders keep input order
		sort.SliceStable(daily, func(i, j int) bool {
			return daily[i].Priority < daily[j].Priority
		})

		for _, order := range daily {
			record, err := e.decide(order, day, inventory, &remainingCapacity)
			if err != nil {
				return nil, err
			}
			decisions = append(decisions, record)
		}
	}

	return decisions, nil
}

// decide applies the decision cascade to a single order and mutates the
// working inventory and capacity counter accordingly. Branch order is the
// precedence contract: conditions are not disjoint in the abstract, the
// first match wins.
func (e *Engine) decide(
	order entities.Order,
	day time.Time,
	inventory map[entities.ProductCode]entities.Quantity,
	remainingCapacity *entities.Quantity,
) (entities.DecisionRecord, error) {
	stock := inventory[order.ProductCode]
	capacity := *remainingCapacity
	qty := order.Quantity

	var decision entities.Decision
	var reason string

	switch {
	// 1. No stock at all
	case stock == 0:
		decision = entities.Escalate
		reason = fmt.Sprintf("No inventory available for product %s.", order.ProductCode)

	// 2. Urgent order but the day's capacity is gone
	case capacity == 0 && order.Priority == entities.Urgent:
		decision = entities.Escalate
		reason = "Urgent order cannot be processed due to exhausted daily capacity."

	// 3. Full approval
	case stock >= qty && capacity >= qty:
		decision = entities.Approve
		reason = fmt.Sprintf("Sufficient inventory (%d) and daily capacity (%d).", stock, capacity)
		inventory[order.ProductCode] -= qty
		*remainingCapacity -= qty

	// 4. Partial fulfillment up to the binding constraint
	case stock > 0 && capacity > 0:
		splitQty := stock
		if capacity < splitQty {
			splitQty = capacity
		}
		inventory[order.ProductCode] -= splitQty
		*remainingCapacity -= splitQty

		decision = entities.Split
		// The remainder is not reissued as a follow-up order in either case;
		// only the wording differs by priority.
		if order.Priority == entities.Urgent {
			reason = fmt.Sprintf("Only %d units could be processed due to "+
				"inventory/capacity limits. Remaining quantity escalated.", splitQty)
		} else {
			reason = fmt.Sprintf("Only %d units could be processed due to "+
				"inventory/capacity limits. Remaining quantity delayed.", splitQty)
		}

	// 5. Stock exists but capacity cannot cover the order
	case stock >= qty && capacity < qty:
		decision = entities.Delay
		reason = fmt.Sprintf("Inventory available (%d) but daily capacity exhausted (%d).",
			stock, capacity)

	// 6. Safety fallback, unreachable while 1-5 stay exhaustive
	default:
		decision = entities.Escalate
		reason = "Unhandled decision scenario. Manual intervention required."
	}

	// Post-mutation safety checks, fatal if tripped
	if inventory[order.ProductCode] < 0 {
		return entities.DecisionRecord{}, &ConsistencyError{
			Counter: "inventory stock",
			OrderID: order.OrderID,
			Value:   inventory[order.ProductCode],
		}
	}
	if *remainingCapacity < 0 {
		return entities.DecisionRecord{}, &ConsistencyError{
			Counter: "daily capacity",
			OrderID: order.OrderID,
			Value:   *remainingCapacity,
		}
	}

	return entities.DecisionRecord{
		OrderID:           order.OrderID,
		ProductCode:       order.ProductCode,
		OrderDate:         day.Format("2006-01-02"),
		RequestedQuantity: qty,
		Decision:          decision,
		Reason:            reason,
	}, nil
}

// dateOnly truncates a timestamp to its calendar date in UTC so that orders
// placed at different times of the same day land in the same group
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
