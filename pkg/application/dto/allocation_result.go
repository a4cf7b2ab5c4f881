package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/orderdesk/fulfillment/pkg/domain/entities"
)

// Summary aggregates per-decision counts and rates for a completed run
type Summary struct {
	TotalOrders  int             `json:"total_orders"`
	Approved     int             `json:"approved"`
	Split        int             `json:"split"`
	Delayed      int             `json:"delayed"`
	Escalated    int             `json:"escalated"`
	ApprovalRate decimal.Decimal `json:"approval_rate"`
}

// AllocationResult contains the complete output of an allocation run
type AllocationResult struct {
	RunID       string                    `json:"run_id"`
	GeneratedAt time.Time                 `json:"generated_at"`
	Decisions   []entities.DecisionRecord `json:"decisions"`
	Summary     Summary                   `json:"summary"`
}

// NewAllocationResult assembles a run result from the engine's decision
// sequence, preserving its order
func NewAllocationResult(decisions []entities.DecisionRecord) *AllocationResult {
	return &AllocationResult{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Decisions:   decisions,
		Summary:     Summarize(decisions),
	}
}

// Summarize tallies decisions by outcome. The approval rate counts fully
// approved orders only; splits are partial and tallied separately.
func Summarize(decisions []entities.DecisionRecord) Summary {
	summary := Summary{
		TotalOrders:  len(decisions),
		ApprovalRate: decimal.Zero,
	}

	for _, record := range decisions {
		switch record.Decision {
		case entities.Approve:
			summary.Approved++
		case entities.Split:
			summary.Split++
		case entities.Delay:
			summary.Delayed++
		case entities.Escalate:
			summary.Escalated++
		}
	}

	if summary.TotalOrders > 0 {
		summary.ApprovalRate = decimal.NewFromInt(int64(summary.Approved)).
			Div(decimal.NewFromInt(int64(summary.TotalOrders))).
			Round(4)
	}

	return summary
}
