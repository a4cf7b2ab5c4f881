package dto

import (
	"testing"

	"github.com/orderdesk/fulfillment/pkg/domain/entities"
)

func TestSummarize(t *testing.T) {
	decisions := []entities.DecisionRecord{
		{OrderID: "O1", Decision: entities.Approve},
		{OrderID: "O2", Decision: entities.Approve},
		{OrderID: "O3", Decision: entities.Split},
		{OrderID: "O4", Decision: entities.Delay},
		{OrderID: "O5", Decision: entities.Escalate},
	}

	summary := Summarize(decisions)

	if summary.TotalOrders != 5 {
		t.Errorf("Expected 5 total orders, got %d", summary.TotalOrders)
	}
	if summary.Approved != 2 {
		t.Errorf("Expected 2 approved, got %d", summary.Approved)
	}
	if summary.Split != 1 {
		t.Errorf("Expected 1 split, got %d", summary.Split)
	}
	if summary.Delayed != 1 {
		t.Errorf("Expected 1 delayed, got %d", summary.Delayed)
	}
	if summary.Escalated != 1 {
		t.Errorf("Expected 1 escalated, got %d", summary.Escalated)
	}

	if summary.ApprovalRate.String() != "0.4" {
		t.Errorf("Expected approval rate 0.4, got %s", summary.ApprovalRate.String())
	}
}

func TestSummarize_Empty(t *testing.T) {
	summary := Summarize(nil)

	if summary.TotalOrders != 0 {
		t.Errorf("Expected 0 total orders, got %d", summary.TotalOrders)
	}
	if !summary.ApprovalRate.IsZero() {
		t.Errorf("Expected zero approval rate, got %s", summary.ApprovalRate.String())
	}
}

func TestNewAllocationResult_PreservesDecisionOrder(t *testing.T) {
	decisions := []entities.DecisionRecord{
		{OrderID: "O2", Decision: entities.Approve},
		{OrderID: "O1", Decision: entities.Escalate},
	}

	result := NewAllocationResult(decisions)

	if result.RunID == "" {
		t.Error("Expected a run ID")
	}

	if result.Decisions[0].OrderID != "O2" || result.Decisions[1].OrderID != "O1" {
		t.Error("Expected decision order preserved as received")
	}
}
