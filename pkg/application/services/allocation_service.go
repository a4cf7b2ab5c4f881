package services

import (
	"context"
	"fmt"

	"github.com/orderdesk/fulfillment/pkg/allocation"
	"github.com/orderdesk/fulfillment/pkg/application/dto"
	"github.com/orderdesk/fulfillment/pkg/domain/entities"
	"github.com/orderdesk/fulfillment/pkg/domain/repositories"
)

// AllocationService runs the allocation engine against repository-backed
// orders and inventory and packages the outcome as a run result
type AllocationService struct {
	engine *allocation.Engine
}

// NewAllocationService creates a service with a default-capacity engine
func NewAllocationService() *AllocationService {
	return &AllocationService{engine: allocation.NewEngine()}
}

// NewAllocationServiceWithEngine creates a service around a custom engine
func NewAllocationServiceWithEngine(engine *allocation.Engine) *AllocationService {
	return &AllocationService{engine: engine}
}

// Run executes one allocation pass over the repositories' current contents
func (s *AllocationService) Run(
	ctx context.Context,
	orderRepo repositories.OrderRepository,
	inventoryRepo repositories.InventoryRepository,
) (*dto.AllocationResult, error) {
	orderPtrs, err := orderRepo.GetOrders()
	if err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}

	orders := make([]entities.Order, len(orderPtrs))
	for i, order := range orderPtrs {
		orders[i] = *order
	}

	snapshot, err := inventoryRepo.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory snapshot: %w", err)
	}

	decisions, err := s.engine.Allocate(ctx, orders, snapshot)
	if err != nil {
		return nil, fmt.Errorf("allocation failed: %w", err)
	}

	return dto.NewAllocationResult(decisions), nil
}
