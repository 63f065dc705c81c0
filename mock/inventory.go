package mock

import (
	"context"

	"github.com/fwojciec/rtfm"
)

var _ rtfm.InventoryService = (*InventoryService)(nil)

// InventoryService is a mock implementation of rtfm.InventoryService.
type InventoryService struct {
	FetchInventoryFn func(ctx context.Context, source rtfm.Source) (*rtfm.Inventory, error)
}

func (s *InventoryService) FetchInventory(ctx context.Context, source rtfm.Source) (*rtfm.Inventory, error) {
	return s.FetchInventoryFn(ctx, source)
}
