package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/rtfm"
)

// Ensure LoggingInventoryService implements rtfm.InventoryService.
var _ rtfm.InventoryService = (*LoggingInventoryService)(nil)

// LoggingInventoryService wraps an InventoryService with fetch logging.
type LoggingInventoryService struct {
	next   rtfm.InventoryService
	logger *slog.Logger
}

// NewLoggingInventoryService creates a new LoggingInventoryService.
func NewLoggingInventoryService(next rtfm.InventoryService, logger *slog.Logger) *LoggingInventoryService {
	return &LoggingInventoryService{next: next, logger: logger}
}

// FetchInventory logs the fetch and delegates to the wrapped service.
func (s *LoggingInventoryService) FetchInventory(ctx context.Context, source rtfm.Source) (*rtfm.Inventory, error) {
	begin := time.Now()

	inv, err := s.next.FetchInventory(ctx, source)
	if err != nil {
		s.logger.Info("inventory fetch failed",
			"source", source.Key,
			"code", rtfm.ErrorCode(err),
			"duration", time.Since(begin),
		)
		return nil, err
	}

	s.logger.Info("fetched inventory",
		"source", source.Key,
		"project", inv.Project,
		"entries", len(inv.Entries),
		"duration", time.Since(begin),
	)
	return inv, nil
}
