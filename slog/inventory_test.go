package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/rtfm"
	"github.com/fwojciec/rtfm/mock"
	rtfmslog "github.com/fwojciec/rtfm/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingInventoryService(t *testing.T) {
	t.Parallel()

	t.Run("delegates and logs fetched inventories", func(t *testing.T) {
		t.Parallel()

		next := &mock.InventoryService{
			FetchInventoryFn: func(ctx context.Context, source rtfm.Source) (*rtfm.Inventory, error) {
				return &rtfm.Inventory{Project: "testproj", Entries: []rtfm.Entry{{Name: "a"}}}, nil
			},
		}

		var buf bytes.Buffer
		svc := rtfmslog.NewLoggingInventoryService(next, slog.New(slog.NewTextHandler(&buf, nil)))

		inv, err := svc.FetchInventory(context.Background(), rtfm.Source{Key: "python"})
		require.NoError(t, err)

		assert.Len(t, inv.Entries, 1)
		assert.Contains(t, buf.String(), "fetched inventory")
		assert.Contains(t, buf.String(), "python")
	})

	t.Run("logs the error code on failure", func(t *testing.T) {
		t.Parallel()

		next := &mock.InventoryService{
			FetchInventoryFn: func(ctx context.Context, source rtfm.Source) (*rtfm.Inventory, error) {
				return nil, rtfm.Errorf(rtfm.EUNAVAILABLE, "HTTP 503")
			},
		}

		var buf bytes.Buffer
		svc := rtfmslog.NewLoggingInventoryService(next, slog.New(slog.NewTextHandler(&buf, nil)))

		_, err := svc.FetchInventory(context.Background(), rtfm.Source{Key: "python"})
		require.Error(t, err)

		assert.Contains(t, buf.String(), "inventory fetch failed")
		assert.Contains(t, buf.String(), rtfm.EUNAVAILABLE)
	})
}
