package memory

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/orderdesk/po-backoffice/internal/domain/order"
)

// Seed loads a handful of demo purchase orders into an empty store so the
// screen has something to show in dev mode. It refuses to touch a store that
// already has orders.
func Seed(s *Store, logger *zap.Logger) error {
	if len(s.Read()) > 0 {
		return nil
	}

	now := time.Now().Truncate(24 * time.Hour)

	type seedItem struct {
		product  string
		quantity int
		price    int64
		taxPct   int64
	}
	seeds := []struct {
		vendor string
		status order.Status
		notes  string
		items  []seedItem
	}{
		{
			vendor: "Acme Metals",
			status: order.StatusSent,
			notes:  "Quarterly restock",
			items: []seedItem{
				{"Steel Rods 12mm", 50, 120, 18},
				{"Welding Wire", 10, 450, 18},
			},
		},
		{
			vendor: "Brightline Office Supplies",
			status: order.StatusDraft,
			items: []seedItem{
				{"A4 Paper (500 sheets)", 40, 280, 12},
				{"Toner Cartridge", 6, 3200, 18},
				{"Whiteboard Markers", 24, 45, 12},
			},
		},
	}

	orders := make([]order.PurchaseOrder, 0, len(seeds))
	for i, seed := range seeds {
		items := make([]order.LineItem, 0, len(seed.items))
		for _, si := range seed.items {
			item, err := order.NewLineItem("", si.product, si.quantity,
				decimal.NewFromInt(si.price), decimal.NewFromInt(si.taxPct))
			if err != nil {
				return fmt.Errorf("seed item %q: %w", si.product, err)
			}
			items = append(items, item)
		}

		poNumber := fmt.Sprintf("PO-%04d", i+1)
		po, err := order.NewPurchaseOrder(poNumber, "", seed.vendor,
			now, now.AddDate(0, 0, 30), items, seed.notes)
		if err != nil {
			return fmt.Errorf("seed order %s: %w", poNumber, err)
		}

		// Walk seeded orders through the lifecycle to their target status.
		for po.Status != seed.status {
			next := order.AllowedTransitions(po.Status)[0]
			if seed.status == order.StatusCancelled {
				next = order.StatusCancelled
			}
			po, err = order.ApplyTransition(po, next)
			if err != nil {
				return fmt.Errorf("seed order %s: %w", poNumber, err)
			}
		}

		orders = append(orders, po)
	}

	s.ReplaceAll(orders)
	logger.Info("Seeded demo purchase orders", zap.Int("count", len(orders)))
	return nil
}
