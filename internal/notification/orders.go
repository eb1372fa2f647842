package notification

import (
	"context"

	"atelier/internal/domain"
)

// OrderPlaced fires every post-checkout side effect for a freshly paid
// order. Returns immediately.
func (d *Dispatcher) OrderPlaced(order domain.Order) {
	d.Go("order-confirmation-email", func(ctx context.Context) error {
		return d.SendOrderConfirmation(ctx, order)
	})
	d.Go("order-sheet-backup", func(ctx context.Context) error {
		return d.BackupOrderRow(ctx, order)
	})
}

// OrderBackup fires only the spreadsheet backup, for orders created through
// the plain orders API.
func (d *Dispatcher) OrderBackup(order domain.Order) {
	d.Go("order-sheet-backup", func(ctx context.Context) error {
		return d.BackupOrderRow(ctx, order)
	})
}
