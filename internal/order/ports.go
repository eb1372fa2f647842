package order

import (
	"context"
	"database/sql"

	"atelier/internal/domain"
)

type Service interface {
	// Create persists the order atomically with its customer and items and
	// returns the order id. A missing id is minted.
	Create(ctx context.Context, order domain.Order) (string, error)
	Get(ctx context.Context, id string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

type TransactionManager interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

type CustomerRepository interface {
	Insert(ctx context.Context, tx *sql.Tx, c domain.Customer) (uint, error)
}

type OrderRepository interface {
	Insert(ctx context.Context, tx *sql.Tx, order domain.Order, customerID uint) error
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

type OrderItemRepository interface {
	Insert(ctx context.Context, tx *sql.Tx, item domain.OrderItem) (uint, error)
	ListByOrder(ctx context.Context, orderID string) ([]domain.OrderItem, error)
}

// Notifier is the slice of the notification dispatcher the order API needs.
type Notifier interface {
	OrderBackup(order domain.Order)
}
