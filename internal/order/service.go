package order

import (
	"context"
	"time"

	"go.uber.org/zap"

	"atelier/internal/domain"
	apperrors "atelier/internal/errors"
)

const createTxTimeout = 5 * time.Second

type orderService struct {
	db           TransactionManager
	customers    CustomerRepository
	orders       OrderRepository
	items        OrderItemRepository
	numberPrefix string
	logger       *zap.Logger
}

func NewService(
	db TransactionManager,
	customers CustomerRepository,
	orders OrderRepository,
	items OrderItemRepository,
	numberPrefix string,
	logger *zap.Logger,
) Service {
	return &orderService{
		db:           db,
		customers:    customers,
		orders:       orders,
		items:        items,
		numberPrefix: numberPrefix,
		logger:       logger,
	}
}

func (s *orderService) Create(ctx context.Context, order domain.Order) (string, error) {
	if order.ID == "" {
		order.ID = NewNumber(s.numberPrefix)
	}
	if order.Status == "" {
		order.Status = domain.OrderStatusPending
	}
	if len(order.Items) == 0 {
		return "", apperrors.NewValidationError("order must contain at least one item", apperrors.ValidationDetail{
			Field:   "items",
			Message: "items must not be empty",
		})
	}

	txCtx, cancel := context.WithTimeout(ctx, createTxTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(txCtx, nil)
	if err != nil {
		s.logger.Error("failed to begin transaction", zap.Error(err))
		return "", err
	}
	// Rollback is a no-op once committed.
	defer tx.Rollback()

	customerID, err := s.customers.Insert(txCtx, tx, order.Customer)
	if err != nil {
		return "", err
	}

	if err := s.orders.Insert(txCtx, tx, order, customerID); err != nil {
		return "", err
	}

	for i := range order.Items {
		order.Items[i].OrderID = order.ID
		if _, err := s.items.Insert(txCtx, tx, order.Items[i]); err != nil {
			return "", err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("failed to commit order", zap.String("orderId", order.ID), zap.Error(err))
		return "", err
	}

	s.logger.Info("order created",
		zap.String("orderId", order.ID),
		zap.Int("itemCount", len(order.Items)),
		zap.Float64("total", order.Total),
	)
	return order.ID, nil
}

func (s *orderService) Get(ctx context.Context, id string) (*domain.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	items, err := s.items.ListByOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return order, nil
}

func (s *orderService) UpdateStatus(ctx context.Context, id, status string) error {
	if !domain.IsValidOrderStatus(status) {
		return apperrors.NewValidationError("invalid status", apperrors.ValidationDetail{
			Field:   "status",
			Message: "status must be one of pending, preparing, ready, completed, cancelled",
		})
	}

	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !order.CanTransitionTo(status) {
		return apperrors.NewConflictError("order " + id + " is " + order.Status + " and cannot change status")
	}

	return s.orders.UpdateStatus(ctx, id, status)
}
