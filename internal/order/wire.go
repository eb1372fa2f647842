package order

import (
	"database/sql"

	"go.uber.org/zap"

	"atelier/internal/config"
	"atelier/internal/order/repository"
)

func NewModule(db *sql.DB, cfg config.CheckoutConfig, notifier Notifier, logger *zap.Logger) (Service, *Controller) {
	customers := repository.NewMySQLCustomerRepository(db)
	orders := repository.NewMySQLOrderRepository(db)
	items := repository.NewMySQLOrderItemRepository(db)

	svc := NewService(db, customers, orders, items, cfg.OrderPrefix, logger)
	return svc, NewController(svc, notifier, logger)
}
