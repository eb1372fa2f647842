package catalog

import (
	"database/sql"

	"go.uber.org/zap"

	"atelier/internal/catalog/repository"
)

func NewModule(db *sql.DB, logger *zap.Logger) *Controller {
	products := repository.NewMySQLProductRepository(db)
	categories := repository.NewMySQLCategoryRepository(db)
	svc := NewService(products, categories)
	return NewController(svc, logger)
}
