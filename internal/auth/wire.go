package auth

import (
	"database/sql"

	"go.uber.org/zap"

	"atelier/internal/auth/repository"
	"atelier/internal/config"
)

func NewModule(db *sql.DB, cfg config.AuthConfig, logger *zap.Logger) (*Service, *Controller) {
	repo := repository.NewMySQLStaffRepository(db)
	service := NewService(repo, cfg, logger)
	return service, NewController(service, logger)
}
