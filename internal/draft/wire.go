package draft

import (
	"go.uber.org/zap"

	"atelier/internal/config"
	"atelier/internal/pricing"
)

func NewModule(store Store, cfg config.CheckoutConfig, logger *zap.Logger) *Controller {
	return NewController(store, pricing.ByName(cfg.PricingFlow), logger)
}
