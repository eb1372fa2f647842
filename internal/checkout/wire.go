package checkout

import (
	"go.uber.org/zap"

	"atelier/internal/config"
	"atelier/internal/draft"
	"atelier/internal/order"
	"atelier/internal/payment"
	"atelier/internal/pricing"
)

func NewModule(
	store draft.Store,
	gateway payment.Gateway,
	orders order.Service,
	notifier Notifier,
	checkoutCfg config.CheckoutConfig,
	paymentCfg config.PaymentConfig,
	logger *zap.Logger,
) (*Orchestrator, *Controller) {
	policy := pricing.ByName(checkoutCfg.PricingFlow)
	orchestrator := NewOrchestrator(
		store,
		policy,
		gateway,
		orders,
		notifier,
		checkoutCfg.OrderPrefix,
		paymentCfg.Currency,
		logger,
	)
	return orchestrator, NewController(orchestrator, logger)
}
