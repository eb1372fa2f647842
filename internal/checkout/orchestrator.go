// Package checkout drives a draft from "all garments configured" through
// contact capture, card charge, and durable order creation.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"atelier/internal/domain"
	"atelier/internal/draft"
	apperrors "atelier/internal/errors"
	"atelier/internal/order"
	"atelier/internal/payment"
	"atelier/internal/pricing"
)

// Checkout states, in the order a session moves through them. The first
// three are derived from what the store holds; Succeeded and Failed are
// reported on the payment response, and Failed leaves the session in
// AwaitingPayment so the user can retry.
const (
	StateCollecting      = "collecting"
	StatePending         = "pending"
	StateAwaitingPayment = "awaiting_payment"
	StateSucceeded       = "succeeded"
	StateFailed          = "failed"
)

const defaultPaymentMethod = "square"

// Notifier is the slice of the notification dispatcher checkout needs.
type Notifier interface {
	OrderPlaced(order domain.Order)
}

// Result is what a successful payment submission hands back to the client.
type Result struct {
	OrderID   string
	PaymentID string
	Status    string
	Summary   pricing.Summary
}

type Orchestrator struct {
	store    draft.Store
	policy   pricing.Policy
	gateway  payment.Gateway
	orders   order.Service
	notifier Notifier
	prefix   string
	currency string
	logger   *zap.Logger

	// now is swappable for deterministic idempotency keys in tests.
	now func() time.Time
}

func NewOrchestrator(
	store draft.Store,
	policy pricing.Policy,
	gateway payment.Gateway,
	orders order.Service,
	notifier Notifier,
	prefix string,
	currency string,
	logger *zap.Logger,
) *Orchestrator {
	return &Orchestrator{
		store:    store,
		policy:   policy,
		gateway:  gateway,
		orders:   orders,
		notifier: notifier,
		prefix:   prefix,
		currency: currency,
		logger:   logger,
		now:      time.Now,
	}
}

func (o *Orchestrator) accumulator(sessionID string) *draft.Accumulator {
	return draft.NewAccumulator(o.store, o.policy, sessionID)
}

// State derives where the session currently sits from what the store holds.
func (o *Orchestrator) State(ctx context.Context, sessionID string) (string, error) {
	acc := o.accumulator(sessionID)

	if _, err := acc.PendingOrder(ctx); err == nil {
		return StateAwaitingPayment, nil
	} else if !errors.Is(err, draft.ErrNoDraft) {
		return "", err
	}

	d, err := acc.Restore(ctx)
	if errors.Is(err, draft.ErrNoDraft) {
		return StateCollecting, nil
	}
	if err != nil {
		return "", err
	}
	if !d.Complete() {
		return StateCollecting, nil
	}
	return StatePending, nil
}

// SubmitCustomerInfo validates the contact details, freezes the draft into a
// pending order with a freshly minted order number, and moves the session to
// the payment step. The draft must be complete; nothing is charged yet.
func (o *Orchestrator) SubmitCustomerInfo(ctx context.Context, sessionID string, info domain.CustomerInfo, paymentMethod string) (*draft.PendingOrder, error) {
	if err := validateCustomerInfo(info); err != nil {
		return nil, err
	}

	acc := o.accumulator(sessionID)
	d, err := acc.Restore(ctx)
	if errors.Is(err, draft.ErrNoDraft) {
		return nil, apperrors.NewNotFoundError("no draft in progress for this session")
	}
	if err != nil {
		return nil, err
	}
	if !d.Complete() {
		return nil, apperrors.NewConflictError("draft is incomplete: every person needs a design and sizing before checkout")
	}

	if err := acc.SetCustomerInfo(ctx, info); err != nil {
		return nil, err
	}

	if paymentMethod == "" {
		paymentMethod = defaultPaymentMethod
	}

	po := draft.PendingOrder{
		OrderID:       order.NewNumber(o.prefix),
		Customer:      info,
		People:        d.People,
		Items:         d.Items,
		Summary:       d.Summarize(o.policy),
		PaymentMethod: paymentMethod,
		CreatedAt:     o.now(),
	}
	if err := acc.SetPendingOrder(ctx, po); err != nil {
		return nil, err
	}

	o.logger.Info("checkout pending order assembled",
		zap.String("orderId", po.OrderID),
		zap.Int("people", len(po.People)),
		zap.Float64("due", po.Summary.Due),
	)
	return &po, nil
}

// SubmitPayment charges the tokenized card source for the pending order's due
// amount and, on success, persists the order and clears the draft. A gateway
// failure leaves the pending order in place so the client can retry; the
// idempotency key guards a double submit of the same attempt.
func (o *Orchestrator) SubmitPayment(ctx context.Context, sessionID, sourceID string) (*Result, error) {
	if sourceID == "" {
		return nil, apperrors.NewValidationError("payment source is required", apperrors.ValidationDetail{
			Field:   "sourceId",
			Message: "a tokenized card source id is required",
		})
	}

	acc := o.accumulator(sessionID)
	po, err := acc.PendingOrder(ctx)
	if errors.Is(err, draft.ErrNoDraft) {
		return nil, apperrors.NewNotFoundError("no pending order for this session; submit customer info first")
	}
	if err != nil {
		return nil, err
	}

	// Registering the order on the gateway side is best effort: a failure is
	// logged and the charge proceeds without the link.
	gatewayOrderID, err := o.gateway.CreateOrder(ctx, payment.OrderRequest{
		ReferenceID: po.OrderID,
		LineItems:   lineItemsFor(po),
		Currency:    o.currency,
	})
	if err != nil {
		o.logger.Warn("gateway order creation failed, charging without it",
			zap.String("orderId", po.OrderID),
			zap.Error(err),
		)
		gatewayOrderID = ""
	}

	charge, err := o.gateway.Charge(ctx, payment.ChargeRequest{
		SourceID:       sourceID,
		AmountMinor:    pricing.MinorUnits(po.Summary.Due),
		Currency:       o.currency,
		IdempotencyKey: payment.IdempotencyKey(po.OrderID, o.now()),
		ReferenceID:    po.OrderID,
		BuyerEmail:     po.Customer.Email,
		Note:           fmt.Sprintf("Custom order %s", po.OrderID),
		GatewayOrderID: gatewayOrderID,
	})
	if err != nil {
		o.logger.Error("payment failed",
			zap.String("orderId", po.OrderID),
			zap.Error(err),
		)
		return nil, err
	}

	ord := orderFromPending(po)
	if _, err := o.orders.Create(ctx, ord); err != nil {
		// The charge went through; keep the pending order so the session can
		// be reconciled instead of silently dropping a paid order.
		o.logger.Error("order creation failed after successful charge",
			zap.String("orderId", po.OrderID),
			zap.String("paymentId", charge.PaymentID),
			zap.Error(err),
		)
		return nil, apperrors.NewInternalError("payment captured but order could not be saved", err)
	}

	if err := acc.Clear(ctx); err != nil {
		o.logger.Warn("failed to clear draft after checkout",
			zap.String("sessionId", sessionID),
			zap.Error(err),
		)
	}

	o.notifier.OrderPlaced(ord)

	o.logger.Info("checkout succeeded",
		zap.String("orderId", po.OrderID),
		zap.String("paymentId", charge.PaymentID),
		zap.Float64("charged", po.Summary.Due),
	)
	return &Result{
		OrderID:   po.OrderID,
		PaymentID: charge.PaymentID,
		Status:    charge.Status,
		Summary:   po.Summary,
	}, nil
}

func lineItemsFor(po *draft.PendingOrder) []payment.LineItem {
	items := make([]payment.LineItem, 0, len(po.Items))
	for _, item := range po.Items {
		name := item.DesignName
		if person, ok := personByID(po.People, item.PersonID); ok {
			name = fmt.Sprintf("%s (%s)", item.DesignName, person.Name)
		}
		items = append(items, payment.LineItem{
			Name:        name,
			AmountMinor: pricing.MinorUnits(item.Price),
		})
	}
	return items
}

func orderFromPending(po *draft.PendingOrder) domain.Order {
	items := make([]domain.OrderItem, 0, len(po.Items))
	for _, item := range po.Items {
		oi := domain.OrderItem{
			OrderID:    po.OrderID,
			Occasion:   item.Occasion,
			DesignID:   item.DesignID,
			DesignName: item.DesignName,
			Price:      item.Price,
		}
		if person, ok := personByID(po.People, item.PersonID); ok {
			oi.PersonName = person.Name
			oi.Gender = person.Gender
			oi.AgeGroup = person.AgeGroup
		}
		if item.Sizing != nil {
			oi.SizingMode = item.Sizing.Mode
			oi.SizeLabel = item.Sizing.Label
			oi.Measurements = item.Sizing.Measurements
		}
		items = append(items, oi)
	}

	return domain.Order{
		ID:            po.OrderID,
		Customer:      order.CustomerFromInfo(po.Customer),
		Items:         items,
		PaymentMethod: po.PaymentMethod,
		Subtotal:      po.Summary.Subtotal,
		Tax:           po.Summary.Tax,
		Deposit:       po.Summary.Deposit,
		Total:         po.Summary.Total,
		Status:        domain.OrderStatusPending,
	}
}

func personByID(people []domain.Person, id string) (domain.Person, bool) {
	for _, p := range people {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Person{}, false
}
