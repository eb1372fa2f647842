// Package payment talks to the card payment provider. The draft never sees
// card details; the client tokenizes them and hands the server a one-time
// source id.
package payment

import (
	"context"
	"fmt"
	"time"
)

// LineItem is one charged garment, passed along when creating the
// gateway-side order record.
type LineItem struct {
	Name        string
	AmountMinor int64
}

type OrderRequest struct {
	// ReferenceID is our own order number, recorded on the gateway order.
	ReferenceID string
	LineItems   []LineItem
	Currency    string
}

type ChargeRequest struct {
	SourceID       string
	AmountMinor    int64
	Currency       string
	IdempotencyKey string
	ReferenceID    string
	BuyerEmail     string
	Note           string
	// GatewayOrderID links the charge to the best-effort gateway order, when
	// that creation succeeded.
	GatewayOrderID string
}

type ChargeResult struct {
	PaymentID string
	Status    string
}

// Gateway is the payment provider surface the checkout orchestrator needs.
type Gateway interface {
	// CreateOrder registers the order in the provider's own order system.
	// Failures here are logged by the caller and never abort payment.
	CreateOrder(ctx context.Context, req OrderRequest) (string, error)
	// Charge debits the tokenized source for the exact minor-unit amount.
	Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error)
}

// IdempotencyKey derives the duplicate-submit guard for a charge. The same
// order and timestamp always produce the same key, so a retried identical
// request cannot double-charge.
func IdempotencyKey(orderID string, at time.Time) string {
	return fmt.Sprintf("%s-%d", orderID, at.Unix())
}
