// Package pricing holds the two checkout pricing policies. They belong to
// different product lines (made-to-order custom vs. ready-made shop) and are
// never combined on one order.
package pricing

import "math"

const (
	// TaxRate is applied on top of the subtotal in the tax flow.
	TaxRate = 0.08
	// DepositRate is the share charged up front in the deposit flow; the
	// balance is due at pickup.
	DepositRate = 0.50
)

// Summary is the derived money breakdown of a draft. It is recomputed from
// the items on every call and never mutated independently.
type Summary struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Deposit  float64 `json:"deposit"`
	Balance  float64 `json:"balance"`
	Total    float64 `json:"total"`
	// Due is the amount charged at checkout under the active policy.
	Due float64 `json:"due"`
}

type Policy interface {
	Name() string
	Summarize(subtotal float64) Summary
}

type TaxPolicy struct {
	Rate float64
}

func NewTaxPolicy() TaxPolicy {
	return TaxPolicy{Rate: TaxRate}
}

func (p TaxPolicy) Name() string { return "tax" }

func (p TaxPolicy) Summarize(subtotal float64) Summary {
	subtotal = Round2(subtotal)
	tax := Round2(subtotal * p.Rate)
	total := Round2(subtotal + tax)
	return Summary{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    total,
		Due:      total,
	}
}

type DepositPolicy struct {
	Rate float64
}

func NewDepositPolicy() DepositPolicy {
	return DepositPolicy{Rate: DepositRate}
}

func (p DepositPolicy) Name() string { return "deposit" }

func (p DepositPolicy) Summarize(subtotal float64) Summary {
	subtotal = Round2(subtotal)
	deposit := Round2(subtotal * p.Rate)
	return Summary{
		Subtotal: subtotal,
		Deposit:  deposit,
		Balance:  Round2(subtotal - deposit),
		Total:    subtotal,
		Due:      deposit,
	}
}

// ByName resolves a configured flow name to its policy. Unknown names fall
// back to the tax flow.
func ByName(name string) Policy {
	if name == "deposit" {
		return NewDepositPolicy()
	}
	return NewTaxPolicy()
}

// Round2 rounds half away from zero to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// MinorUnits converts a display amount to integer minor units (cents) for
// the payment gateway.
func MinorUnits(v float64) int64 {
	return int64(math.Round(v * 100))
}
