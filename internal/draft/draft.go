package draft

import (
	"time"

	"atelier/internal/domain"
	"atelier/internal/pricing"
)

// Draft is the full in-progress order for one browser session.
type Draft struct {
	People   []domain.Person      `json:"people"`
	Items    []domain.DraftItem   `json:"items"`
	Customer *domain.CustomerInfo `json:"customer,omitempty"`
}

// ItemFor returns the draft item for a person, if any.
func (d *Draft) ItemFor(personID string) (*domain.DraftItem, bool) {
	for i := range d.Items {
		if d.Items[i].PersonID == personID {
			return &d.Items[i], true
		}
	}
	return nil, false
}

// PersonByID returns the person with the given id, if present.
func (d *Draft) PersonByID(id string) (*domain.Person, bool) {
	for i := range d.People {
		if d.People[i].ID == id {
			return &d.People[i], true
		}
	}
	return nil, false
}

// Complete reports whether checkout may proceed: at least one person, and
// every person has exactly one complete item (design chosen, sizing valid).
func (d *Draft) Complete() bool {
	if len(d.People) == 0 {
		return false
	}
	for _, p := range d.People {
		item, ok := d.ItemFor(p.ID)
		if !ok || !item.Complete() {
			return false
		}
	}
	return true
}

// Subtotal sums the item prices. Pure; drafts are small (bounded by the
// number of people) so nothing is cached.
func (d *Draft) Subtotal() float64 {
	var subtotal float64
	for _, item := range d.Items {
		subtotal += item.Price
	}
	return subtotal
}

// Summarize derives the money breakdown for the draft under the given
// policy. Calling it twice on an unchanged draft yields identical results.
func (d *Draft) Summarize(policy pricing.Policy) pricing.Summary {
	return policy.Summarize(d.Subtotal())
}

// PendingOrder is the fully assembled, not-yet-paid bundle held in the store
// during the payment step.
type PendingOrder struct {
	OrderID       string              `json:"orderId"`
	Customer      domain.CustomerInfo `json:"customer"`
	People        []domain.Person     `json:"people"`
	Items         []domain.DraftItem  `json:"items"`
	Summary       pricing.Summary     `json:"summary"`
	PaymentMethod string              `json:"paymentMethod"`
	CreatedAt     time.Time           `json:"createdAt"`
}
