package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaxPolicy_Summarize(t *testing.T) {
	s := NewTaxPolicy().Summarize(299.99)

	assert.Equal(t, 299.99, s.Subtotal)
	assert.Equal(t, 24.00, s.Tax)
	assert.Equal(t, 323.99, s.Total)
	assert.Equal(t, 323.99, s.Due)
	assert.Zero(t, s.Deposit)
}

func TestTaxPolicy_Idempotent(t *testing.T) {
	p := NewTaxPolicy()
	assert.Equal(t, p.Summarize(149.50), p.Summarize(149.50))
}

func TestDepositPolicy_Summarize(t *testing.T) {
	s := NewDepositPolicy().Summarize(299.99)

	assert.Equal(t, 299.99, s.Subtotal)
	assert.Equal(t, 150.00, s.Deposit)
	assert.Equal(t, 149.99, s.Balance)
	assert.Equal(t, 299.99, s.Total)
	assert.Equal(t, 150.00, s.Due)
	assert.Zero(t, s.Tax)
}

func TestByName(t *testing.T) {
	assert.Equal(t, "deposit", ByName("deposit").Name())
	assert.Equal(t, "tax", ByName("tax").Name())
	assert.Equal(t, "tax", ByName("").Name())
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 24.00, Round2(23.9992))
	assert.Equal(t, 0.1, Round2(0.1))
	assert.Equal(t, 150.00, Round2(149.999))
}

func TestMinorUnits(t *testing.T) {
	assert.Equal(t, int64(32399), MinorUnits(323.99))
	assert.Equal(t, int64(10), MinorUnits(0.1))
	assert.Equal(t, int64(0), MinorUnits(0))
}
