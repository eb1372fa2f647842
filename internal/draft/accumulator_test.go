package draft

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atelier/internal/domain"
	apperrors "atelier/internal/errors"
	"atelier/internal/pricing"
)

func newTestAccumulator(t *testing.T) (*Accumulator, *MemoryStore) {
	t.Helper()
	store := NewMemoryStore()
	return NewAccumulator(store, pricing.NewTaxPolicy(), "session-1"), store
}

func addAdult(t *testing.T, acc *Accumulator, name string) domain.Person {
	t.Helper()
	person, err := acc.AddPerson(context.Background(), name, domain.AgeGroupAdult, domain.GenderMen)
	require.NoError(t, err)
	return person
}

func menMeasurements() map[string]float64 {
	return map[string]float64{
		"chest": 102, "waist": 86, "hips": 100, "shoulder": 46,
		"sleeve": 64, "length": 74, "neck": 40, "inseam": 81, "height": 180,
	}
}

func TestRestore_NoDraft(t *testing.T) {
	acc, _ := newTestAccumulator(t)

	_, err := acc.Restore(context.Background())
	assert.ErrorIs(t, err, ErrNoDraft)
}

func TestAddPerson_GeneratesUniqueIDs(t *testing.T) {
	acc, _ := newTestAccumulator(t)

	abel := addAdult(t, acc, "Abel")
	ben := addAdult(t, acc, "Ben")

	assert.NotEmpty(t, abel.ID)
	assert.NotEqual(t, abel.ID, ben.ID)

	d, err := acc.Restore(context.Background())
	require.NoError(t, err)
	assert.Len(t, d.People, 2)
}

func TestAddPerson_Invalid(t *testing.T) {
	acc, _ := newTestAccumulator(t)

	_, err := acc.AddPerson(context.Background(), "", "teen", "other")
	ve, ok := apperrors.IsValidationError(err)
	require.True(t, ok)
	assert.Len(t, ve.Details, 3)
}

func TestRemovePerson_DropsItemToo(t *testing.T) {
	acc, _ := newTestAccumulator(t)
	ctx := context.Background()

	abel := addAdult(t, acc, "Abel")
	ben := addAdult(t, acc, "Ben")

	require.NoError(t, acc.SetDesignForPerson(ctx, abel.ID, DesignSelection{DesignID: "mt1", Price: 299.99}))
	require.NoError(t, acc.RemovePerson(ctx, abel.ID))

	d, err := acc.Restore(ctx)
	require.NoError(t, err)
	require.Len(t, d.People, 1)
	assert.Equal(t, ben.ID, d.People[0].ID)
	assert.Empty(t, d.Items)
}

func TestSetDesignForPerson_UnknownIsNoOp(t *testing.T) {
	acc, _ := newTestAccumulator(t)
	ctx := context.Background()

	addAdult(t, acc, "Abel")
	require.NoError(t, acc.SetDesignForPerson(ctx, "nobody", DesignSelection{DesignID: "mt1"}))

	d, err := acc.Restore(ctx)
	require.NoError(t, err)
	assert.Empty(t, d.Items)
}

func TestSetMeasurements_Standard(t *testing.T) {
	acc, _ := newTestAccumulator(t)
	ctx := context.Background()

	abel := addAdult(t, acc, "Abel")
	require.NoError(t, acc.SetDesignForPerson(ctx, abel.ID, DesignSelection{DesignID: "mt1", Price: 299.99}))

	err := acc.SetMeasurementsForPerson(ctx, abel.ID, domain.Sizing{Mode: domain.SizingStandard})
	assert.Error(t, err, "label required")

	err = acc.SetMeasurementsForPerson(ctx, abel.ID, domain.Sizing{Mode: domain.SizingStandard, Label: "L"})
	require.NoError(t, err)

	d, err := acc.Restore(ctx)
	require.NoError(t, err)
	assert.True(t, d.Complete())
}

func TestSetMeasurements_CustomRejectsBadValues(t *testing.T) {
	acc, _ := newTestAccumulator(t)
	ctx := context.Background()

	abel := addAdult(t, acc, "Abel")
	require.NoError(t, acc.SetDesignForPerson(ctx, abel.ID, DesignSelection{DesignID: "mt1", Price: 299.99}))

	bad := menMeasurements()
	bad["waist"] = 0
	err := acc.SetMeasurementsForPerson(ctx, abel.ID, domain.Sizing{Mode: domain.SizingCustom, Measurements: bad})
	_, ok := apperrors.IsValidationError(err)
	assert.True(t, ok)

	// Rejected mutation leaves the draft untouched.
	d, err := acc.Restore(ctx)
	require.NoError(t, err)
	item, found := d.ItemFor(abel.ID)
	require.True(t, found)
	assert.Nil(t, item.Sizing)

	ok2 := menMeasurements()
	ok2["waist"] = 0.1
	require.NoError(t, acc.SetMeasurementsForPerson(ctx, abel.ID, domain.Sizing{Mode: domain.SizingCustom, Measurements: ok2}))
}

func TestSetMeasurements_UnknownPerson(t *testing.T) {
	acc, _ := newTestAccumulator(t)
	addAdult(t, acc, "Abel")

	err := acc.SetMeasurementsForPerson(context.Background(), "nobody", domain.Sizing{Mode: domain.SizingStandard, Label: "M"})
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestComplete_BlocksPartialDrafts(t *testing.T) {
	acc, _ := newTestAccumulator(t)
	ctx := context.Background()

	abel := addAdult(t, acc, "Abel")
	ben := addAdult(t, acc, "Ben")

	require.NoError(t, acc.SetDesignForPerson(ctx, abel.ID, DesignSelection{DesignID: "mt1", Price: 299.99}))
	require.NoError(t, acc.SetDesignForPerson(ctx, ben.ID, DesignSelection{DesignID: "mt2", Price: 199.99}))
	require.NoError(t, acc.SetMeasurementsForPerson(ctx, abel.ID, domain.Sizing{Mode: domain.SizingStandard, Label: "L"}))

	d, err := acc.Restore(ctx)
	require.NoError(t, err)
	assert.False(t, d.Complete(), "Ben has no measurements yet")

	require.NoError(t, acc.SetMeasurementsForPerson(ctx, ben.ID, domain.Sizing{Mode: domain.SizingStandard, Label: "M"}))
	d, err = acc.Restore(ctx)
	require.NoError(t, err)
	assert.True(t, d.Complete())
}

func TestSummary_TaxFlow(t *testing.T) {
	acc, _ := newTestAccumulator(t)
	ctx := context.Background()

	abel := addAdult(t, acc, "Abel")
	require.NoError(t, acc.SetDesignForPerson(ctx, abel.ID, DesignSelection{DesignID: "mt1", Occasion: "wedding", Price: 299.99}))

	summary, err := acc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 299.99, summary.Subtotal)
	assert.Equal(t, 24.00, summary.Tax)
	assert.Equal(t, 323.99, summary.Total)

	again, err := acc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, summary, again)
}

func TestRoundTrip_DeepEqual(t *testing.T) {
	store := NewMemoryStore()
	acc := NewAccumulator(store, pricing.NewTaxPolicy(), "session-1")
	ctx := context.Background()

	abel := addAdult(t, acc, "Abel")
	require.NoError(t, acc.SetDesignForPerson(ctx, abel.ID, DesignSelection{DesignID: "mt1", DesignName: "Classic", Occasion: "wedding", Price: 299.99}))
	require.NoError(t, acc.SetMeasurementsForPerson(ctx, abel.ID, domain.Sizing{Mode: domain.SizingCustom, Measurements: menMeasurements()}))

	first, err := acc.Restore(ctx)
	require.NoError(t, err)

	// A second accumulator over the same store sees a structurally identical
	// draft.
	second, err := NewAccumulator(store, pricing.NewTaxPolicy(), "session-1").Restore(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestClear_RemovesEveryKey(t *testing.T) {
	acc, store := newTestAccumulator(t)
	ctx := context.Background()

	abel := addAdult(t, acc, "Abel")
	require.NoError(t, acc.SetDesignForPerson(ctx, abel.ID, DesignSelection{DesignID: "mt1", Price: 299.99}))
	require.NoError(t, acc.SetCustomerInfo(ctx, domain.CustomerInfo{FirstName: "Abel", LastName: "A", Email: "abel@example.com", Phone: "5551234567", Address: "1 Main St", City: "Springfield", State: "IL", Zip: "62701"}))
	require.NoError(t, acc.SetPendingOrder(ctx, PendingOrder{OrderID: "FAF-1-ABCD"}))

	require.NoError(t, acc.Clear(ctx))

	for _, key := range AllKeys() {
		_, err := store.Get(ctx, "session-1", key)
		assert.ErrorIs(t, err, ErrKeyNotFound, key)
	}
	_, err := acc.Restore(ctx)
	assert.ErrorIs(t, err, ErrNoDraft)
}

func TestSessionsAreIsolated(t *testing.T) {
	store := NewMemoryStore()
	a := NewAccumulator(store, pricing.NewTaxPolicy(), "tab-a")
	b := NewAccumulator(store, pricing.NewTaxPolicy(), "tab-b")

	_, err := a.AddPerson(context.Background(), "Abel", domain.AgeGroupAdult, domain.GenderMen)
	require.NoError(t, err)

	_, err = b.Restore(context.Background())
	assert.ErrorIs(t, err, ErrNoDraft)
}
