package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atelier/internal/domain"
	apperrors "atelier/internal/errors"
	"atelier/internal/testutil"
)

func TestOrderRepositories_RoundTrip(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)
	testutil.SetupTestTables(t, db)

	ctx := context.Background()
	customers := NewMySQLCustomerRepository(db)
	orders := NewMySQLOrderRepository(db)
	items := NewMySQLOrderItemRepository(db)

	order := domain.Order{
		ID: "FAF-1700000000000-AB12",
		Customer: domain.Customer{
			FirstName: "Ama",
			LastName:  "Mensah",
			Email:     "ama@example.com",
			Phone:     "0244123456",
			Address:   "12 Oxford St",
			City:      "Accra",
			State:     "GA",
			Zip:       "00233",
		},
		PaymentMethod: "square",
		Subtotal:      299.99,
		Tax:           24.00,
		Total:         323.99,
		Status:        domain.OrderStatusPending,
	}

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)

	customerID, err := customers.Insert(ctx, tx, order.Customer)
	require.NoError(t, err)
	require.NoError(t, orders.Insert(ctx, tx, order, customerID))

	_, err = items.Insert(ctx, tx, domain.OrderItem{
		OrderID:    order.ID,
		PersonName: "Kofi",
		Gender:     domain.GenderMen,
		AgeGroup:   domain.AgeGroupAdult,
		Occasion:   "wedding",
		DesignID:   "kaftan-01",
		DesignName: "Embroidered Kaftan",
		Price:      299.99,
		SizingMode: domain.SizingCustom,
		Measurements: map[string]float64{
			"chest": 102.5, "waist": 88, "hips": 100, "shoulder": 46,
			"sleeve": 64, "length": 110, "neck": 40, "inseam": 80, "height": 178,
		},
	})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	found, err := orders.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mensah", found.Customer.LastName)
	assert.Equal(t, 323.99, found.Total)
	assert.Equal(t, domain.OrderStatusPending, found.Status)

	list, err := items.ListByOrder(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, domain.SizingCustom, list[0].SizingMode)
	assert.Equal(t, 102.5, list[0].Measurements["chest"])

	require.NoError(t, orders.UpdateStatus(ctx, order.ID, domain.OrderStatusPreparing))
	found, err = orders.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPreparing, found.Status)
}

func TestOrderRepository_FindByIDMissing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)
	testutil.SetupTestTables(t, db)

	orders := NewMySQLOrderRepository(db)

	_, err := orders.FindByID(context.Background(), "FAF-0-XXXX")
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}
