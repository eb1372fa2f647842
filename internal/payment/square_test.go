package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atelier/internal/config"
	apperrors "atelier/internal/errors"
)

func newTestClient(serverURL string) *SquareClient {
	return NewSquareClient(config.PaymentConfig{
		BaseURL:     serverURL,
		AccessToken: "test-token",
		LocationID:  "LOC1",
		Currency:    "USD",
		Timeout:     5 * time.Second,
	})
}

func TestIdempotencyKey(t *testing.T) {
	at := time.Unix(1700000000, 0)

	same := IdempotencyKey("FAF-1-ABCD", at)
	assert.Equal(t, same, IdempotencyKey("FAF-1-ABCD", at),
		"same order and timestamp produce the same key")

	later := IdempotencyKey("FAF-1-ABCD", at.Add(time.Second))
	assert.NotEqual(t, same, later, "a later submission gets a new key")

	other := IdempotencyKey("FAF-2-WXYZ", at)
	assert.NotEqual(t, same, other, "different orders never share a key")
}

func TestCharge_Success(t *testing.T) {
	var got squarePaymentRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v2/payments", r.URL.Path)
		require.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"payment": map[string]string{"id": "PAY123", "status": "COMPLETED"},
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	result, err := client.Charge(context.Background(), ChargeRequest{
		SourceID:       "cnon:token",
		AmountMinor:    32399,
		Currency:       "USD",
		IdempotencyKey: "FAF-1-ABCD-1700000000",
		ReferenceID:    "FAF-1-ABCD",
		BuyerEmail:     "abel@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "PAY123", result.PaymentID)
	assert.Equal(t, "COMPLETED", result.Status)
	assert.Equal(t, int64(32399), got.AmountMoney.Amount)
	assert.Equal(t, "FAF-1-ABCD-1700000000", got.IdempotencyKey)
	assert.Equal(t, "LOC1", got.LocationID)
}

func TestCharge_Declined(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"errors": []map[string]string{
				{"category": "PAYMENT_METHOD_ERROR", "code": "CARD_DECLINED", "detail": "Card declined."},
			},
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Charge(context.Background(), ChargeRequest{SourceID: "cnon:bad", AmountMinor: 100, Currency: "USD"})

	ge, ok := apperrors.IsGatewayError(err)
	require.True(t, ok)
	assert.Contains(t, ge.Message, "Card declined")
}

func TestCharge_Unreachable(t *testing.T) {
	client := newTestClient("http://127.0.0.1:1")

	_, err := client.Charge(context.Background(), ChargeRequest{SourceID: "cnon:token", AmountMinor: 100, Currency: "USD"})
	_, ok := apperrors.IsGatewayError(err)
	assert.True(t, ok)
}

func TestCreateOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v2/orders", r.URL.Path)

		var req squareOrderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.NotEmpty(t, req.IdempotencyKey)
		assert.Equal(t, "LOC1", req.Order.LocationID)
		assert.Equal(t, "FAF-1-ABCD", req.Order.ReferenceID)
		require.Len(t, req.Order.LineItems, 1)
		assert.Equal(t, "1", req.Order.LineItems[0].Quantity)

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"order": map[string]string{"id": "SQORD1"},
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	id, err := client.CreateOrder(context.Background(), OrderRequest{
		ReferenceID: "FAF-1-ABCD",
		Currency:    "USD",
		LineItems:   []LineItem{{Name: "Classic - Abel", AmountMinor: 29999}},
	})

	require.NoError(t, err)
	assert.Equal(t, "SQORD1", id)
}
