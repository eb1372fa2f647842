package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"atelier/internal/config"
	apperrors "atelier/internal/errors"
)

// SquareClient implements Gateway against the Square REST API.
type SquareClient struct {
	baseURL     string
	accessToken string
	locationID  string
	httpClient  *http.Client
}

func NewSquareClient(cfg config.PaymentConfig) *SquareClient {
	return &SquareClient{
		baseURL:     cfg.BaseURL,
		accessToken: cfg.AccessToken,
		locationID:  cfg.LocationID,
		httpClient:  &http.Client{Timeout: cfg.Timeout},
	}
}

type money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type squareOrderRequest struct {
	IdempotencyKey string      `json:"idempotency_key"`
	Order          squareOrder `json:"order"`
}

type squareOrder struct {
	LocationID  string           `json:"location_id"`
	ReferenceID string           `json:"reference_id"`
	LineItems   []squareLineItem `json:"line_items"`
}

type squareLineItem struct {
	Name           string `json:"name"`
	Quantity       string `json:"quantity"`
	BasePriceMoney money  `json:"base_price_money"`
}

type squareOrderResponse struct {
	Order struct {
		ID string `json:"id"`
	} `json:"order"`
	Errors []squareError `json:"errors"`
}

type squarePaymentRequest struct {
	SourceID          string `json:"source_id"`
	IdempotencyKey    string `json:"idempotency_key"`
	AmountMoney       money  `json:"amount_money"`
	OrderID           string `json:"order_id,omitempty"`
	ReferenceID       string `json:"reference_id,omitempty"`
	BuyerEmailAddress string `json:"buyer_email_address,omitempty"`
	Note              string `json:"note,omitempty"`
	LocationID        string `json:"location_id,omitempty"`
}

type squarePaymentResponse struct {
	Payment struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	} `json:"payment"`
	Errors []squareError `json:"errors"`
}

type squareError struct {
	Category string `json:"category"`
	Code     string `json:"code"`
	Detail   string `json:"detail"`
}

func (c *SquareClient) CreateOrder(ctx context.Context, req OrderRequest) (string, error) {
	items := make([]squareLineItem, len(req.LineItems))
	for i, item := range req.LineItems {
		items[i] = squareLineItem{
			Name:     item.Name,
			Quantity: "1",
			BasePriceMoney: money{
				Amount:   item.AmountMinor,
				Currency: req.Currency,
			},
		}
	}

	body := squareOrderRequest{
		IdempotencyKey: uuid.NewString(),
		Order: squareOrder{
			LocationID:  c.locationID,
			ReferenceID: req.ReferenceID,
			LineItems:   items,
		},
	}

	var resp squareOrderResponse
	if err := c.post(ctx, "/v2/orders", body, &resp); err != nil {
		return "", err
	}
	return resp.Order.ID, nil
}

func (c *SquareClient) Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error) {
	body := squarePaymentRequest{
		SourceID:       req.SourceID,
		IdempotencyKey: req.IdempotencyKey,
		AmountMoney: money{
			Amount:   req.AmountMinor,
			Currency: req.Currency,
		},
		OrderID:           req.GatewayOrderID,
		ReferenceID:       req.ReferenceID,
		BuyerEmailAddress: req.BuyerEmail,
		Note:              req.Note,
		LocationID:        c.locationID,
	}

	var resp squarePaymentResponse
	if err := c.post(ctx, "/v2/payments", body, &resp); err != nil {
		return nil, err
	}

	return &ChargeResult{
		PaymentID: resp.Payment.ID,
		Status:    resp.Payment.Status,
	}, nil
}

func (c *SquareClient) post(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling square request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building square request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.accessToken)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return apperrors.NewGatewayError("payment gateway unreachable", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		var failure struct {
			Errors []squareError `json:"errors"`
		}
		_ = json.NewDecoder(httpResp.Body).Decode(&failure)
		detail := fmt.Sprintf("gateway returned status %d", httpResp.StatusCode)
		if len(failure.Errors) > 0 && failure.Errors[0].Detail != "" {
			detail = failure.Errors[0].Detail
		}
		return apperrors.NewGatewayError(detail, nil)
	}

	if err := json.NewDecoder(httpResp.Body).Decode(out); err != nil {
		return apperrors.NewGatewayError("decoding gateway response", err)
	}
	return nil
}
