package checkout

import (
	"atelier/internal/domain"
	"atelier/internal/pricing"
)

type CustomerInfoRequest struct {
	Customer      domain.CustomerInfo `json:"customer"`
	PaymentMethod string              `json:"paymentMethod,omitempty"`
}

type CustomerInfoResponse struct {
	OrderID string          `json:"orderId"`
	State   string          `json:"state"`
	Summary pricing.Summary `json:"summary"`
}

type PaymentRequest struct {
	SourceID string `json:"sourceId"`
}

type PaymentResponse struct {
	Success   bool            `json:"success"`
	State     string          `json:"state"`
	OrderID   string          `json:"orderId"`
	PaymentID string          `json:"paymentId"`
	Status    string          `json:"status"`
	Summary   pricing.Summary `json:"summary"`
}

type StateResponse struct {
	State string `json:"state"`
}
