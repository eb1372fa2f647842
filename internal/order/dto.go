package order

import (
	"time"

	"atelier/internal/domain"
)

type CreateOrderRequest struct {
	OrderID       string              `json:"orderId,omitempty"`
	Customer      domain.CustomerInfo `json:"customer"`
	Items         []OrderItemRequest  `json:"items"`
	PaymentMethod string              `json:"paymentMethod"`
	Subtotal      float64             `json:"subtotal"`
	Tax           float64             `json:"tax"`
	Deposit       float64             `json:"deposit"`
	Total         float64             `json:"total"`
}

type OrderItemRequest struct {
	PersonName   string             `json:"personName"`
	Gender       string             `json:"gender"`
	AgeGroup     string             `json:"ageGroup"`
	Occasion     string             `json:"occasion"`
	DesignID     string             `json:"designId"`
	DesignName   string             `json:"designName"`
	Price        float64            `json:"price"`
	SizingMode   string             `json:"sizingMode"`
	SizeLabel    string             `json:"sizeLabel,omitempty"`
	Measurements map[string]float64 `json:"measurements,omitempty"`
}

type CreateOrderResponse struct {
	OrderID string `json:"orderId"`
}

type OrderDTO struct {
	ID            string         `json:"id"`
	Customer      CustomerDTO    `json:"customer"`
	Items         []OrderItemDTO `json:"items"`
	PaymentMethod string         `json:"paymentMethod"`
	Subtotal      float64        `json:"subtotal"`
	Tax           float64        `json:"tax"`
	Deposit       float64        `json:"deposit"`
	Total         float64        `json:"total"`
	Status        string         `json:"status"`
	CreatedAt     time.Time      `json:"createdAt"`
}

type CustomerDTO struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`
	Notes     string `json:"notes,omitempty"`
}

type OrderItemDTO struct {
	PersonName   string             `json:"personName"`
	Gender       string             `json:"gender"`
	AgeGroup     string             `json:"ageGroup"`
	Occasion     string             `json:"occasion"`
	DesignID     string             `json:"designId"`
	DesignName   string             `json:"designName"`
	Price        float64            `json:"price"`
	SizingMode   string             `json:"sizingMode"`
	SizeLabel    string             `json:"sizeLabel,omitempty"`
	Measurements map[string]float64 `json:"measurements,omitempty"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func toOrderDTO(o *domain.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemDTO{
			PersonName:   item.PersonName,
			Gender:       string(item.Gender),
			AgeGroup:     string(item.AgeGroup),
			Occasion:     item.Occasion,
			DesignID:     item.DesignID,
			DesignName:   item.DesignName,
			Price:        item.Price,
			SizingMode:   string(item.SizingMode),
			SizeLabel:    item.SizeLabel,
			Measurements: item.Measurements,
		})
	}
	return OrderDTO{
		ID: o.ID,
		Customer: CustomerDTO{
			FirstName: o.Customer.FirstName,
			LastName:  o.Customer.LastName,
			Email:     o.Customer.Email,
			Phone:     o.Customer.Phone,
			Address:   o.Customer.Address,
			City:      o.Customer.City,
			State:     o.Customer.State,
			Zip:       o.Customer.Zip,
			Notes:     o.Customer.Notes,
		},
		Items:         items,
		PaymentMethod: o.PaymentMethod,
		Subtotal:      o.Subtotal,
		Tax:           o.Tax,
		Deposit:       o.Deposit,
		Total:         o.Total,
		Status:        o.Status,
		CreatedAt:     o.CreatedAt,
	}
}

// CustomerFromInfo converts validated checkout contact details into the
// persisted customer shape.
func CustomerFromInfo(info domain.CustomerInfo) domain.Customer {
	return domain.Customer{
		FirstName: info.FirstName,
		LastName:  info.LastName,
		Email:     info.Email,
		Phone:     info.Phone,
		Address:   info.Address,
		City:      info.City,
		State:     info.State,
		Zip:       info.Zip,
		Notes:     info.Notes,
	}
}

func itemFromRequest(req OrderItemRequest) domain.OrderItem {
	return domain.OrderItem{
		PersonName:   req.PersonName,
		Gender:       domain.Gender(req.Gender),
		AgeGroup:     domain.AgeGroup(req.AgeGroup),
		Occasion:     req.Occasion,
		DesignID:     req.DesignID,
		DesignName:   req.DesignName,
		Price:        req.Price,
		SizingMode:   domain.SizingMode(req.SizingMode),
		SizeLabel:    req.SizeLabel,
		Measurements: req.Measurements,
	}
}
