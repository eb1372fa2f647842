package order

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"atelier/internal/domain"
	apperrors "atelier/internal/errors"
)

var validate = validator.New()

type Controller struct {
	service  Service
	notifier Notifier
	logger   *zap.Logger
}

func NewController(service Service, notifier Notifier, logger *zap.Logger) *Controller {
	return &Controller{
		service:  service,
		notifier: notifier,
		logger:   logger,
	}
}

func (c *Controller) HandleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if err := validateCreateOrderRequest(req); err != nil {
		ve, _ := apperrors.IsValidationError(err)
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	items := make([]domain.OrderItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = itemFromRequest(item)
	}

	order := domain.Order{
		ID:            req.OrderID,
		Customer:      CustomerFromInfo(req.Customer),
		Items:         items,
		PaymentMethod: req.PaymentMethod,
		Subtotal:      req.Subtotal,
		Tax:           req.Tax,
		Deposit:       req.Deposit,
		Total:         req.Total,
	}

	orderID, err := c.service.Create(r.Context(), order)
	if err != nil {
		c.handleServiceError(w, err)
		return
	}

	order.ID = orderID
	order.Status = domain.OrderStatusPending
	c.notifier.OrderBackup(order)

	c.writeJSON(w, http.StatusOK, CreateOrderResponse{OrderID: orderID})
}

func (c *Controller) HandleGetOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		c.writeValidationError(w, "order id is required", apperrors.ValidationDetail{
			Field:   "id",
			Message: "order id is required",
		})
		return
	}

	order, err := c.service.Get(r.Context(), id)
	if err != nil {
		c.handleServiceError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, toOrderDTO(order))
}

func (c *Controller) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if err := c.service.UpdateStatus(r.Context(), id, req.Status); err != nil {
		c.handleServiceError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func validateCreateOrderRequest(req CreateOrderRequest) error {
	var details []apperrors.ValidationDetail

	if err := validate.Struct(req.Customer); err != nil {
		var fieldErrors validator.ValidationErrors
		if errors.As(err, &fieldErrors) {
			for _, fe := range fieldErrors {
				details = append(details, apperrors.ValidationDetail{
					Field:   fe.Field(),
					Message: "customer " + fe.Field() + " is missing or invalid",
				})
			}
		} else {
			details = append(details, apperrors.ValidationDetail{
				Field:   "customer",
				Message: "customer is invalid",
			})
		}
	}

	if len(req.Items) == 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "items",
			Message: "items must not be empty",
		})
	}
	for i, item := range req.Items {
		if item.DesignID == "" || item.Price <= 0 {
			details = append(details, apperrors.ValidationDetail{
				Field:   "items",
				Message: "item " + strconv.Itoa(i) + " needs a design and a positive price",
			})
		}
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}
	return nil
}

func (c *Controller) handleServiceError(w http.ResponseWriter, err error) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}
	if _, ok := apperrors.IsNotFoundError(err); ok {
		c.writeJSON(w, http.StatusNotFound, map[string]string{
			"error":   "NOT_FOUND",
			"message": err.Error(),
		})
		return
	}
	if _, ok := apperrors.IsConflictError(err); ok {
		c.writeJSON(w, http.StatusBadRequest, map[string]string{
			"error":   "CONFLICT",
			"message": err.Error(),
		})
		return
	}

	c.logger.Error("order request failed", zap.Error(err))
	c.writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error":   "INTERNAL_ERROR",
		"message": "an unexpected error occurred",
	})
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *Controller) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
