package checkout

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	apperrors "atelier/internal/errors"
)

// SessionHeader carries the anonymous draft session id on every checkout and
// draft request.
const SessionHeader = "X-Session-ID"

type Controller struct {
	orchestrator *Orchestrator
	logger       *zap.Logger
}

func NewController(orchestrator *Orchestrator, logger *zap.Logger) *Controller {
	return &Controller{
		orchestrator: orchestrator,
		logger:       logger,
	}
}

func (c *Controller) HandleGetState(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := c.sessionID(w, r)
	if !ok {
		return
	}

	state, err := c.orchestrator.State(r.Context(), sessionID)
	if err != nil {
		c.handleError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, StateResponse{State: state})
}

func (c *Controller) HandleSubmitCustomerInfo(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := c.sessionID(w, r)
	if !ok {
		return
	}

	var req CustomerInfoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	po, err := c.orchestrator.SubmitCustomerInfo(r.Context(), sessionID, req.Customer, req.PaymentMethod)
	if err != nil {
		c.handleError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, CustomerInfoResponse{
		OrderID: po.OrderID,
		State:   StateAwaitingPayment,
		Summary: po.Summary,
	})
}

func (c *Controller) HandleSubmitPayment(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := c.sessionID(w, r)
	if !ok {
		return
	}

	var req PaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	result, err := c.orchestrator.SubmitPayment(r.Context(), sessionID, req.SourceID)
	if err != nil {
		c.handleError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, PaymentResponse{
		Success:   true,
		State:     StateSucceeded,
		OrderID:   result.OrderID,
		PaymentID: result.PaymentID,
		Status:    result.Status,
		Summary:   result.Summary,
	})
}

func (c *Controller) sessionID(w http.ResponseWriter, r *http.Request) (string, bool) {
	sessionID := r.Header.Get(SessionHeader)
	if sessionID == "" {
		c.writeValidationError(w, "session id is required", apperrors.ValidationDetail{
			Field:   SessionHeader,
			Message: "the draft session header must be set",
		})
		return "", false
	}
	return sessionID, true
}

func (c *Controller) handleError(w http.ResponseWriter, err error) {
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
	if _, ok := apperrors.IsGatewayError(err); ok {
		c.writeJSON(w, http.StatusBadGateway, map[string]string{
			"error":   "PAYMENT_FAILED",
			"state":   StateFailed,
			"message": err.Error(),
		})
		return
	}

	c.logger.Error("checkout request failed", zap.Error(err))
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
