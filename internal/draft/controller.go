package draft

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"atelier/internal/domain"
	apperrors "atelier/internal/errors"
	"atelier/internal/pricing"
)

// SessionHeader carries the anonymous draft session id. GET /session mints
// one; the client sends it back on every draft and checkout call.
const SessionHeader = "X-Session-ID"

type Controller struct {
	store  Store
	policy pricing.Policy
	logger *zap.Logger
}

func NewController(store Store, policy pricing.Policy, logger *zap.Logger) *Controller {
	return &Controller{
		store:  store,
		policy: policy,
		logger: logger,
	}
}

func (c *Controller) accumulator(sessionID string) *Accumulator {
	return NewAccumulator(c.store, c.policy, sessionID)
}

// HandleNewSession issues a fresh session id. The only endpoint here that
// does not require the session header.
func (c *Controller) HandleNewSession(w http.ResponseWriter, r *http.Request) {
	c.writeJSON(w, http.StatusOK, SessionResponse{SessionID: uuid.NewString()})
}

func (c *Controller) HandleGetDraft(w http.ResponseWriter, r *http.Request) {
	acc, ok := c.sessionAccumulator(w, r)
	if !ok {
		return
	}

	d, err := acc.Restore(r.Context())
	if errors.Is(err, ErrNoDraft) {
		// A fresh session simply has an empty draft, not an error.
		d = &Draft{}
	} else if err != nil {
		c.handleError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, toDraftDTO(d, c.policy))
}

func (c *Controller) HandleClearDraft(w http.ResponseWriter, r *http.Request) {
	acc, ok := c.sessionAccumulator(w, r)
	if !ok {
		return
	}

	if err := acc.Clear(r.Context()); err != nil {
		c.handleError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (c *Controller) HandleAddPerson(w http.ResponseWriter, r *http.Request) {
	acc, ok := c.sessionAccumulator(w, r)
	if !ok {
		return
	}

	var req AddPersonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	person, err := acc.AddPerson(r.Context(), req.Name, domain.AgeGroup(req.AgeGroup), domain.Gender(req.Gender))
	if err != nil {
		c.handleError(w, err)
		return
	}
	c.writeJSON(w, http.StatusCreated, toPersonDTO(person))
}

func (c *Controller) HandleRemovePerson(w http.ResponseWriter, r *http.Request) {
	acc, ok := c.sessionAccumulator(w, r)
	if !ok {
		return
	}

	if err := acc.RemovePerson(r.Context(), chi.URLParam(r, "id")); err != nil {
		c.handleError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (c *Controller) HandleSetDesign(w http.ResponseWriter, r *http.Request) {
	acc, ok := c.sessionAccumulator(w, r)
	if !ok {
		return
	}

	var req DesignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	err := acc.SetDesignForPerson(r.Context(), chi.URLParam(r, "id"), DesignSelection{
		DesignID:   req.DesignID,
		DesignName: req.DesignName,
		Occasion:   req.Occasion,
		Price:      req.Price,
	})
	if err != nil {
		c.handleError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (c *Controller) HandleSetMeasurements(w http.ResponseWriter, r *http.Request) {
	acc, ok := c.sessionAccumulator(w, r)
	if !ok {
		return
	}

	var req MeasurementsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	err := acc.SetMeasurementsForPerson(r.Context(), chi.URLParam(r, "id"), domain.Sizing{
		Mode:         domain.SizingMode(req.Mode),
		Label:        req.Label,
		Measurements: req.Measurements,
	})
	if err != nil {
		c.handleError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (c *Controller) sessionAccumulator(w http.ResponseWriter, r *http.Request) (*Accumulator, bool) {
	sessionID := r.Header.Get(SessionHeader)
	if sessionID == "" {
		c.writeValidationError(w, "session id is required", apperrors.ValidationDetail{
			Field:   SessionHeader,
			Message: "the draft session header must be set",
		})
		return nil, false
	}
	return c.accumulator(sessionID), true
}

func (c *Controller) handleError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrNoDraft) {
		c.writeJSON(w, http.StatusNotFound, map[string]string{
			"error":   "NOT_FOUND",
			"message": "no draft in progress for this session",
		})
		return
	}
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

	c.logger.Error("draft request failed", zap.Error(err))
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
