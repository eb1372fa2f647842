package catalog

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"atelier/internal/catalog/repository"
	"atelier/internal/domain"
	apperrors "atelier/internal/errors"
)

type Controller struct {
	service Service
	logger  *zap.Logger
}

func NewController(service Service, logger *zap.Logger) *Controller {
	return &Controller{service: service, logger: logger}
}

func (c *Controller) HandleListProducts(w http.ResponseWriter, r *http.Request) {
	filter, err := parseProductFilter(r)
	if err != nil {
		ve, _ := apperrors.IsValidationError(err)
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	products, err := c.service.ListProducts(r.Context(), filter)
	if err != nil {
		c.handleServiceError(w, err)
		return
	}

	dtos := make([]ProductDTO, 0, len(products))
	for _, p := range products {
		dtos = append(dtos, toProductDTO(p))
	}
	c.writeJSON(w, http.StatusOK, dtos)
}

func (c *Controller) HandleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if err := validateProductRequest(req, false); err != nil {
		ve, _ := apperrors.IsValidationError(err)
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	id, err := c.service.CreateProduct(r.Context(), productFromRequest(req))
	if err != nil {
		c.handleServiceError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, map[string]int{"id": id})
}

func (c *Controller) HandleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if err := validateProductRequest(req, true); err != nil {
		ve, _ := apperrors.IsValidationError(err)
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	if err := c.service.UpdateProduct(r.Context(), productFromRequest(req)); err != nil {
		c.handleServiceError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (c *Controller) HandleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := idFromQuery(r)
	if err != nil {
		ve, _ := apperrors.IsValidationError(err)
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	if err := c.service.DeleteProduct(r.Context(), id); err != nil {
		c.handleServiceError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (c *Controller) HandleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := c.service.ListCategories(r.Context())
	if err != nil {
		c.handleServiceError(w, err)
		return
	}

	dtos := make([]CategoryDTO, 0, len(categories))
	for _, cat := range categories {
		dtos = append(dtos, toCategoryDTO(cat))
	}
	c.writeJSON(w, http.StatusOK, dtos)
}

func (c *Controller) HandleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if req.Name == "" {
		c.writeValidationError(w, "name is required", apperrors.ValidationDetail{
			Field:   "name",
			Message: "name is required",
		})
		return
	}

	id, err := c.service.CreateCategory(r.Context(), domain.Category{Name: req.Name, Description: req.Description})
	if err != nil {
		c.handleServiceError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, map[string]int{"id": id})
}

func (c *Controller) HandleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if req.ID <= 0 || req.Name == "" {
		c.writeValidationError(w, "id and name are required", apperrors.ValidationDetail{
			Field:   "id",
			Message: "id and name are required",
		})
		return
	}

	err := c.service.UpdateCategory(r.Context(), domain.Category{ID: req.ID, Name: req.Name, Description: req.Description})
	if err != nil {
		c.handleServiceError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (c *Controller) HandleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := idFromQuery(r)
	if err != nil {
		ve, _ := apperrors.IsValidationError(err)
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	if err := c.service.DeleteCategory(r.Context(), id); err != nil {
		c.handleServiceError(w, err)
		return
	}
	c.writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func parseProductFilter(r *http.Request) (repository.ProductFilter, error) {
	var filter repository.ProductFilter
	q := r.URL.Query()

	if raw := q.Get("category"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			return filter, apperrors.NewValidationError("invalid category filter", apperrors.ValidationDetail{
				Field:   "category",
				Message: "category must be a positive integer",
			})
		}
		filter.CategoryID = &id
	}
	if raw := q.Get("gender"); raw != "" {
		gender := domain.Gender(raw)
		if gender != domain.GenderMen && gender != domain.GenderWomen {
			return filter, apperrors.NewValidationError("invalid gender filter", apperrors.ValidationDetail{
				Field:   "gender",
				Message: "gender must be men or women",
			})
		}
		filter.Gender = &gender
	}
	if raw := q.Get("featured"); raw != "" {
		featured, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, apperrors.NewValidationError("invalid featured filter", apperrors.ValidationDetail{
				Field:   "featured",
				Message: "featured must be true or false",
			})
		}
		filter.Featured = &featured
	}
	return filter, nil
}

func validateProductRequest(req ProductRequest, requireID bool) error {
	var details []apperrors.ValidationDetail

	if requireID && req.ID <= 0 {
		details = append(details, apperrors.ValidationDetail{Field: "id", Message: "id must be a positive integer"})
	}
	if req.Name == "" {
		details = append(details, apperrors.ValidationDetail{Field: "name", Message: "name is required"})
	}
	if req.Price <= 0 {
		details = append(details, apperrors.ValidationDetail{Field: "price", Message: "price must be greater than 0"})
	}
	if req.CategoryID <= 0 {
		details = append(details, apperrors.ValidationDetail{Field: "categoryId", Message: "categoryId is required"})
	}
	if req.Gender != string(domain.GenderMen) && req.Gender != string(domain.GenderWomen) {
		details = append(details, apperrors.ValidationDetail{Field: "gender", Message: "gender must be men or women"})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}
	return nil
}

func productFromRequest(req ProductRequest) domain.Product {
	return domain.Product{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Images:      req.Images,
		CategoryID:  req.CategoryID,
		Gender:      domain.Gender(req.Gender),
		Sizes:       req.Sizes,
		Materials:   req.Materials,
		InStock:     req.InStock,
		Featured:    req.Featured,
	}
}

func idFromQuery(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("id")
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid id", apperrors.ValidationDetail{
			Field:   "id",
			Message: "id must be a positive integer",
		})
	}
	return id, nil
}

func (c *Controller) handleServiceError(w http.ResponseWriter, err error) {
	if _, ok := apperrors.IsNotFoundError(err); ok {
		c.writeJSON(w, http.StatusNotFound, map[string]string{
			"error":   "NOT_FOUND",
			"message": err.Error(),
		})
		return
	}
	// Category-in-use surfaces as a 400 with a descriptive message.
	if _, ok := apperrors.IsConflictError(err); ok {
		c.writeJSON(w, http.StatusBadRequest, map[string]string{
			"error":   "CONFLICT",
			"message": err.Error(),
		})
		return
	}

	traceID := uuid.New().String()
	c.logger.Error("catalog request failed", zap.String("traceId", traceID), zap.Error(err))
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
