package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"atelier/internal/auth"
	"atelier/internal/catalog"
	"atelier/internal/checkout"
	"atelier/internal/draft"
	"atelier/internal/order"
)

// NewRouter mounts the full HTTP surface. Catalog writes and order management
// sit behind staff auth; the storefront draft and checkout flows are keyed by
// an anonymous session header instead.
func NewRouter(
	authSvc *auth.Service,
	authCtrl *auth.Controller,
	catalogCtrl *catalog.Controller,
	orderCtrl *order.Controller,
	draftCtrl *draft.Controller,
	checkoutCtrl *checkout.Controller,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(requestLogger(logger))
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", authCtrl.HandleLogin)

		r.Get("/products", catalogCtrl.HandleListProducts)
		r.Get("/categories", catalogCtrl.HandleListCategories)

		// Staff-only catalog and order management.
		r.Group(func(r chi.Router) {
			r.Use(authSvc.Middleware)

			r.Post("/products", catalogCtrl.HandleCreateProduct)
			r.Put("/products", catalogCtrl.HandleUpdateProduct)
			r.Delete("/products", catalogCtrl.HandleDeleteProduct)

			r.Post("/categories", catalogCtrl.HandleCreateCategory)
			r.Put("/categories", catalogCtrl.HandleUpdateCategory)
			r.Delete("/categories", catalogCtrl.HandleDeleteCategory)

			r.Put("/orders/{id}/status", orderCtrl.HandleUpdateStatus)
		})

		// Direct order intake for the ready-made shop flow, and the order
		// fetch the confirmation/tracking page reads right after payment.
		r.Post("/orders", orderCtrl.HandleCreateOrder)
		r.Get("/orders/{id}", orderCtrl.HandleGetOrder)

		r.Get("/draft/session", draftCtrl.HandleNewSession)
		r.Get("/draft", draftCtrl.HandleGetDraft)
		r.Delete("/draft", draftCtrl.HandleClearDraft)
		r.Post("/draft/people", draftCtrl.HandleAddPerson)
		r.Delete("/draft/people/{id}", draftCtrl.HandleRemovePerson)
		r.Put("/draft/people/{id}/design", draftCtrl.HandleSetDesign)
		r.Put("/draft/people/{id}/measurements", draftCtrl.HandleSetMeasurements)

		r.Get("/checkout/state", checkoutCtrl.HandleGetState)
		r.Post("/checkout/customer-info", checkoutCtrl.HandleSubmitCustomerInfo)
		r.Post("/square-payment", checkoutCtrl.HandleSubmitPayment)
	})

	return r
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}
