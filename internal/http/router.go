// Package http exposes the storefront over a JSON API.
package http

import (
	"net/http"
	"time"

	"github.com/ayyanulhaq997-cmd/CorpVision/internal/catalog"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

type RouterConfig struct {
	Sessions           Sessions
	Catalog            catalog.Store
	Admin              AdminService
	Assist             DescriptionGenerator
	Logger             *zap.Logger
	RequestTimeout     time.Duration
	MaxRequestBodySize int64
}

// NewRouter wires every route and middleware and wraps the result in
// OpenTelemetry instrumentation.
func NewRouter(cfg RouterConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 30 * time.Second
	}
	if cfg.MaxRequestBodySize <= 0 {
		cfg.MaxRequestBodySize = 1 << 20
	}

	stateHandler := NewStateHandler()
	catalogHandler := NewCatalogHandler(cfg.Catalog)
	cartHandler := NewCartHandler(cfg.Catalog)
	checkoutHandler := NewCheckoutHandler(logger)
	listingHandler := NewListingHandler(cfg.Admin, cfg.Assist)
	adminHandler := NewAdminHandler(cfg.Admin)

	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(RequestIDMiddleware)
	r.Use(middleware.RealIP)
	r.Use(AccessLogMiddleware(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.RequestSize(cfg.MaxRequestBodySize))
	r.Use(middleware.Compress(5))

	health := func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
	r.Get("/health", health)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", health)

		// Catalog reads and admin mutations are shared by every session
		r.Get("/products", catalogHandler.Products)
		r.Route("/directory", func(r chi.Router) {
			r.Get("/listings", catalogHandler.Listings)
			r.Get("/listings/{listing_id}", catalogHandler.Listing)
			r.Get("/options", catalogHandler.Options)
		})
		r.Post("/listings", listingHandler.Submit)
		r.Post("/assist/description", listingHandler.Describe)
		r.Route("/admin", func(r chi.Router) {
			r.Get("/dashboard", adminHandler.Dashboard)
			r.Get("/listings", adminHandler.Listings)
			r.Get("/products", adminHandler.Products)
			r.Post("/listings", adminHandler.AppendListing)
			r.Post("/products", adminHandler.AppendProduct)
		})

		r.Group(func(r chi.Router) {
			r.Use(SessionMiddleware(cfg.Sessions))

			r.Get("/state", stateHandler.Get)
			r.Post("/navigate", stateHandler.Navigate)
			r.Route("/cart", func(r chi.Router) {
				r.Get("/", cartHandler.GetCart)
				r.Post("/items", cartHandler.AddItem)
				r.Patch("/items/{product_id}", cartHandler.UpdateQuantity)
				r.Delete("/items/{product_id}", cartHandler.RemoveItem)
				r.Post("/open", cartHandler.Open)
				r.Post("/close", cartHandler.Close)
			})
			r.Route("/checkout", func(r chi.Router) {
				r.Post("/", checkoutHandler.Enter)
				r.Get("/", checkoutHandler.Get)
				r.Post("/submit", checkoutHandler.Submit)
				r.Post("/return", checkoutHandler.Return)
			})
		})
	})

	return otelhttp.NewHandler(r, "storefront")
}
