package http

import (
	"net/http"

	"github.com/ayyanulhaq997-cmd/CorpVision/internal/domain"
)

type AdminHandler struct {
	admin AdminService
}

func NewAdminHandler(admin AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// GET /api/v1/admin/dashboard
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.admin.Dashboard())
}

// GET /api/v1/admin/listings
func (h *AdminHandler) Listings(w http.ResponseWriter, r *http.Request) {
	listings := h.admin.Listings()
	respondJSON(w, http.StatusOK, &ListingsResponse{Listings: listings, Count: len(listings)})
}

// GET /api/v1/admin/products
func (h *AdminHandler) Products(w http.ResponseWriter, r *http.Request) {
	products := h.admin.Products()
	respondJSON(w, http.StatusOK, &ProductsResponse{Products: products, Count: len(products)})
}

// POST /api/v1/admin/listings
func (h *AdminHandler) AppendListing(w http.ResponseWriter, r *http.Request) {
	var draft domain.ListingDraft
	if err := decodeJSON(r, &draft); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	listing, err := h.admin.AppendListing(r.Context(), draft)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, listing)
}

// POST /api/v1/admin/products
func (h *AdminHandler) AppendProduct(w http.ResponseWriter, r *http.Request) {
	var draft domain.ProductDraft
	if err := decodeJSON(r, &draft); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	product, err := h.admin.AppendProduct(r.Context(), draft)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, product)
}
