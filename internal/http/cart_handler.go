package http

import (
	"net/http"

	"github.com/ayyanulhaq997-cmd/CorpVision/internal/catalog"
	"github.com/go-chi/chi/v5"
)

type CartHandler struct {
	store catalog.Store
}

func NewCartHandler(store catalog.Store) *CartHandler {
	return &CartHandler{store: store}
}

type AddItemRequestDTO struct {
	ProductID string `json:"product_id"`
}

type UpdateQuantityRequestDTO struct {
	Delta int `json:"delta"`
}

// GET /api/v1/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, newViewResponse(getState(r.Context()).View()))
}

// POST /api/v1/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequestDTO
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ProductID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id is required")
		return
	}

	product, err := h.store.Product(req.ProductID)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	view := getState(r.Context()).AddToCart(product)
	respondJSON(w, http.StatusCreated, newViewResponse(view))
}

// PATCH /api/v1/cart/items/{product_id}
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")

	var req UpdateQuantityRequestDTO
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	view := getState(r.Context()).UpdateQuantity(productID, req.Delta)
	respondJSON(w, http.StatusOK, newViewResponse(view))
}

// DELETE /api/v1/cart/items/{product_id}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	view := getState(r.Context()).RemoveItem(chi.URLParam(r, "product_id"))
	respondJSON(w, http.StatusOK, newViewResponse(view))
}

// POST /api/v1/cart/open
func (h *CartHandler) Open(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, newViewResponse(getState(r.Context()).OpenCart()))
}

// POST /api/v1/cart/close
func (h *CartHandler) Close(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, newViewResponse(getState(r.Context()).CloseCart()))
}
