package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ayyanulhaq997-cmd/CorpVision/internal/catalog"
	"github.com/ayyanulhaq997-cmd/CorpVision/internal/directory"
	"github.com/ayyanulhaq997-cmd/CorpVision/internal/domain"
)

type CatalogHandler struct {
	store catalog.Store
}

func NewCatalogHandler(store catalog.Store) *CatalogHandler {
	return &CatalogHandler{store: store}
}

type ProductsResponse struct {
	Products []domain.Product `json:"products"`
	Count    int              `json:"count"`
}

type ListingsResponse struct {
	Listings []domain.Listing `json:"listings"`
	Count    int              `json:"count"`
}

func criteriaFromQuery(r *http.Request) domain.FilterCriteria {
	q := r.URL.Query()
	return domain.FilterCriteria{
		SearchTerm: q.Get("q"),
		Category:   q.Get("category"),
		Industry:   q.Get("industry"),
	}
}

// GET /api/v1/products?q=&category=
func (h *CatalogHandler) Products(w http.ResponseWriter, r *http.Request) {
	products := directory.Filter(h.store.Products(), criteriaFromQuery(r))
	respondJSON(w, http.StatusOK, &ProductsResponse{Products: products, Count: len(products)})
}

// GET /api/v1/directory/listings?q=&category=&industry=
func (h *CatalogHandler) Listings(w http.ResponseWriter, r *http.Request) {
	listings := directory.Filter(directory.Published(h.store.Listings()), criteriaFromQuery(r))
	respondJSON(w, http.StatusOK, &ListingsResponse{Listings: listings, Count: len(listings)})
}

// GET /api/v1/directory/listings/{listing_id}
// Listings awaiting review are not public and answer 404.
func (h *CatalogHandler) Listing(w http.ResponseWriter, r *http.Request) {
	listing, err := h.store.Listing(chi.URLParam(r, "listing_id"))
	if err == nil && listing.Status != domain.ListingPublished {
		err = catalog.ErrListingNotFound
	}
	if err != nil {
		handleDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, listing)
}

// GET /api/v1/directory/options
func (h *CatalogHandler) Options(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, directory.FilterOptions())
}
