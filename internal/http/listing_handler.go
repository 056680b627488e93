package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/ayyanulhaq997-cmd/CorpVision/internal/admin"
	"github.com/ayyanulhaq997-cmd/CorpVision/internal/domain"
)

// AdminService is the catalog mutator behind the submit-listing and admin routes.
type AdminService interface {
	AppendListing(ctx context.Context, draft domain.ListingDraft) (domain.Listing, error)
	SubmitListing(ctx context.Context, draft domain.ListingDraft) (domain.Listing, error)
	AppendProduct(ctx context.Context, draft domain.ProductDraft) (domain.Product, error)
	Listings() []domain.Listing
	Products() []domain.Product
	Dashboard() admin.Dashboard
}

// DescriptionGenerator drafts listing copy. It never fails; problems come
// back as a human-readable fallback string.
type DescriptionGenerator interface {
	GenerateDescription(ctx context.Context, name, industry, keywords string) string
}

type ListingHandler struct {
	admin  AdminService
	assist DescriptionGenerator
}

func NewListingHandler(admin AdminService, assist DescriptionGenerator) *ListingHandler {
	return &ListingHandler{admin: admin, assist: assist}
}

type AssistRequestDTO struct {
	Name     string `json:"name"`
	Industry string `json:"industry"`
	Keywords string `json:"keywords"`
}

type AssistResponseDTO struct {
	Description string `json:"description"`
}

// POST /api/v1/listings
func (h *ListingHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var draft domain.ListingDraft
	if err := decodeJSON(r, &draft); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	listing, err := h.admin.SubmitListing(r.Context(), draft)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, listing)
}

// POST /api/v1/assist/description
func (h *ListingHandler) Describe(w http.ResponseWriter, r *http.Request) {
	var req AssistRequestDTO
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Keywords) == "" {
		respondError(w, http.StatusBadRequest, "missing_fields",
			"Please enter a business name and some keywords first!")
		return
	}

	description := h.assist.GenerateDescription(r.Context(), req.Name, req.Industry, req.Keywords)
	respondJSON(w, http.StatusOK, &AssistResponseDTO{Description: description})
}
