package http

import (
	"net/http"

	"github.com/ayyanulhaq997-cmd/CorpVision/internal/domain"
)

type StateHandler struct{}

func NewStateHandler() *StateHandler {
	return &StateHandler{}
}

type NavigateRequestDTO struct {
	Page domain.Page `json:"page"`
}

// GET /api/v1/state
func (h *StateHandler) Get(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, newViewResponse(getState(r.Context()).View()))
}

// POST /api/v1/navigate
func (h *StateHandler) Navigate(w http.ResponseWriter, r *http.Request) {
	var req NavigateRequestDTO
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if !req.Page.Valid() {
		respondError(w, http.StatusBadRequest, "invalid_page", "unknown page "+string(req.Page))
		return
	}

	view, err := getState(r.Context()).Navigate(req.Page)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, newViewResponse(view))
}
