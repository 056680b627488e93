package http

import (
	"errors"
	"net/http"

	"github.com/ayyanulhaq997-cmd/CorpVision/internal/checkout"
	"go.uber.org/zap"
)

type CheckoutHandler struct {
	logger *zap.Logger
}

func NewCheckoutHandler(logger *zap.Logger) *CheckoutHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CheckoutHandler{logger: logger}
}

// POST /api/v1/checkout
// An empty cart is not an error: the view carries the CART_EMPTY guard status.
func (h *CheckoutHandler) Enter(w http.ResponseWriter, r *http.Request) {
	view, err := getState(r.Context()).ProceedToCheckout()
	if err != nil {
		handleDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, newViewResponse(view))
}

// GET /api/v1/checkout
func (h *CheckoutHandler) Get(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, newViewResponse(getState(r.Context()).View()))
}

// POST /api/v1/checkout/submit
func (h *CheckoutHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var form checkout.Form
	if err := decodeJSON(r, &form); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	view, err := getState(r.Context()).SubmitOrder(form)
	if errors.Is(err, checkout.ErrEmptyCart) {
		respondJSON(w, http.StatusOK, newViewResponse(view))
		return
	}
	if err != nil {
		handleDomainError(w, err)
		return
	}

	h.logger.Info("order submitted",
		zap.String("session", getSessionID(r.Context())),
		zap.String("request_id", getRequestID(r.Context())),
		zap.Float64("total", view.Totals.Total))
	respondJSON(w, http.StatusAccepted, newViewResponse(view))
}

// POST /api/v1/checkout/return
func (h *CheckoutHandler) Return(w http.ResponseWriter, r *http.Request) {
	view, err := getState(r.Context()).ReturnHome()
	if err != nil {
		handleDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, newViewResponse(view))
}
