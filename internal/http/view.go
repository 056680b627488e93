package http

import (
	"github.com/ayyanulhaq997-cmd/CorpVision/internal/app"
	"github.com/ayyanulhaq997-cmd/CorpVision/internal/domain"
)

type DisplayTotals struct {
	Subtotal string `json:"subtotal"`
	Tax      string `json:"tax"`
	Total    string `json:"total"`
}

// ViewResponse is the state snapshot plus the totals formatted for display.
type ViewResponse struct {
	app.View
	Display DisplayTotals `json:"display"`
}

func newViewResponse(v app.View) ViewResponse {
	if v.Lines == nil {
		v.Lines = []domain.CartLine{}
	}
	return ViewResponse{
		View: v,
		Display: DisplayTotals{
			Subtotal: domain.FormatMoney(v.Totals.Subtotal),
			Tax:      domain.FormatMoney(v.Totals.Tax),
			Total:    domain.FormatMoney(v.Totals.Total),
		},
	}
}
