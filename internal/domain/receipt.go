package domain

import "time"

// Receipt represents the cart state at the moment an order was submitted.
type Receipt struct {
	Lines       []CartLine  `json:"lines"`
	Totals      OrderTotals `json:"totals"`
	Email       string      `json:"email"`
	SubmittedAt time.Time   `json:"submitted_at"`
}
