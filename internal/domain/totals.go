package domain

import "fmt"

// TaxRate is the flat sales tax applied at checkout.
const TaxRate = 0.08

// OrderTotals is always derived from the cart lines; it is never stored.
type OrderTotals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

func ComputeTotals(lines []CartLine) OrderTotals {
	var subtotal float64
	for _, l := range lines {
		subtotal += l.Subtotal()
	}
	tax := subtotal * TaxRate
	return OrderTotals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal + tax,
	}
}

// FormatMoney renders an amount in dollars, rounding to cents only for display.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}
