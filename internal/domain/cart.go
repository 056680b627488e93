package domain

// CartLine is one row of the cart. Price, name, category and image are copied
// from the product when the line is created and never refreshed.
type CartLine struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Image     string  `json:"image"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

func NewCartLine(p Product) CartLine {
	return CartLine{
		ProductID: p.ID,
		Name:      p.Name,
		Category:  p.Category,
		Image:     p.Image,
		UnitPrice: p.Price,
		Quantity:  1,
	}
}

func (l CartLine) Subtotal() float64 {
	return l.UnitPrice * float64(l.Quantity)
}
