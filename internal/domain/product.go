package domain

type Product struct {
	Base
	Price float64 `json:"price"`
	Stock int     `json:"stock"` // informational, never decremented
}

func (Product) Kind() Kind {
	return KindProduct
}

// ProductDraft carries the admin-supplied fields of a new product.
type ProductDraft struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
}
