package domain

// Kind tells the two catalog variants apart.
type Kind string

const (
	KindProduct Kind = "product"
	KindListing Kind = "listing"
)

// Item is a catalog entry: either a purchasable Product or a directory Listing.
type Item interface {
	Header() Base
	Kind() Kind
}

// Base holds the fields shared by every catalog entry.
type Base struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

func (b Base) Header() Base {
	return b
}
