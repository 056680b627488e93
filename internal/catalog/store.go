package catalog

import (
	"errors"

	"github.com/ayyanulhaq997-cmd/CorpVision/internal/domain"
)

// Common errors returned by the store
var (
	ErrProductNotFound = errors.New("product not found")
	ErrListingNotFound = errors.New("listing not found")
	ErrInvalidDraft    = errors.New("invalid draft")
)

// Store defines read access to the catalog plus the append-only admin mutations.
type Store interface {
	// Products returns every product in insertion order
	Products() []domain.Product

	// Product returns a single product by id
	Product(id string) (domain.Product, error)

	// Listings returns every listing in insertion order, whatever its status
	Listings() []domain.Listing

	// Listing returns a single listing by id
	Listing(id string) (domain.Listing, error)

	// AddListing appends a fully formed listing; the id must be unique
	AddListing(l domain.Listing) error

	// AddProduct appends a fully formed product; the id must be unique
	AddProduct(p domain.Product) error
}
