package catalog

import (
	"fmt"
	"sync"

	"github.com/ayyanulhaq997-cmd/CorpVision/internal/domain"
)

// MemoryStore implements Store with in-memory storage
type MemoryStore struct {
	mu       sync.RWMutex
	products []domain.Product
	listings []domain.Listing
	index    map[string]int // kind:id -> position in its slice
}

// NewMemoryStore creates an empty in-memory catalog
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		index: make(map[string]int),
	}
}

// NewSeededStore creates a catalog holding the built-in mock data
func NewSeededStore() *MemoryStore {
	s := NewMemoryStore()
	for _, p := range SeedProducts() {
		_ = s.AddProduct(p)
	}
	for _, l := range SeedListings() {
		_ = s.AddListing(l)
	}
	return s
}

func (s *MemoryStore) Products() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Product, len(s.products))
	copy(result, s.products)
	return result
}

func (s *MemoryStore) Product(id string) (domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, exists := s.index[key(domain.KindProduct, id)]
	if !exists {
		return domain.Product{}, ErrProductNotFound
	}
	return s.products[i], nil
}

func (s *MemoryStore) Listings() []domain.Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Listing, len(s.listings))
	copy(result, s.listings)
	return result
}

func (s *MemoryStore) Listing(id string) (domain.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, exists := s.index[key(domain.KindListing, id)]
	if !exists {
		return domain.Listing{}, ErrListingNotFound
	}
	return s.listings[i], nil
}

func (s *MemoryStore) AddListing(l domain.Listing) error {
	if l.ID == "" {
		return fmt.Errorf("%w: listing id is required", ErrInvalidDraft)
	}
	if !l.Status.Valid() {
		return fmt.Errorf("%w: unknown listing status %q", ErrInvalidDraft, l.Status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	k := key(domain.KindListing, l.ID)
	if _, exists := s.index[k]; exists {
		return fmt.Errorf("%w: duplicate listing id %q", ErrInvalidDraft, l.ID)
	}
	s.index[k] = len(s.listings)
	s.listings = append(s.listings, l)
	return nil
}

func (s *MemoryStore) AddProduct(p domain.Product) error {
	if p.ID == "" {
		return fmt.Errorf("%w: product id is required", ErrInvalidDraft)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	k := key(domain.KindProduct, p.ID)
	if _, exists := s.index[k]; exists {
		return fmt.Errorf("%w: duplicate product id %q", ErrInvalidDraft, p.ID)
	}
	s.index[k] = len(s.products)
	s.products = append(s.products, p)
	return nil
}

func key(kind domain.Kind, id string) string {
	return string(kind) + ":" + id
}
