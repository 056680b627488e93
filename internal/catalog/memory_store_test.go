package catalog

import (
	"sync"
	"testing"

	"github.com/ayyanulhaq997-cmd/CorpVision/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Seeded(t *testing.T) {
	store := NewSeededStore()

	products := store.Products()
	require.Len(t, products, 3)
	assert.Equal(t, "p1", products[0].ID)
	assert.Equal(t, "p3", products[2].ID)

	listings := store.Listings()
	require.Len(t, listings, 4)
	for _, l := range listings {
		assert.Equal(t, domain.ListingPublished, l.Status)
	}
}

func TestMemoryStore_Product(t *testing.T) {
	store := NewSeededStore()

	p, err := store.Product("p2")
	require.NoError(t, err)
	assert.Equal(t, "Cloud Storage Pro", p.Name)
	assert.Equal(t, 500, p.Stock)

	_, err = store.Product("nope")
	assert.ErrorIs(t, err, ErrProductNotFound)

	// listing ids live in their own namespace
	_, err = store.Product("1")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestMemoryStore_Listing(t *testing.T) {
	store := NewSeededStore()

	l, err := store.Listing("3")
	require.NoError(t, err)
	assert.Equal(t, "Berlin, Germany", l.Location)

	_, err = store.Listing("p1")
	assert.ErrorIs(t, err, ErrListingNotFound)
}

func TestMemoryStore_AddListing(t *testing.T) {
	store := NewMemoryStore()

	l := domain.Listing{Base: domain.Base{ID: "x", Name: "Acme"}, Status: domain.ListingPending}
	require.NoError(t, store.AddListing(l))

	err := store.AddListing(l)
	assert.ErrorIs(t, err, ErrInvalidDraft)

	err = store.AddListing(domain.Listing{Base: domain.Base{ID: "y"}, Status: "archived"})
	assert.ErrorIs(t, err, ErrInvalidDraft)

	err = store.AddListing(domain.Listing{Status: domain.ListingStatusDraft})
	assert.ErrorIs(t, err, ErrInvalidDraft)

	assert.Len(t, store.Listings(), 1)
}

func TestMemoryStore_AddProduct_KeepsOrder(t *testing.T) {
	store := NewSeededStore()

	require.NoError(t, store.AddProduct(domain.Product{Base: domain.Base{ID: "p4", Name: "Support Plan"}, Price: 10}))

	products := store.Products()
	require.Len(t, products, 4)
	assert.Equal(t, "p4", products[3].ID)

	err := store.AddProduct(domain.Product{Base: domain.Base{ID: "p1"}})
	assert.ErrorIs(t, err, ErrInvalidDraft)
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	store := NewSeededStore()

	products := store.Products()
	products[0].Name = "changed"

	p, err := store.Product("p1")
	require.NoError(t, err)
	assert.Equal(t, "Enterprise License", p.Name)
}

func TestMemoryStore_ConcurrentAppends(t *testing.T) {
	store := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := string(rune('a'+i%26)) + string(rune('0'+i/26))
			_ = store.AddProduct(domain.Product{Base: domain.Base{ID: id}})
			_ = store.Products()
		}(i)
	}
	wg.Wait()

	assert.Len(t, store.Products(), 50)
}
