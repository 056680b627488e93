// Package admin appends listings and products to the catalog and reports
// the back-office dashboard. The catalog is append-only: nothing here
// updates or deletes an entry.
package admin

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/ayyanulhaq997-cmd/CorpVision/internal/catalog"
	"github.com/ayyanulhaq997-cmd/CorpVision/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultProductCategory = "Software"
	DefaultProductStock    = 100

	imageURL = "https://picsum.photos/seed/%s/%d/%d"
)

// AppendRecorder is notified for every entry appended to the catalog.
type AppendRecorder interface {
	CatalogAppend(ctx context.Context, kind string)
}

type nopRecorder struct{}

func (nopRecorder) CatalogAppend(context.Context, string) {}

// Dashboard summarizes the catalog for the admin view.
type Dashboard struct {
	Listings   int     `json:"listings"`
	Published  int     `json:"published"`
	Pending    int     `json:"pending"`
	Products   int     `json:"products"`
	StockValue float64 `json:"stock_value"`
}

type Service struct {
	store   catalog.Store
	metrics AppendRecorder
	logger  *zap.Logger
	now     func() time.Time
	newID   func() string
}

func NewService(store catalog.Store, metrics AppendRecorder, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if metrics == nil {
		metrics = nopRecorder{}
	}
	return &Service{
		store:   store,
		metrics: metrics,
		logger:  logger,
		now:     time.Now,
		newID:   func() string { return uuid.New().String() },
	}
}

// AppendListing publishes a listing straight to the directory.
func (s *Service) AppendListing(ctx context.Context, draft domain.ListingDraft) (domain.Listing, error) {
	if draft.Image == "" {
		draft.Image = fmt.Sprintf(imageURL, s.timestampSeed(), 400, 300)
	}
	return s.appendListing(ctx, draft, domain.ListingPublished)
}

// SubmitListing queues a public submission for review. It stays out of the
// directory until it is published.
func (s *Service) SubmitListing(ctx context.Context, draft domain.ListingDraft) (domain.Listing, error) {
	if draft.Image == "" {
		draft.Image = fmt.Sprintf(imageURL, nameSeed(draft.Name), 400, 300)
	}
	return s.appendListing(ctx, draft, domain.ListingPending)
}

func (s *Service) appendListing(ctx context.Context, draft domain.ListingDraft, status domain.ListingStatus) (domain.Listing, error) {
	if err := ValidateListing(draft); err != nil {
		return domain.Listing{}, err
	}
	if draft.Category == "" {
		draft.Category = catalog.Categories[0]
	}
	if draft.Industry == "" {
		draft.Industry = catalog.Industries[0]
	}

	listing := domain.Listing{
		Base: domain.Base{
			ID:          s.newID(),
			Name:        strings.TrimSpace(draft.Name),
			Category:    draft.Category,
			Description: strings.TrimSpace(draft.Description),
			Image:       draft.Image,
		},
		Industry: draft.Industry,
		Location: strings.TrimSpace(draft.Location),
		Rating:   0,
		Status:   status,
	}
	if err := s.store.AddListing(listing); err != nil {
		return domain.Listing{}, fmt.Errorf("append listing: %w", err)
	}

	s.metrics.CatalogAppend(ctx, string(domain.KindListing))
	s.logger.Info("listing appended",
		zap.String("id", listing.ID),
		zap.String("name", listing.Name),
		zap.String("status", string(status)))
	return listing, nil
}

// AppendProduct adds a product with the default stock level.
func (s *Service) AppendProduct(ctx context.Context, draft domain.ProductDraft) (domain.Product, error) {
	if err := ValidateProduct(draft); err != nil {
		return domain.Product{}, err
	}
	if draft.Category == "" {
		draft.Category = DefaultProductCategory
	}
	if draft.Image == "" {
		draft.Image = fmt.Sprintf(imageURL, s.timestampSeed(), 400, 400)
	}

	product := domain.Product{
		Base: domain.Base{
			ID:          s.newID(),
			Name:        strings.TrimSpace(draft.Name),
			Category:    draft.Category,
			Description: strings.TrimSpace(draft.Description),
			Image:       draft.Image,
		},
		Price: draft.Price,
		Stock: DefaultProductStock,
	}
	if err := s.store.AddProduct(product); err != nil {
		return domain.Product{}, fmt.Errorf("append product: %w", err)
	}

	s.metrics.CatalogAppend(ctx, string(domain.KindProduct))
	s.logger.Info("product appended",
		zap.String("id", product.ID),
		zap.String("name", product.Name),
		zap.Float64("price", product.Price))
	return product, nil
}

func (s *Service) Listings() []domain.Listing {
	return s.store.Listings()
}

func (s *Service) Products() []domain.Product {
	return s.store.Products()
}

func (s *Service) Dashboard() Dashboard {
	var d Dashboard
	for _, l := range s.store.Listings() {
		d.Listings++
		switch l.Status {
		case domain.ListingPublished:
			d.Published++
		case domain.ListingPending:
			d.Pending++
		}
	}
	for _, p := range s.store.Products() {
		d.Products++
		d.StockValue += p.Price * float64(p.Stock)
	}
	return d
}

func (s *Service) timestampSeed() string {
	return fmt.Sprint(s.now().UnixMilli())
}

func nameSeed(name string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, name)
}
