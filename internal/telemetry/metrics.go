package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/ayyanulhaq997-cmd/CorpVision"

// Metrics groups the counters recorded by the storefront. The zero value is
// not usable; use NewMetrics. A nil *Metrics records nothing.
type Metrics struct {
	ordersCompleted metric.Int64Counter
	assistFallbacks metric.Int64Counter
	catalogAppends  metric.Int64Counter
}

// NewMetrics registers the counters on the global meter provider.
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter(meterName)

	orders, err := meter.Int64Counter("storefront.orders.completed",
		metric.WithDescription("Orders that reached the complete state"))
	if err != nil {
		return nil, err
	}
	fallbacks, err := meter.Int64Counter("storefront.assist.fallbacks",
		metric.WithDescription("Text-assist calls answered with a fallback string"))
	if err != nil {
		return nil, err
	}
	appends, err := meter.Int64Counter("storefront.catalog.appends",
		metric.WithDescription("Listings and products appended to the catalog"))
	if err != nil {
		return nil, err
	}

	return &Metrics{
		ordersCompleted: orders,
		assistFallbacks: fallbacks,
		catalogAppends:  appends,
	}, nil
}

func (m *Metrics) OrderCompleted(ctx context.Context) {
	if m == nil {
		return
	}
	m.ordersCompleted.Add(ctx, 1)
}

func (m *Metrics) AssistFallback(ctx context.Context, reason string) {
	if m == nil {
		return
	}
	m.assistFallbacks.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
}

func (m *Metrics) CatalogAppend(ctx context.Context, kind string) {
	if m == nil {
		return
	}
	m.catalogAppends.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind)))
}
