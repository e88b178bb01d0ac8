package valuation

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pricexhq/pricex/internal/models"
)

type publisherStub struct {
	events []models.ActivityEvent
	err    error
}

func (p *publisherStub) Publish(_ context.Context, event models.ActivityEvent) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func testRequest() models.ValuationRequest {
	return models.ValuationRequest{
		ProductName: "Wireless Headphones",
		Category:    "Electronics",
		Brand:       "Soundline",
		Condition:   "Good",
		Description: "Over-ear, minor scratches on the left cup",
		ImageRef:    "uploads/headphones.jpg",
	}
}

func TestAnalyze_FiguresDerivedFromBase(t *testing.T) {
	pub := &publisherStub{}
	svc := NewService(pub, newNoopLogger())
	svc.basePrice = func() int { return 100 }

	result, err := svc.Analyze(context.Background(), "soy", testRequest())
	require.NoError(t, err)

	assert.InDelta(t, 110.0, result.RecommendedPrice, 0.001)
	assert.InDelta(t, 95.0, result.RecommendedMin, 0.001)
	assert.InDelta(t, 125.0, result.RecommendedMax, 0.001)
	assert.InDelta(t, 105.0, result.CompetitorAverage, 0.001)
	assert.InDelta(t, 100.0, result.EstimatedValue, 0.001)
	assert.Equal(t, "89%", result.Confidence)
	assert.Equal(t, "Upward", result.MarketTrend)
	assert.Equal(t, "High", result.DemandScore)
}

func TestAnalyze_BasePriceStaysInRange(t *testing.T) {
	pub := &publisherStub{}
	svc := NewService(pub, newNoopLogger())

	for range 100 {
		result, err := svc.Analyze(context.Background(), "soy", testRequest())
		require.NoError(t, err)
		assert.GreaterOrEqual(t, result.EstimatedValue, 50.0)
		assert.LessOrEqual(t, result.EstimatedValue, 500.0)
		assert.Less(t, result.RecommendedMin, result.RecommendedMax)
	}
}

func TestAnalyze_PublishesActivityEvent(t *testing.T) {
	pub := &publisherStub{}
	svc := NewService(pub, newNoopLogger())
	svc.basePrice = func() int { return 95 }

	_, err := svc.Analyze(context.Background(), "soy", testRequest())
	require.NoError(t, err)

	require.Len(t, pub.events, 1)
	event := pub.events[0]
	assert.Equal(t, "soy", event.Username)
	assert.Equal(t, "Wireless Headphones", event.Product)
	assert.Equal(t, models.ActivityPricePrediction, event.Kind)
	assert.Equal(t, "Rec. Price: $104.50", event.ResultSummary)
	assert.Contains(t, event.Notes, "Brand: Soundline")
	assert.NotEmpty(t, event.EventID)
	assert.False(t, event.OccurredAt.IsZero())
}

func TestAnalyze_PublishFailureDoesNotFailAnalysis(t *testing.T) {
	pub := &publisherStub{err: errors.New("broker unavailable")}
	svc := NewService(pub, newNoopLogger())

	result, err := svc.Analyze(context.Background(), "soy", testRequest())
	require.NoError(t, err)
	assert.NotNil(t, result)
}
