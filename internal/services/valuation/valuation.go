// Package valuation содержит бизнес-логику оценки рыночной стоимости продукта.
package valuation

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/pricexhq/pricex/internal/lib/sl"
	"github.com/pricexhq/pricex/internal/models"
)

// EventPublisher описывает публикацию событий активности.
type EventPublisher interface {
	Publish(ctx context.Context, event models.ActivityEvent) error
}

// Service выполняет оценку и публикует событие price_prediction.
type Service struct {
	pub EventPublisher
	log *slog.Logger

	// basePrice возвращает базовую рыночную цену продукта в долларах.
	basePrice func() int
}

// NewService создает новый экземпляр Service.
func NewService(pub EventPublisher, log *slog.Logger) *Service {
	return &Service{
		pub: pub,
		log: log,
		basePrice: func() int {
			return 50 + rand.IntN(451)
		},
	}
}

// Analyze возвращает рыночную оценку продукта и публикует событие активности.
// Сбой публикации не прерывает оценку: событие логируется и теряется.
func (s *Service) Analyze(ctx context.Context, username string, req models.ValuationRequest) (*models.ValuationResult, error) {
	const op = "valuation.Analyze"

	base := float64(s.basePrice())
	result := &models.ValuationResult{
		RecommendedPrice:  round2(base * 1.10),
		RecommendedMin:    round2(base * 0.95),
		RecommendedMax:    round2(base * 1.25),
		Confidence:        "89%",
		MarketTrend:       "Upward",
		CompetitorAverage: round2(base * 1.05),
		DemandScore:       "High",
		EstimatedValue:    round2(base),
	}

	event := models.ActivityEvent{
		EventID:       uuid.NewString(),
		Username:      username,
		OccurredAt:    time.Now().UTC(),
		Product:       req.ProductName,
		Kind:          models.ActivityPricePrediction,
		ResultSummary: fmt.Sprintf("Rec. Price: $%.2f", result.RecommendedPrice),
		Notes:         fmt.Sprintf("Category: %s, Brand: %s, Condition: %s", req.Category, req.Brand, req.Condition),
	}
	if err := s.pub.Publish(ctx, event); err != nil {
		s.log.Error("failed to publish activity event",
			slog.String("op", op), slog.String("event_id", event.EventID), sl.Err(err))
	}

	s.log.Info("product analyzed",
		slog.String("op", op),
		slog.String("username", username),
		slog.String("product", req.ProductName))
	return result, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
