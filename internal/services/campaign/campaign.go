// Package campaign содержит генерацию вариантов рекламного контента по шаблонам.
package campaign

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pricexhq/pricex/internal/lib/sl"
	"github.com/pricexhq/pricex/internal/models"
)

// EventPublisher описывает публикацию событий активности.
type EventPublisher interface {
	Publish(ctx context.Context, event models.ActivityEvent) error
}

// Service генерирует контент и публикует событие ad_generation.
type Service struct {
	pub EventPublisher
	log *slog.Logger
}

// NewService создает новый экземпляр Service.
func NewService(pub EventPublisher, log *slog.Logger) *Service {
	return &Service{
		pub: pub,
		log: log,
	}
}

// Generate возвращает варианты текста для выбранного шаблона и публикует
// событие активности. Сбой публикации логируется и не прерывает генерацию.
func (s *Service) Generate(ctx context.Context, username string, req models.CampaignRequest) (*models.CampaignContent, error) {
	const op = "campaign.Generate"

	variants := buildVariants(req)

	event := models.ActivityEvent{
		EventID:       uuid.NewString(),
		Username:      username,
		OccurredAt:    time.Now().UTC(),
		Product:       req.CampaignName,
		Kind:          models.ActivityAdGeneration,
		ResultSummary: fmt.Sprintf("%d Ad Variations", len(variants)),
		Notes:         fmt.Sprintf("Template: %s, Audience: %s", req.TemplateKind, req.TargetAudience),
	}
	if err := s.pub.Publish(ctx, event); err != nil {
		s.log.Error("failed to publish activity event",
			slog.String("op", op), slog.String("event_id", event.EventID), sl.Err(err))
	}

	s.log.Info("campaign content generated",
		slog.String("op", op),
		slog.String("username", username),
		slog.String("template", req.TemplateKind))
	return &models.CampaignContent{Variants: variants}, nil
}

func buildVariants(req models.CampaignRequest) map[string]string {
	switch req.TemplateKind {
	case models.TemplateSocialMedia:
		hashtags := req.CustomFields["hashtags"]
		if hashtags == "" {
			hashtags = "#trend"
		}
		return map[string]string{
			"Viral Tweet":           fmt.Sprintf("🚨 %s is officially here! Don't miss out. %s", req.CampaignName, hashtags),
			"Instagram Caption":     fmt.Sprintf("POV: You just found the perfect solution for %s. ✨ Link in bio!", req.TargetAudience),
			"LinkedIn Professional": fmt.Sprintf("We are excited to announce %s, designed specifically to help %s achieve more.", req.CampaignName, req.TargetAudience),
		}
	case models.TemplateEmail:
		sender := req.CustomFields["sender_name"]
		if sender == "" {
			sender = "there"
		}
		return map[string]string{
			"Subject Line A":     fmt.Sprintf("Question for %s...", req.TargetAudience),
			"Subject Line B":     fmt.Sprintf("Unlock exclusive access to %s", req.CampaignName),
			"Email Body Preview": fmt.Sprintf("Hi %s, we noticed you've been looking for...", sender),
		}
	case models.TemplateBanner, models.TemplateVideo:
		// Баннеры и видеосценарии используют общий набор вариантов.
		return fallbackVariants(req)
	default:
		return fallbackVariants(req)
	}
}

func fallbackVariants(req models.CampaignRequest) map[string]string {
	return map[string]string{
		"Variation A": fmt.Sprintf("Get %s today for just $%s!", req.CampaignName, req.Price),
		"Variation B": fmt.Sprintf("Attention %s: The wait is over.", req.TargetAudience),
		"Variation C": fmt.Sprintf("Minimalist ad copy focusing on %s.", req.CampaignName),
	}
}
