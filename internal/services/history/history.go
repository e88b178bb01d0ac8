// Package history содержит бизнес-логику работы с историей активности пользователя.
package history

import (
	"context"
	"errors"
	"log/slog"

	"github.com/pricexhq/pricex/internal/models"
)

// ErrNotFound возвращается при удалении несуществующей записи.
var ErrNotFound = errors.New("activity record not found")

// ActivityRepository определяет методы для работы с записями истории в хранилище.
type ActivityRepository interface {
	// CreateActivity добавляет новую запись и возвращает её ID.
	CreateActivity(ctx context.Context, rec models.ActivityRecord) (int64, error)
	// ListActivities возвращает записи пользователя, новые раньше старых.
	ListActivities(ctx context.Context, username string, filter models.ActivityFilter) ([]*models.ActivityRecord, error)
	// RemoveActivity удаляет запись пользователя и возвращает количество удалённых.
	RemoveActivity(ctx context.Context, username string, id int64) (int64, error)
}

// Service реализует операции над историей активности.
type Service struct {
	repo ActivityRepository
	log  *slog.Logger
}

// NewService создает новый экземпляр Service.
func NewService(repo ActivityRepository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// List возвращает записи истории пользователя с фильтрацией и пагинацией.
func (s *Service) List(ctx context.Context, username string, filter models.ActivityFilter) ([]*models.ActivityRecord, error) {
	if filter.Limit <= 0 {
		filter.Limit = 10
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return s.repo.ListActivities(ctx, username, filter)
}

// Remove удаляет запись истории пользователя по ID.
func (s *Service) Remove(ctx context.Context, username string, id int64) error {
	affected, err := s.repo.RemoveActivity(ctx, username, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	s.log.Info("activity record removed",
		slog.String("username", username), slog.Int64("id", id))
	return nil
}

// Record сохраняет событие активности как запись истории.
// Используется воркером, потребляющим события из очереди.
func (s *Service) Record(ctx context.Context, event models.ActivityEvent) error {
	rec := models.ActivityRecord{
		Username:      event.Username,
		OccurredAt:    event.OccurredAt,
		Product:       event.Product,
		Kind:          event.Kind,
		ResultSummary: event.ResultSummary,
		Notes:         event.Notes,
	}
	id, err := s.repo.CreateActivity(ctx, rec)
	if err != nil {
		return err
	}
	s.log.Info("activity record created",
		slog.String("username", event.Username),
		slog.String("kind", event.Kind),
		slog.Int64("id", id))
	return nil
}
