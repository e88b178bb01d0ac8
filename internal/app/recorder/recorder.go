// Package recorder собирает и запускает воркер записи истории действий.
// Воркер читает события из очереди и сохраняет их в базу данных.
package recorder

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/streadway/amqp"

	"github.com/pricexhq/pricex/internal/config"
	"github.com/pricexhq/pricex/internal/migrations"
	"github.com/pricexhq/pricex/internal/models"
	"github.com/pricexhq/pricex/internal/rabbitmq"
	historyservice "github.com/pricexhq/pricex/internal/services/history"
	"github.com/pricexhq/pricex/internal/storage/repository"
)

type App struct {
	conn           *amqp.Connection
	ch             *amqp.Channel
	historyService *historyservice.Service
	logger         *slog.Logger
}

func New(_ context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, "./migrations"); err != nil {
		return nil, err
	}

	conn, err := rabbitmq.Connect(cfg.AddressRabbit, cfg.Retries, cfg.RetryDelay)
	if err != nil {
		return nil, err
	}
	ch, err := rabbitmq.SetupChannel(conn)
	if err != nil {
		conn.Close()
		return nil, err
	}

	historyService := historyservice.NewService(db, logger)

	return &App{
		conn:           conn,
		ch:             ch,
		historyService: historyService,
		logger:         logger,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	err := rabbitmq.ConsumeMessages(ctx, a.ch, rabbitmq.ActivityQueue, a.handleEvent(ctx))
	if err != nil {
		a.logger.Error("failed to start activity consumer", slog.Any("err", err))
		return err
	}

	<-ctx.Done()
	a.logger.Info("activity recorder shutting down gracefully")

	if err := a.ch.Close(); err != nil {
		a.logger.Error("failed to close channel", slog.Any("err", err))
	}

	if err := a.conn.Close(); err != nil {
		a.logger.Error("failed to close connection", slog.Any("err", err))
	}

	return nil
}

func (a *App) handleEvent(ctx context.Context) func([]byte) error {
	return func(body []byte) error {
		const op = "recorder.handleEvent"

		var event models.ActivityEvent
		if err := json.Unmarshal(body, &event); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		if err := a.historyService.Record(ctx, event); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		a.logger.Info("activity recorded",
			slog.String("event_id", event.EventID),
			slog.String("kind", event.Kind))
		return nil
	}
}
