// Package pricex собирает и запускает основное HTTP-приложение.
package pricex

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/streadway/amqp"

	"github.com/pricexhq/pricex/internal/config"
	"github.com/pricexhq/pricex/internal/lib/jwt"
	"github.com/pricexhq/pricex/internal/migrations"
	"github.com/pricexhq/pricex/internal/rabbitmq"
	authservice "github.com/pricexhq/pricex/internal/services/auth"
	campaignservice "github.com/pricexhq/pricex/internal/services/campaign"
	historyservice "github.com/pricexhq/pricex/internal/services/history"
	valuationservice "github.com/pricexhq/pricex/internal/services/valuation"
	"github.com/pricexhq/pricex/internal/storage/prefs"
	"github.com/pricexhq/pricex/internal/storage/repository"
)

type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	rabbit *amqp.Connection
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, "./migrations"); err != nil {
		return nil, err
	}

	prefsStore, err := prefs.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	rabbitConn, err := rabbitmq.Connect(cfg.AddressRabbit, cfg.Retries, cfg.RetryDelay)
	if err != nil {
		return nil, err
	}
	rabbitCh, err := rabbitmq.SetupChannel(rabbitConn)
	if err != nil {
		return nil, err
	}
	publisher := rabbitmq.NewActivityPublisher(rabbitCh)

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)
	authService := authservice.NewService(db, jwtMaker)
	valuationService := valuationservice.NewService(publisher, logger)
	campaignService := campaignservice.NewService(publisher, logger)
	historyService := historyservice.NewService(db, logger)

	router := chi.NewRouter()

	RegisterRoutes(router, logger, prefsStore, authService, valuationService, campaignService, historyService, db)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		rabbit: rabbitConn,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.db.DB.Close()
		a.rabbit.Close()
		return err
	}
}
