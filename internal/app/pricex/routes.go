package pricex

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/pricexhq/pricex/internal/http/handlers/auth/login"
	"github.com/pricexhq/pricex/internal/http/handlers/auth/logout"
	"github.com/pricexhq/pricex/internal/http/handlers/auth/register"
	campaigngenerate "github.com/pricexhq/pricex/internal/http/handlers/campaign/generate"
	"github.com/pricexhq/pricex/internal/http/handlers/health"
	historylist "github.com/pricexhq/pricex/internal/http/handlers/history/list"
	historyremove "github.com/pricexhq/pricex/internal/http/handlers/history/remove"
	"github.com/pricexhq/pricex/internal/http/handlers/preferences/themeread"
	"github.com/pricexhq/pricex/internal/http/handlers/preferences/themetoggle"
	"github.com/pricexhq/pricex/internal/http/handlers/profile"
	sessioncurrent "github.com/pricexhq/pricex/internal/http/handlers/session/current"
	valuationanalyze "github.com/pricexhq/pricex/internal/http/handlers/valuation/analyze"
	"github.com/pricexhq/pricex/internal/http/middlewarectx"
	"github.com/pricexhq/pricex/internal/http/response"
	authservice "github.com/pricexhq/pricex/internal/services/auth"
	campaignservice "github.com/pricexhq/pricex/internal/services/campaign"
	historyservice "github.com/pricexhq/pricex/internal/services/history"
	"github.com/pricexhq/pricex/internal/services/session"
	valuationservice "github.com/pricexhq/pricex/internal/services/valuation"
	"github.com/pricexhq/pricex/internal/storage/prefs"
	"github.com/pricexhq/pricex/internal/storage/repository"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, prefsStore *prefs.Store,
	authService *authservice.Service, valuationService *valuationservice.Service,
	campaignService *campaignservice.Service, historyService *historyservice.Service,
	db *repository.Storage) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/register", register.New(logger, authService).ServeHTTP)
		r.Post("/login", login.New(logger, prefsStore, authService).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(authService, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Post("/logout", logout.New(logger, prefsStore).ServeHTTP)
			r.Get("/session", sessioncurrent.New(logger, prefsStore).ServeHTTP)
			r.Get("/preferences/theme", themeread.New(logger, prefsStore).ServeHTTP)
			r.Put("/preferences/theme/toggle", themetoggle.New(logger, prefsStore).ServeHTTP)
			r.Post("/valuations", valuationanalyze.New(logger, valuationService).ServeHTTP)
			r.Post("/campaigns", campaigngenerate.New(logger, campaignService).ServeHTTP)
			r.Get("/activities", historylist.New(logger, historyService).ServeHTTP)
			r.Delete("/activities/{id}", historyremove.New(logger, historyService).ServeHTTP)
			r.Get("/profile", profile.New(logger, db).ServeHTTP)
		})
	})

	// Корень повторяет поведение входной точки клиента: аутентифицированный
	// запрос уходит на дашборд, анонимный — на страницу входа.
	r.Get("/", rootRedirect(authService))

	// Неизвестный путь дает not-found вне зависимости от состояния сессии.
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, req, response.Error("not found"))
	})

	r.Get("/health", health.New(logger, db).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}

func rootRedirect(authService *authservice.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := session.StateAnonymous

		header := r.Header.Get("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			token := strings.TrimPrefix(header, "Bearer ")
			if _, valid, err := authService.ValidateToken(r.Context(), token); err == nil && valid {
				state = session.StateAuthenticated
			}
		}

		decision := session.Decide(state, "/")
		http.Redirect(w, r, decision.Target, http.StatusFound)
	}
}
