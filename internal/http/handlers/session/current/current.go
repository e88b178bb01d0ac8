// Package current реализует HTTP-обработчик чтения текущей сессии.
//
// Обработчик восстанавливает состояние сессии из хранилища предпочтений —
// это серверный аналог инициализации клиента после перезагрузки страницы.
package current

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/pricexhq/pricex/internal/http/middlewarectx"
	"github.com/pricexhq/pricex/internal/http/response"
	"github.com/pricexhq/pricex/internal/services/session"
)

type Handler struct {
	log   *slog.Logger
	store session.Store
}

func New(log *slog.Logger, store session.Store) *Handler {
	return &Handler{
		log:   log,
		store: store,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.session.current"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	username, ok := r.Context().Value(middlewarectx.User).(string)
	if !ok || username == "" {
		log.Error("username not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	ctrl := session.NewController(h.store, nil, session.Key(username), h.log)
	ctrl.Initialize(r.Context())

	state, identity := ctrl.Current()
	if state != session.StateAuthenticated {
		// Токен валиден, но записи сессии нет: логаут с другого клиента.
		render.JSON(w, r, response.StatusOKWithData(map[string]any{
			"authenticated": false,
		}))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"authenticated": true,
		"identity":      identity,
	}))
}
