// Package logout реализует HTTP-обработчик выхода из сессии.
//
// Выход идемпотентен: повторный вызов для анонимной сессии ничего не меняет.
package logout

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/pricexhq/pricex/internal/http/middlewarectx"
	"github.com/pricexhq/pricex/internal/http/response"
	"github.com/pricexhq/pricex/internal/lib/sl"
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
	const op = "handlers.auth.logout"

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
	if err := ctrl.Logout(r.Context()); err != nil {
		log.Error("failed to logout", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to logout"))
		return
	}

	log.Info("logout success", slog.String("username", username))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"message": "logged out",
	}))
}
