// Package themetoggle реализует HTTP-обработчик переключения темы оформления.
package themetoggle

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/pricexhq/pricex/internal/http/middlewarectx"
	"github.com/pricexhq/pricex/internal/http/response"
	"github.com/pricexhq/pricex/internal/services/theme"
)

type Handler struct {
	log   *slog.Logger
	store theme.Store
}

func New(log *slog.Logger, store theme.Store) *Handler {
	return &Handler{
		log:   log,
		store: store,
	}
}

// ServeHTTP переключает тему пользователя и возвращает новое значение.
// Параметр ?system=dark передаёт ту же системную подсказку, что и чтение
// темы: без него переключение стартовало бы не с эффективного значения.
// Ошибка записи в хранилище не прерывает запрос: переключение действует
// в рамках ответа, а сохранённое значение останется прежним.
//
// @Summary      Переключение темы оформления
// @Security     BearerAuth
// @Tags         preferences
// @Produce      json
// @Param        system  query  string  false  "Системная подсказка (dark|light)"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /api/v1/preferences/theme/toggle [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.preferences.themetoggle"

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

	systemPrefersDark := r.URL.Query().Get("system") == theme.ValueDark

	ctrl := theme.NewController(h.store, theme.Key(username), h.log)
	ctrl.Initialize(r.Context(), systemPrefersDark)
	dark := ctrl.Toggle(r.Context())

	value := theme.ValueLight
	if dark {
		value = theme.ValueDark
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"theme": value,
	}))
}
