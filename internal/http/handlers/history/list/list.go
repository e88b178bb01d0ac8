// Package list реализует HTTP-обработчик чтения истории действий пользователя.
package list

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/pricexhq/pricex/internal/http/middlewarectx"
	"github.com/pricexhq/pricex/internal/http/response"
	"github.com/pricexhq/pricex/internal/lib/sl"
	"github.com/pricexhq/pricex/internal/models"
)

type Service interface {
	List(ctx context.Context, username string, filter models.ActivityFilter) ([]*models.ActivityRecord, error)
}

type Handler struct {
	log     *slog.Logger
	service Service
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP возвращает страницу истории действий с необязательной фильтрацией
// по типу и поисковой строке.
//
// @Summary      История действий пользователя
// @Security     BearerAuth
// @Tags         activities
// @Produce      json
// @Param        kind    query  string  false  "Тип действия (price_prediction|ad_generation)"
// @Param        search  query  string  false  "Поисковая строка"
// @Param        limit   query  int     false  "Размер страницы"
// @Param        offset  query  int     false  "Смещение"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /api/v1/activities [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.history.list"

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

	filter := models.ActivityFilter{
		Kind:   r.URL.Query().Get("kind"),
		Search: r.URL.Query().Get("search"),
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid limit"))
			return
		}
		filter.Limit = limit
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		offset, err := strconv.Atoi(v)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid offset"))
			return
		}
		filter.Offset = offset
	}

	records, err := h.service.List(r.Context(), username, filter)
	if err != nil {
		log.Error("failed to list activities", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list activities"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(records))
}
