// Package generate реализует HTTP-обработчик генерации рекламных вариантов.
package generate

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/pricexhq/pricex/internal/http/middlewarectx"
	"github.com/pricexhq/pricex/internal/http/response"
	"github.com/pricexhq/pricex/internal/lib/sl"
	"github.com/pricexhq/pricex/internal/models"
)

type Service interface {
	Generate(ctx context.Context, username string, req models.CampaignRequest) (*models.CampaignContent, error)
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

// ServeHTTP принимает описание кампании и возвращает сгенерированные варианты.
//
// @Summary      Генерация рекламных вариантов
// @Security     BearerAuth
// @Tags         campaigns
// @Accept       json
// @Produce      json
// @Param        request  body  models.CampaignRequest  true  "Описание кампании"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Router       /api/v1/campaigns [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.campaign.generate"

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

	var req models.CampaignRequest
	err := render.DecodeJSON(r.Body, &req)
	if errors.Is(err, io.EOF) {
		log.Error("request body is empty")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("empty request"))
		return
	}
	if err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode request"))
		return
	}

	if err := validator.New().Struct(req); err != nil {
		var validateErr validator.ValidationErrors
		errors.As(err, &validateErr)
		log.Error("invalid request", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(validateErr))
		return
	}

	content, err := h.service.Generate(r.Context(), username, req)
	if err != nil {
		log.Error("failed to generate campaign", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to generate campaign"))
		return
	}

	log.Info("campaign generated",
		slog.String("username", username),
		slog.String("template_kind", req.TemplateKind))

	render.JSON(w, r, response.StatusOKWithData(content))
}
