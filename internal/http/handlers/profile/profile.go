// Package profile реализует HTTP-обработчик чтения профиля пользователя.
package profile

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/pricexhq/pricex/internal/http/middlewarectx"
	"github.com/pricexhq/pricex/internal/http/response"
	"github.com/pricexhq/pricex/internal/lib/sl"
	"github.com/pricexhq/pricex/internal/models"
	"github.com/pricexhq/pricex/internal/storage/repository"
)

type UserProvider interface {
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

type Handler struct {
	log   *slog.Logger
	users UserProvider
}

func New(log *slog.Logger, users UserProvider) *Handler {
	return &Handler{
		log:   log,
		users: users,
	}
}

// ServeHTTP возвращает профиль аутентифицированного пользователя.
//
// @Summary      Профиль пользователя
// @Security     BearerAuth
// @Tags         profile
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/v1/profile [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.profile"

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

	user, err := h.users.GetUserByUsername(r.Context(), username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("user not found"))
			return
		}
		log.Error("failed to read user", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to read profile"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"username":   user.Username,
		"email":      user.Email,
		"id":         user.UID,
		"created_at": user.CreatedAt,
	}))
}
