package themeread

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pricexhq/pricex/internal/http/middlewarectx"
	"github.com/pricexhq/pricex/internal/services/theme"
)

type fakeStore struct {
	data map[string]string
}

func (s *fakeStore) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *fakeStore) Set(_ context.Context, key, value string) error {
	s.data[key] = value
	return nil
}

func TestThemeReadHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		username       string
		stored         string
		query          string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "сохраненное значение имеет приоритет над подсказкой",
			username:       "soy",
			stored:         theme.ValueDark,
			query:          "?system=light",
			expectedStatus: http.StatusOK,
			expectedBody:   `"theme":"dark"`,
		},
		{
			name:           "без сохраненного значения работает подсказка",
			username:       "soy",
			query:          "?system=dark",
			expectedStatus: http.StatusOK,
			expectedBody:   `"theme":"dark"`,
		},
		{
			name:           "без значения и подсказки тема светлая",
			username:       "soy",
			expectedStatus: http.StatusOK,
			expectedBody:   `"theme":"light"`,
		},
		{
			name:           "нет пользователя в контексте",
			username:       "",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"unauthorized"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{data: make(map[string]string)}
			if tt.stored != "" {
				store.data[theme.Key(tt.username)] = tt.stored
			}

			handler := New(logger, store)

			req := httptest.NewRequest(http.MethodGet, "/preferences/theme"+tt.query, nil)
			if tt.username != "" {
				req = req.WithContext(context.WithValue(req.Context(), middlewarectx.User, tt.username))
			}

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())
		})
	}
}
