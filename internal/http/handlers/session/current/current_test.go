package current

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
	"github.com/pricexhq/pricex/internal/services/session"
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

func (s *fakeStore) Remove(_ context.Context, key string) error {
	delete(s.data, key)
	return nil
}

func TestCurrentHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		username       string
		stored         string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "запись сессии есть",
			username:       "soy",
			stored:         `{"username":"soy","id":"user_1"}`,
			expectedStatus: http.StatusOK,
			expectedBody:   `"authenticated":true`,
		},
		{
			name:           "записи сессии нет",
			username:       "soy",
			expectedStatus: http.StatusOK,
			expectedBody:   `"authenticated":false`,
		},
		{
			name:           "поврежденная запись трактуется как отсутствие",
			username:       "soy",
			stored:         `{"broken`,
			expectedStatus: http.StatusOK,
			expectedBody:   `"authenticated":false`,
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
				store.data[session.Key(tt.username)] = tt.stored
			}

			handler := New(logger, store)

			req := httptest.NewRequest(http.MethodGet, "/session", nil)
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
