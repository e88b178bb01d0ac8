package themetoggle

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

func newFakeStore() *fakeStore {
	return &fakeStore{data: make(map[string]string)}
}

func (s *fakeStore) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *fakeStore) Set(_ context.Context, key, value string) error {
	s.data[key] = value
	return nil
}

func TestToggleHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		username       string
		stored         string
		query          string
		expectedStatus int
		expectedBody   string
		expectedStored string
	}{
		{
			name:           "светлая тема переключается в темную",
			username:       "soy",
			stored:         theme.ValueLight,
			expectedStatus: http.StatusOK,
			expectedBody:   `"theme":"dark"`,
			expectedStored: theme.ValueDark,
		},
		{
			name:           "темная тема переключается в светлую",
			username:       "soy",
			stored:         theme.ValueDark,
			expectedStatus: http.StatusOK,
			expectedBody:   `"theme":"light"`,
			expectedStored: theme.ValueLight,
		},
		{
			name:           "без значения и подсказки результат темный",
			username:       "soy",
			stored:         "",
			expectedStatus: http.StatusOK,
			expectedBody:   `"theme":"dark"`,
			expectedStored: theme.ValueDark,
		},
		{
			name:           "системная подсказка темной темы переключается в светлую",
			username:       "soy",
			stored:         "",
			query:          "?system=dark",
			expectedStatus: http.StatusOK,
			expectedBody:   `"theme":"light"`,
			expectedStored: theme.ValueLight,
		},
		{
			name:           "сохраненное значение имеет приоритет над подсказкой",
			username:       "soy",
			stored:         theme.ValueLight,
			query:          "?system=dark",
			expectedStatus: http.StatusOK,
			expectedBody:   `"theme":"dark"`,
			expectedStored: theme.ValueDark,
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
			store := newFakeStore()
			if tt.stored != "" {
				store.data[theme.Key(tt.username)] = tt.stored
			}

			handler := New(logger, store)

			req := httptest.NewRequest(http.MethodPut, "/preferences/theme/toggle"+tt.query, nil)
			if tt.username != "" {
				req = req.WithContext(context.WithValue(req.Context(), middlewarectx.User, tt.username))
			}

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			if tt.expectedStored != "" {
				assert.Equal(t, tt.expectedStored, store.data[theme.Key(tt.username)])
			}
		})
	}
}
