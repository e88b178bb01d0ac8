package list

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/pricexhq/pricex/internal/http/middlewarectx"
	"github.com/pricexhq/pricex/internal/models"
)

// MockService реализует интерфейс list.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context, username string, filter models.ActivityFilter) ([]*models.ActivityRecord, error) {
	args := m.Called(ctx, username, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ActivityRecord), args.Error(1)
}

func TestListHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		url            string
		username       string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:     "список без фильтров",
			url:      "/activities",
			username: "soy",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything, "soy", models.ActivityFilter{}).Return([]*models.ActivityRecord{
					{
						ID:            1,
						Username:      "soy",
						Kind:          models.ActivityPricePrediction,
						Product:       "iPhone 13",
						ResultSummary: "Rec. Price: $110.00",
						OccurredAt:    now,
					},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"result_summary":"Rec. Price: $110.00"`,
		},
		{
			name:     "фильтры из запроса",
			url:      "/activities?kind=ad_generation&search=tweet&limit=5&offset=10",
			username: "soy",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything, "soy", models.ActivityFilter{
					Kind:   models.ActivityAdGeneration,
					Search: "tweet",
					Limit:  5,
					Offset: 10,
				}).Return([]*models.ActivityRecord{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"status":"OK"`,
		},
		{
			name:           "некорректный limit",
			url:            "/activities?limit=ten",
			username:       "soy",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid limit"}`,
		},
		{
			name:           "нет пользователя в контексте",
			url:            "/activities",
			username:       "",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"unauthorized"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			if tt.username != "" {
				req = req.WithContext(context.WithValue(req.Context(), middlewarectx.User, tt.username))
			}

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
