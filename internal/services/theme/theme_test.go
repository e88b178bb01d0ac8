package theme_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pricexhq/pricex/internal/services/theme"
)

type fakeStore struct {
	data   map[string]string
	getErr error
	setErr error
	writes int
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: map[string]string{}}
}

func (s *fakeStore) Get(_ context.Context, key string) (string, bool, error) {
	if s.getErr != nil {
		return "", false, s.getErr
	}
	val, ok := s.data[key]
	return val, ok, nil
}

func (s *fakeStore) Set(_ context.Context, key, value string) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.data[key] = value
	s.writes++
	return nil
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestInitialize_Resolution(t *testing.T) {
	tests := []struct {
		name              string
		stored            string
		hasStored         bool
		systemPrefersDark bool
		want              bool
	}{
		{
			name:              "no stored value, system prefers dark",
			systemPrefersDark: true,
			want:              true,
		},
		{
			name:              "no stored value, system prefers light",
			systemPrefersDark: false,
			want:              false,
		},
		{
			name:      "stored dark wins over system light",
			stored:    theme.ValueDark,
			hasStored: true,
			want:      true,
		},
		{
			name:              "stored light wins over system dark",
			stored:            theme.ValueLight,
			hasStored:         true,
			systemPrefersDark: true,
			want:              false,
		},
		{
			name:              "malformed stored value falls back to system",
			stored:            "midnight",
			hasStored:         true,
			systemPrefersDark: true,
			want:              true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			if tt.hasStored {
				store.data[theme.Key("soy")] = tt.stored
			}

			ctrl := theme.NewController(store, theme.Key("soy"), newNoopLogger())
			got := ctrl.Initialize(context.Background(), tt.systemPrefersDark)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, ctrl.IsDark())
		})
	}
}

func TestInitialize_StoreReadFailureFallsBackToSystem(t *testing.T) {
	store := newFakeStore()
	store.getErr = errors.New("store unavailable")

	ctrl := theme.NewController(store, theme.Key("soy"), newNoopLogger())
	got := ctrl.Initialize(context.Background(), true)

	assert.True(t, got)
}

func TestToggle_PersistsEachFlip(t *testing.T) {
	store := newFakeStore()
	ctrl := theme.NewController(store, theme.Key("soy"), newNoopLogger())

	original := ctrl.Initialize(context.Background(), true)
	assert.True(t, original)

	first := ctrl.Toggle(context.Background())
	assert.False(t, first)
	assert.Equal(t, theme.ValueLight, store.data[theme.Key("soy")])
	assert.Equal(t, 1, store.writes)

	second := ctrl.Toggle(context.Background())
	assert.Equal(t, original, second)
	assert.Equal(t, theme.ValueDark, store.data[theme.Key("soy")])
	assert.Equal(t, 2, store.writes)
}

func TestToggle_WriteFailureKeepsInMemoryValue(t *testing.T) {
	store := newFakeStore()
	store.setErr = errors.New("store unavailable")

	ctrl := theme.NewController(store, theme.Key("soy"), newNoopLogger())
	ctrl.Initialize(context.Background(), false)

	got := ctrl.Toggle(context.Background())
	assert.True(t, got)
	assert.True(t, ctrl.IsDark())
	assert.Empty(t, store.data)
}
