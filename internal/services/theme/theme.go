// Package theme реализует контроллер темы оформления.
//
// Значение разрешается с приоритетом: сохраненное предпочтение, затем
// системная подсказка клиента, затем светлая тема. После инициализации
// значение есть всегда.
package theme

import (
	"context"
	"log/slog"
	"sync"

	"github.com/pricexhq/pricex/internal/lib/sl"
)

// Значения, в которых тема хранится в хранилище предпочтений.
const (
	ValueDark  = "dark"
	ValueLight = "light"
)

// Store описывает контракт хранилища предпочтений для записи темы.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Key возвращает ключ записи темы пользователя в хранилище предпочтений.
func Key(username string) string {
	return "pricex:theme:" + username
}

// Controller владеет предпочтением темы одной сессии.
type Controller struct {
	mu     sync.Mutex
	store  Store
	key    string
	log    *slog.Logger
	isDark bool
}

// NewController создает контроллер темы.
func NewController(store Store, key string, log *slog.Logger) *Controller {
	return &Controller{
		store: store,
		key:   key,
		log:   log,
	}
}

// Initialize разрешает значение темы. Сохраненное значение имеет приоритет
// над системной подсказкой systemPrefersDark; некорректное сохраненное
// значение трактуется как отсутствующее. Ошибок не бывает: сбой чтения
// понижается до подсказки.
func (c *Controller) Initialize(ctx context.Context, systemPrefersDark bool) bool {
	const op = "theme.Initialize"

	c.mu.Lock()
	defer c.mu.Unlock()

	val, found, err := c.store.Get(ctx, c.key)
	if err != nil {
		c.log.Warn("failed to read theme preference", slog.String("op", op), sl.Err(err))
		c.isDark = systemPrefersDark
		return c.isDark
	}

	switch {
	case found && val == ValueDark:
		c.isDark = true
	case found && val == ValueLight:
		c.isDark = false
	default:
		c.isDark = systemPrefersDark
	}
	return c.isDark
}

// Toggle переключает тему и сохраняет новое значение. Сохранение
// best-effort: при сбое записи значение в памяти остается авторитетным
// для текущей сессии.
func (c *Controller) Toggle(ctx context.Context) bool {
	const op = "theme.Toggle"

	c.mu.Lock()
	defer c.mu.Unlock()

	c.isDark = !c.isDark
	if err := c.store.Set(ctx, c.key, c.value()); err != nil {
		c.log.Warn("failed to persist theme preference", slog.String("op", op), sl.Err(err))
	}
	return c.isDark
}

// IsDark возвращает текущее значение темы.
func (c *Controller) IsDark() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.isDark
}

func (c *Controller) value() string {
	if c.isDark {
		return ValueDark
	}
	return ValueLight
}
