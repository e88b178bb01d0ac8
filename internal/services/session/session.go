// Package session реализует контроллер пользовательской сессии.
//
// Контроллер владеет жизненным циклом идентичности: инициализация из
// хранилища предпочтений, вход через коллаборатора авторизации и выход.
// Состояние сессии — размеченное объединение: не инициализировано,
// аноним, аутентифицирован.
package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/pricexhq/pricex/internal/lib/sl"
	"github.com/pricexhq/pricex/internal/models"
)

// State описывает состояние сессии.
type State int

const (
	// StateUnresolved — до завершения первого чтения хранилища.
	StateUnresolved State = iota
	// StateAnonymous — идентичности нет.
	StateAnonymous
	// StateAuthenticated — идентичность установлена.
	StateAuthenticated
)

// Store описывает контракт хранилища предпочтений для записи сессии.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// Authorizer описывает коллаборатора авторизации: проверку пары
// логин/пароль с двумя исходами — идентичность либо ошибка.
type Authorizer interface {
	CheckCredentials(ctx context.Context, username, password string) (*models.Identity, error)
}

// Key возвращает ключ записи сессии пользователя в хранилище предпочтений.
func Key(username string) string {
	return "pricex:session:" + username
}

// Controller владеет идентичностью одной сессии. Страницы и обработчики
// читают только копию через Current.
type Controller struct {
	mu       sync.Mutex
	store    Store
	auth     Authorizer
	key      string
	log      *slog.Logger
	state    State
	identity *models.Identity
}

// NewController создает контроллер в состоянии StateUnresolved.
func NewController(store Store, auth Authorizer, key string, log *slog.Logger) *Controller {
	return &Controller{
		store: store,
		auth:  auth,
		key:   key,
		log:   log,
		state: StateUnresolved,
	}
}

// Initialize читает запись идентичности из хранилища ровно один раз.
// Состояние гарантированно покидает StateUnresolved: ошибка чтения и
// некорректные данные трактуются как отсутствие записи.
func (c *Controller) Initialize(ctx context.Context) {
	const op = "session.Initialize"

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateUnresolved {
		return
	}

	val, found, err := c.store.Get(ctx, c.key)
	if err != nil {
		c.log.Warn("failed to read session record, treating as absent",
			slog.String("op", op), sl.Err(err))
		c.state = StateAnonymous
		return
	}
	if !found {
		c.state = StateAnonymous
		return
	}

	var identity models.Identity
	if err := json.Unmarshal([]byte(val), &identity); err != nil || identity.Username == "" {
		c.log.Warn("malformed session record, treating as absent",
			slog.String("op", op), slog.String("key", c.key))
		c.state = StateAnonymous
		return
	}

	c.identity = &identity
	c.state = StateAuthenticated
}

// Login проверяет учетные данные через коллаборатора авторизации.
// При успехе идентичность сохраняется в хранилище до возврата из вызова,
// состояние становится StateAuthenticated. При ошибке состояние не меняется.
// Повторный вход в состоянии StateAuthenticated заменяет идентичность.
func (c *Controller) Login(ctx context.Context, username, password string) (*models.Identity, error) {
	const op = "session.Login"

	identity, err := c.auth.CheckCredentials(ctx, username, password)
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(identity)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.store.Set(ctx, c.key, string(raw)); err != nil {
		c.log.Error("failed to persist session record", slog.String("op", op), sl.Err(err))
		return nil, err
	}

	c.identity = identity
	c.state = StateAuthenticated
	return identity, nil
}

// Logout удаляет запись идентичности и переводит сессию в StateAnonymous.
// Идемпотентен: вызов в состоянии StateAnonymous ничего не меняет.
func (c *Controller) Logout(ctx context.Context) error {
	const op = "session.Logout"

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.store.Remove(ctx, c.key); err != nil {
		c.log.Error("failed to remove session record", slog.String("op", op), sl.Err(err))
		return err
	}

	c.identity = nil
	c.state = StateAnonymous
	return nil
}

// Current возвращает состояние сессии и копию идентичности, если она есть.
func (c *Controller) Current() (State, *models.Identity) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.identity == nil {
		return c.state, nil
	}
	identity := *c.identity
	return c.state, &identity
}
