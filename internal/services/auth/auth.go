// Package auth содержит логику бизнес-уровня для работы с пользователями и аутентификацией.
//
// Сервис является тем самым "коллаборатором авторизации": проверка учетных
// данных всегда выполняется против реестра пользователей, а не против
// вшитой пары логин/пароль.
package auth

import (
	"context"
	"errors"

	"github.com/pricexhq/pricex/internal/lib/jwt"
	"github.com/pricexhq/pricex/internal/lib/password"
	"github.com/pricexhq/pricex/internal/models"
	"github.com/pricexhq/pricex/internal/storage/repository"
)

// ErrInvalidCredentials возвращается при неверной паре логин/пароль.
// Никакие состояния при этом не меняются.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// RegisterUser сохраняет нового пользователя и возвращает его UID.
	RegisterUser(ctx context.Context, user models.User) (string, error)

	// GetUserByUsername возвращает пользователя по имени или ошибку, если не найден.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// Service отвечает за регистрацию, проверку учетных данных и валидацию JWT.
type Service struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// NewService создает новый экземпляр Service.
func NewService(users UserRepository, jwtMaker jwt.Maker) *Service {
	return &Service{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// Register создает нового пользователя с хэшированием пароля.
func (s *Service) Register(ctx context.Context, email, username, rawPassword string) (string, error) {
	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return "", err
	}
	user := models.User{
		Email:        email,
		Username:     username,
		PasswordHash: hashed,
	}
	return s.users.RegisterUser(ctx, user)
}

// CheckCredentials проверяет пару логин/пароль и возвращает идентичность
// пользователя. Оба исхода — успех с идентичностью либо ErrInvalidCredentials.
func (s *Service) CheckCredentials(ctx context.Context, username, rawPassword string) (*models.Identity, error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &models.Identity{Username: user.Username, ID: user.UID}, nil
}

// IssueToken генерирует JWT для уже проверенной идентичности.
func (s *Service) IssueToken(identity *models.Identity) (string, error) {
	return s.jwtMaker.GenerateToken(identity.Username, identity.ID)
}

// ValidateToken проверяет JWT и возвращает идентичность и признак валидности.
func (s *Service) ValidateToken(_ context.Context, token string) (*models.Identity, bool, error) {
	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return nil, false, err
	}
	identity := &models.Identity{
		Username: claims.Username,
		ID:       claims.UserUID,
	}
	return identity, true, nil
}
