package service

import (
	"context"
	"strings"

	"ItemGateway/internal/auth"
	"ItemGateway/internal/model"
	"ItemGateway/internal/repo"

	"go.uber.org/zap"
)

// UserService отвечает за текущего пользователя и профили.
type UserService struct {
	profiles repo.ProfileRepository
	verifier auth.Verifier
	logger   *zap.SugaredLogger
}

func NewUserService(profiles repo.ProfileRepository, verifier auth.Verifier, logger *zap.SugaredLogger) *UserService {
	return &UserService{profiles: profiles, verifier: verifier, logger: logger}
}

// CurrentUser резолвит значение заголовка Authorization.
// Без bearer-токена сервис аутентификации не вызывается.
func (s *UserService) CurrentUser(ctx context.Context, authHeader string) (*auth.User, error) {
	token, ok := auth.BearerToken(authHeader)
	if !ok {
		return nil, auth.ErrMissingToken
	}
	u, err := s.verifier.Verify(ctx, token)
	if err != nil {
		s.logger.Debugw("CurrentUser: token rejected", "error", err)
		return nil, err
	}
	return u, nil
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (model.Record, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrMissingID
	}
	return s.profiles.GetByID(ctx, userID)
}

func (s *UserService) UpdateProfile(ctx context.Context, userID string, upd model.ProfileUpdate) error {
	if strings.TrimSpace(userID) == "" {
		return ErrMissingID
	}
	cols := upd.Columns()
	if len(cols) == 0 {
		return ErrEmptyUpdate
	}
	return s.profiles.Update(ctx, userID, cols)
}
