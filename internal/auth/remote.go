package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"ItemGateway/internal/supabase"
)

// RemoteVerifier спрашивает у сервиса аутентификации, кому принадлежит токен.
type RemoteVerifier struct {
	client *supabase.Client
}

func NewRemoteVerifier(client *supabase.Client) *RemoteVerifier {
	return &RemoteVerifier{client: client}
}

type remoteUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Verify вызывает GET /auth/v1/user с токеном пользователя.
// 401/403 от сервиса превращаются в ErrInvalidToken, ответ сервиса остаётся в цепочке ошибок.
func (v *RemoteVerifier) Verify(ctx context.Context, token string) (*User, error) {
	var u remoteUser
	err := v.client.Do(ctx, supabase.Request{Method: http.MethodGet, Path: "/auth/v1/user", Token: token}, &u)
	if err != nil {
		var se *supabase.Error
		if errors.As(err, &se) && (se.Status == http.StatusUnauthorized || se.Status == http.StatusForbidden) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
		}
		return nil, err
	}
	if u.ID == "" {
		return nil, fmt.Errorf("%w: user id missing in response", ErrInvalidToken)
	}
	return &User{ID: u.ID, Email: u.Email}, nil
}
