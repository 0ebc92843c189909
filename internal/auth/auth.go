// Package auth проверяет bearer-токены пользователей.
package auth

import (
	"context"
	"errors"
	"strings"
)

var (
	// ErrMissingToken: заголовок Authorization отсутствует или не Bearer.
	ErrMissingToken = errors.New("missing bearer token")
	// ErrInvalidToken: токен не прошёл проверку (подпись, срок действия, subject).
	ErrInvalidToken = errors.New("invalid or expired token")
)

// User получен из токена и нигде не сохраняется.
type User struct {
	ID    string
	Email string
}

// Verifier резолвит токен в пользователя. Ошибка проверки оборачивает ErrInvalidToken.
type Verifier interface {
	Verify(ctx context.Context, token string) (*User, error)
}

// BearerToken извлекает токен из значения заголовка "Authorization: Bearer <token>".
func BearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}
