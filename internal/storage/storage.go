// Package storage, удаление фотографий из bucket-хранилища.
package storage

import (
	"context"
	"errors"
	"strings"
)

// ErrEmptyKey: из URL не удалось получить ключ объекта.
var ErrEmptyKey = errors.New("empty object key")

// Store удаляет объекты из bucket по ключу.
type Store interface {
	Remove(ctx context.Context, keys ...string) error
}

// KeyFromURL возвращает последний сегмент URL после '/'.
// "https://x.supabase.co/storage/v1/object/public/fotos/abc123.jpg" -> "abc123.jpg"
func KeyFromURL(photoURL string) string {
	if i := strings.LastIndex(photoURL, "/"); i >= 0 {
		return photoURL[i+1:]
	}
	return photoURL
}

func checkKeys(keys []string) error {
	if len(keys) == 0 {
		return ErrEmptyKey
	}
	for _, k := range keys {
		if k == "" {
			return ErrEmptyKey
		}
	}
	return nil
}
