package storage

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"ItemGateway/internal/supabase"
)

// SupabaseStore удаляет объекты через Storage API проекта.
type SupabaseStore struct {
	client *supabase.Client
	bucket string
}

func NewSupabaseStore(client *supabase.Client, bucket string) *SupabaseStore {
	return &SupabaseStore{client: client, bucket: bucket}
}

type removeRequest struct {
	Prefixes []string `json:"prefixes"`
}

// Remove вызывает DELETE /storage/v1/object/{bucket} со списком ключей.
func (s *SupabaseStore) Remove(ctx context.Context, keys ...string) error {
	if err := checkKeys(keys); err != nil {
		return err
	}
	err := s.client.Do(ctx, supabase.Request{
		Method: http.MethodDelete,
		Path:   "/storage/v1/object/" + url.PathEscape(s.bucket),
		Body:   removeRequest{Prefixes: keys},
	}, nil)
	if err != nil {
		return fmt.Errorf("remove %v from %s: %w", keys, s.bucket, err)
	}
	return nil
}
