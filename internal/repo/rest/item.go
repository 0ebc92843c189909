package rest

import (
	"context"
	"net/http"
	"net/url"

	"ItemGateway/internal/model"
	"ItemGateway/internal/repo"
	"ItemGateway/internal/supabase"
)

type itemRepo struct {
	client *supabase.Client
	table  string
}

// NewItemRepository создаёт репозиторий Item поверх PostgREST.
// Ответы отдаются как есть; в структуру декодируется только строка для составного удаления.
func NewItemRepository(client *supabase.Client, table string) repo.ItemRepository {
	return &itemRepo{client: client, table: table}
}

func (r *itemRepo) List(ctx context.Context, filter model.ItemFilter) ([]model.Record, error) {
	q := url.Values{}
	q.Set("select", "*")
	if filter.Situation != "" {
		eq(q, "situation", filter.Situation)
	}
	if filter.UserID != "" {
		eq(q, "user_id", filter.UserID)
	}
	items := []model.Record{}
	err := r.client.Do(ctx, supabase.Request{Method: http.MethodGet, Path: tablePath(r.table), Query: q}, &items)
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepo) GetByID(ctx context.Context, id string) (*model.Item, error) {
	q := url.Values{}
	q.Set("select", "*")
	eq(q, "id", id)
	var items []model.Item
	if err := r.client.Do(ctx, supabase.Request{Method: http.MethodGet, Path: tablePath(r.table), Query: q}, &items); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, repo.ErrNotFound
	}
	return &items[0], nil
}

func (r *itemRepo) Create(ctx context.Context, items []model.NewItem) ([]model.Record, error) {
	created := []model.Record{}
	if len(items) == 0 {
		return created, nil
	}
	err := r.client.Do(ctx, supabase.Request{
		Method: http.MethodPost,
		Path:   tablePath(r.table),
		Body:   items,
		Header: returnRepresentation(),
	}, &created)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *itemRepo) Update(ctx context.Context, id string, columns map[string]any) ([]model.Record, error) {
	q := url.Values{}
	eq(q, "id", id)
	updated := []model.Record{}
	err := r.client.Do(ctx, supabase.Request{
		Method: http.MethodPatch,
		Path:   tablePath(r.table),
		Query:  q,
		Body:   columns,
		Header: returnRepresentation(),
	}, &updated)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *itemRepo) Delete(ctx context.Context, id string) error {
	q := url.Values{}
	eq(q, "id", id)
	return r.client.Do(ctx, supabase.Request{Method: http.MethodDelete, Path: tablePath(r.table), Query: q}, nil)
}
