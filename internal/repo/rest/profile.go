package rest

import (
	"context"
	"net/http"
	"net/url"

	"ItemGateway/internal/model"
	"ItemGateway/internal/repo"
	"ItemGateway/internal/supabase"
)

type profileRepo struct {
	client *supabase.Client
	table  string
}

// NewProfileRepository создаёт репозиторий профилей поверх PostgREST.
func NewProfileRepository(client *supabase.Client, table string) repo.ProfileRepository {
	return &profileRepo{client: client, table: table}
}

func (r *profileRepo) GetByID(ctx context.Context, id string) (model.Record, error) {
	q := url.Values{}
	q.Set("select", "*")
	eq(q, "id", id)
	var rows []model.Record
	if err := r.client.Do(ctx, supabase.Request{Method: http.MethodGet, Path: tablePath(r.table), Query: q}, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, repo.ErrNotFound
	}
	return rows[0], nil
}

func (r *profileRepo) Update(ctx context.Context, id string, columns map[string]any) error {
	q := url.Values{}
	eq(q, "id", id)
	return r.client.Do(ctx, supabase.Request{
		Method: http.MethodPatch,
		Path:   tablePath(r.table),
		Query:  q,
		Body:   columns,
	}, nil)
}
