package service

import (
	"context"
	"sync"

	"ItemGateway/internal/auth"
	"ItemGateway/internal/model"
	"ItemGateway/internal/repo"
	"ItemGateway/internal/storage"

	"github.com/stretchr/testify/mock"
)

// callLog: общий журнал вызовов, чтобы проверять порядок шагов между моками
type callLog struct {
	mu    sync.Mutex
	calls []string
}

func (l *callLog) add(s string) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, s)
}

func (l *callLog) all() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.calls...)
}

type mockItemRepo struct {
	mock.Mock
	log *callLog
}

func (m *mockItemRepo) List(ctx context.Context, filter model.ItemFilter) ([]model.Record, error) {
	args := m.Called(ctx, filter)
	if v, ok := args.Get(0).([]model.Record); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockItemRepo) GetByID(ctx context.Context, id string) (*model.Item, error) {
	m.log.add("items.GetByID " + id)
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockItemRepo) Create(ctx context.Context, items []model.NewItem) ([]model.Record, error) {
	args := m.Called(ctx, items)
	if v, ok := args.Get(0).([]model.Record); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockItemRepo) Update(ctx context.Context, id string, columns map[string]any) ([]model.Record, error) {
	args := m.Called(ctx, id, columns)
	if v, ok := args.Get(0).([]model.Record); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockItemRepo) Delete(ctx context.Context, id string) error {
	m.log.add("items.Delete " + id)
	return m.Called(ctx, id).Error(0)
}

var _ repo.ItemRepository = (*mockItemRepo)(nil)

type mockBlobStore struct {
	mock.Mock
	log *callLog
}

func (m *mockBlobStore) Remove(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		m.log.add("blobs.Remove " + k)
	}
	return m.Called(ctx, keys).Error(0)
}

var _ storage.Store = (*mockBlobStore)(nil)

type mockProfileRepo struct{ mock.Mock }

func (m *mockProfileRepo) GetByID(ctx context.Context, id string) (model.Record, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(model.Record); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockProfileRepo) Update(ctx context.Context, id string, columns map[string]any) error {
	return m.Called(ctx, id, columns).Error(0)
}

var _ repo.ProfileRepository = (*mockProfileRepo)(nil)

type mockVerifier struct{ mock.Mock }

func (m *mockVerifier) Verify(ctx context.Context, token string) (*auth.User, error) {
	args := m.Called(ctx, token)
	if v, ok := args.Get(0).(*auth.User); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ auth.Verifier = (*mockVerifier)(nil)
