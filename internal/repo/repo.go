package repo

import (
	"context"
	"errors"
	"fmt"

	"ItemGateway/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrNotFound: ни одной строки там, где ожидалась ровно одна.
var ErrNotFound = errors.New("record not found")

// ItemRepository работает с таблицей items, имя таблицы задаётся при создании.
// Строки отдаются как Record без потери колонок; типизированно читается только GetByID.
type ItemRepository interface {
	// List возвращает строки, подходящие под все заданные фильтры (AND).
	List(ctx context.Context, filter model.ItemFilter) ([]model.Record, error)
	// GetByID возвращает одну строку или ErrNotFound.
	GetByID(ctx context.Context, id string) (*model.Item, error)
	// Create вставляет записи и возвращает созданные строки.
	Create(ctx context.Context, items []model.NewItem) ([]model.Record, error)
	// Update применяет частичное обновление и возвращает изменённые строки.
	Update(ctx context.Context, id string, columns map[string]any) ([]model.Record, error)
	// Delete удаляет строку по id.
	Delete(ctx context.Context, id string) error
}

type ProfileRepository interface {
	GetByID(ctx context.Context, id string) (model.Record, error)
	Update(ctx context.Context, id string, columns map[string]any) error
}

// InitDB открывает подключение к Postgres.
func InitDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return db, nil
}
