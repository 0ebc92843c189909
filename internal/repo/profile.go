package repo

import (
	"context"

	"ItemGateway/internal/model"

	"gorm.io/gorm"
)

type profileRepo struct {
	db    *gorm.DB
	table string
}

// NewProfileRepository создаёт gorm-реализацию репозитория профилей.
func NewProfileRepository(db *gorm.DB, table string) ProfileRepository {
	return &profileRepo{db: db, table: table}
}

func (r *profileRepo) GetByID(ctx context.Context, id string) (model.Record, error) {
	var rows []map[string]any
	if err := r.db.WithContext(ctx).Table(r.table).Where("id = ?", id).Limit(1).Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return toRecord(rows[0])
}

func (r *profileRepo) Update(ctx context.Context, id string, columns map[string]any) error {
	return r.db.WithContext(ctx).Table(r.table).Where("id = ?", id).Updates(columns).Error
}
