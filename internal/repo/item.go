package repo

import (
	"context"
	"encoding/json"
	"fmt"

	"ItemGateway/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type itemRepo struct {
	db    *gorm.DB
	table string
}

// NewItemRepository создаёт gorm-реализацию репозитория для Item.
// Тип ключа не важен: строки читаются в map, id передаётся в запрос как есть.
func NewItemRepository(db *gorm.DB, table string) ItemRepository {
	return &itemRepo{db: db, table: table}
}

func (r *itemRepo) q(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Table(r.table)
}

func (r *itemRepo) List(ctx context.Context, filter model.ItemFilter) ([]model.Record, error) {
	q := r.q(ctx)
	if filter.Situation != "" {
		q = q.Where("situation = ?", filter.Situation)
	}
	if filter.UserID != "" {
		q = q.Where("user_id = ?", filter.UserID)
	}
	var rows []map[string]any
	if err := q.Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return toRecords(rows)
}

func (r *itemRepo) GetByID(ctx context.Context, id string) (*model.Item, error) {
	var rows []map[string]any
	if err := r.q(ctx).Where("id = ?", id).Limit(1).Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	rec, err := toRecord(rows[0])
	if err != nil {
		return nil, err
	}
	var it model.Item
	if err := json.Unmarshal(rec, &it); err != nil {
		return nil, fmt.Errorf("decode item: %w", err)
	}
	return &it, nil
}

// Create вставляет строки через INSERT ... RETURNING *, чтобы вернуть их целиком
// (ключ и значения по умолчанию проставляет база).
func (r *itemRepo) Create(ctx context.Context, items []model.NewItem) ([]model.Record, error) {
	created := []model.Record{}
	if len(items) == 0 {
		return created, nil
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, n := range items {
			var rows []map[string]any
			err := tx.Raw("INSERT INTO ? (name, situation, user_id) VALUES (?, ?, ?) RETURNING *",
				clause.Table{Name: r.table}, n.Name, n.Situation, n.UserID).Scan(&rows).Error
			if err != nil {
				return err
			}
			recs, err := toRecords(rows)
			if err != nil {
				return err
			}
			created = append(created, recs...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *itemRepo) Update(ctx context.Context, id string, columns map[string]any) ([]model.Record, error) {
	var rows []map[string]any
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Table(r.table).Where("id = ?", id).Updates(columns).Error; err != nil {
			return err
		}
		return tx.Table(r.table).Where("id = ?", id).Find(&rows).Error
	})
	if err != nil {
		return nil, err
	}
	return toRecords(rows)
}

func (r *itemRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Exec("DELETE FROM ? WHERE id = ?", clause.Table{Name: r.table}, id).Error
}
