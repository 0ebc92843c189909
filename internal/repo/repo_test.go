package repo

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"ItemGateway/internal/model"

	"github.com/stretchr/testify/require"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

const (
	testItemsTable     = "tabela1"
	testTextItemsTable = "tabela_uuid"
	testProfilesTable  = "usuario"
)

// itemRow: схема tabela1 в тестах. Breed шлюз не знает, он должен проходить насквозь.
type itemRow struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	Name      string
	Situation string `gorm:"index"`
	UserID    string `gorm:"index"`
	PhotoURL  string
	Breed     *string
}

// textItemRow: та же таблица, но с текстовым ключом (uuid).
type textItemRow struct {
	ID        string `gorm:"primaryKey"`
	Name      string
	Situation string
	UserID    string
	PhotoURL  string
}

type profileRow struct {
	ID       string `gorm:"primaryKey"`
	NameUser string `gorm:"column:nameUser"`
	Cel      *string
}

// newTestDB инициализирует in-memory SQLite (modernc.org/sqlite) для тестов репозитория.
// У каждого теста своя база, чтобы данные не пересекались.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: fmt.Sprintf("file:%s?mode=memory&cache=shared", name)}
	db, err := gorm.Open(dial, &gorm.Config{Logger: logger.Discard})
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}
	if err := db.Table(testItemsTable).AutoMigrate(&itemRow{}); err != nil {
		t.Fatalf("failed to automigrate items: %v", err)
	}
	if err := db.Table(testTextItemsTable).AutoMigrate(&textItemRow{}); err != nil {
		t.Fatalf("failed to automigrate text items: %v", err)
	}
	if err := db.Table(testProfilesTable).AutoMigrate(&profileRow{}); err != nil {
		t.Fatalf("failed to automigrate profiles: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// decodeRecord раскладывает Record в map для проверок.
func decodeRecord(t *testing.T, rec model.Record) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(rec, &m))
	return m
}
