package repo

import (
	"FindIt/internal/model"
	"fmt"
	"strings"
	"testing"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// newTestDB инициализирует in-memory SQLite (modernc.org/sqlite) для тестов репозитория.
// Имя базы берётся из имени теста, чтобы тесты не делили данные.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: fmt.Sprintf("file:%s?mode=memory&cache=shared", name)}
	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}
	if err := db.AutoMigrate(&model.Item{}); err != nil {
		t.Fatalf("failed to automigrate: %v", err)
	}
	return db
}

func TestIsPostgresDSN(t *testing.T) {
	cases := map[string]bool{
		"postgres://u:p@localhost:5432/findit":     true,
		"postgresql://localhost/findit":            true,
		"host=localhost user=findit dbname=findit": true,
		"file:findit.db":                           false,
		"/var/lib/findit/findit.db":                false,
		"file::memory:?cache=shared":               false,
	}
	for dsn, want := range cases {
		if got := isPostgresDSN(dsn); got != want {
			t.Errorf("isPostgresDSN(%q) = %v, want %v", dsn, got, want)
		}
	}
}

func TestInitDB_SQLiteAndEmptyDSN(t *testing.T) {
	if _, err := InitDB(""); err == nil {
		t.Fatalf("expected error for empty dsn")
	}
	db, err := InitDB("file:initdb_test?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	if !db.Migrator().HasTable(&model.Item{}) {
		t.Fatalf("items table must exist after InitDB")
	}
}
