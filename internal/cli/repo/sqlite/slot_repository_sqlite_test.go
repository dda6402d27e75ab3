package sqlite

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func openTemp(t *testing.T) (*SlotRepositorySQLite, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "nested", "client.sqlite")
	r, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = r.Close() })
	if err := r.Migrate(); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	return r, dbPath
}

func TestOpen_And_Migrate(t *testing.T) {
	_, dbPath := openTemp(t)
	if _, err := os.Stat(dbPath); err != nil {
		t.Fatalf("db file not created: %v", err)
	}
	// повторная миграция не падает
	r, err := Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	if err := r.Migrate(); err != nil {
		t.Fatalf("second Migrate: %v", err)
	}
}

func TestOpen_EmptyPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestLoad_Absent(t *testing.T) {
	r, _ := openTemp(t)
	v, ok, err := r.Load("lostFoundItems")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ok || v != "" {
		t.Fatalf("absent slot expected, got ok=%v v=%q", ok, v)
	}
}

func TestSave_ThenLoad_AndReplace(t *testing.T) {
	r, dbPath := openTemp(t)
	if err := r.Save("lostFoundItems", `[]`); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := r.Save("lostFoundItems", `[{"id":"1"}]`); err != nil {
		t.Fatalf("Save replace: %v", err)
	}
	if err := r.Save("other", `x`); err != nil {
		t.Fatalf("Save other: %v", err)
	}

	// значения переживают переоткрытие БД
	_ = r.Close()
	r2, err := Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer r2.Close()
	v, ok, err := r2.Load("lostFoundItems")
	if err != nil || !ok {
		t.Fatalf("Load after reopen: ok=%v err=%v", ok, err)
	}
	if v != `[{"id":"1"}]` {
		t.Fatalf("unexpected value: %q", v)
	}
	if err := r2.Save("", "v"); err == nil {
		t.Fatalf("expected error for empty key")
	}
}

func TestMigrations_Ordered(t *testing.T) {
	ddl, err := migrations()
	if err != nil {
		t.Fatalf("migrations: %v", err)
	}
	if len(ddl) == 0 || !strings.Contains(ddl[0], "CREATE TABLE IF NOT EXISTS slots") {
		t.Fatalf("first migration must create slots table, got %v", ddl)
	}
}
