package sqlite

import (
	"FindIt/internal/cli/repo"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// SlotRepositorySQLite — слоты key-value в локальной БД SQLite.
type SlotRepositorySQLite struct {
	db *sqlx.DB
}

var _ repo.SlotStore = (*SlotRepositorySQLite)(nil)

// Open открывает (и создаёт при необходимости) файл БД по пути dbPath.
func Open(dbPath string) (*SlotRepositorySQLite, error) {
	if dbPath == "" {
		return nil, errors.New("empty client db path")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o700); err != nil {
		return nil, err
	}
	db, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	return &SlotRepositorySQLite{db: db}, nil
}

// Close закрывает соединение с БД.
func (r *SlotRepositorySQLite) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

// Migrate гарантирует наличие необходимых таблиц.
func (r *SlotRepositorySQLite) Migrate() error {
	ddl, err := migrations()
	if err != nil {
		return err
	}
	for _, q := range ddl {
		if _, err := r.db.Exec(q); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// Load читает значение слота. Отсутствующий слот — ok=false без ошибки.
func (r *SlotRepositorySQLite) Load(key string) (string, bool, error) {
	var value string
	err := r.db.Get(&value, `SELECT value FROM slots WHERE name = ?`, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

// Save записывает значение слота (insert или replace).
func (r *SlotRepositorySQLite) Save(key, value string) error {
	if key == "" {
		return errors.New("empty slot key")
	}
	now := time.Now().Unix()
	_, err := r.db.Exec(`INSERT INTO slots(name, value, updated_at) VALUES(?, ?, ?)
        ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, now)
	return err
}
