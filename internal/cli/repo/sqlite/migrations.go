package sqlite

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

// Встроенные SQL-миграции клиента (SQLite). Применяются по порядку имён файлов;
// каждая миграция должна быть идемпотентной.
//
//go:embed migrations/*.sql
var migrationsFS embed.FS

// migrations возвращает тексты миграций в порядке применения.
func migrations() ([]string, error) {
	names, err := fs.Glob(migrationsFS, "migrations/*.sql")
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	out := make([]string, 0, len(names))
	for _, n := range names {
		b, err := migrationsFS.ReadFile(n)
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", n, err)
		}
		out = append(out, string(b))
	}
	return out, nil
}
