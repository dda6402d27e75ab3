package commands

import (
	"bytes"
	"path/filepath"
	"testing"

	"FindIt/internal/config"
)

// localConfig возвращает конфигурацию с локальным хранилищем во временном каталоге,
// чтобы база клиента создавалась в temp.
func localConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		StoreBackend: config.BackendLocal,
		ClientDBPath: filepath.Join(t.TempDir(), "db", "client.sqlite"),
	}
}

// перехват stdout на время теста
func withStdoutCapture(t *testing.T, fn func()) string {
	t.Helper()
	old := Out
	var buf bytes.Buffer
	Out = &buf
	defer func() { Out = old }()
	fn()
	return buf.String()
}
