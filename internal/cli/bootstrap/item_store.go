package bootstrap

import (
	"FindIt/internal/cli/api"
	"FindIt/internal/cli/model"
	reposqlite "FindIt/internal/cli/repo/sqlite"
	"FindIt/internal/cli/service"
	"FindIt/internal/config"
	"fmt"

	"go.uber.org/zap"
)

// OpenItemStore открывает хранилище записей, выбранное в конфигурации,
// и возвращает (store, cleanup, error).
// cleanup необходимо вызвать после окончания работы, чтобы закрыть соединение с БД.
func OpenItemStore(cfg *config.Config, logger *zap.SugaredLogger) (service.ItemStore, func() error, error) {
	if cfg.StoreBackend == config.BackendRemote {
		st := service.NewRemoteStore(api.NewClient(cfg.ServerURL))
		return st, func() error { return nil }, nil
	}

	r, err := reposqlite.Open(cfg.ClientDBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open client db: %w", err)
	}
	if err := r.Migrate(); err != nil {
		_ = r.Close()
		return nil, nil, fmt.Errorf("migrate client db: %w", err)
	}
	st, err := service.NewLocalStore(r, service.ItemsSlotKey, []model.Item{}, logger)
	if err != nil {
		_ = r.Close()
		return nil, nil, err
	}
	cleanup := func() error { return r.Close() }
	return st, cleanup, nil
}
