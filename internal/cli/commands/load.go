package commands

import (
	"FindIt/internal/cli/bootstrap"
	"FindIt/internal/cli/model"
	"FindIt/internal/cli/service"
	"FindIt/internal/config"
	"context"
	"fmt"
	"strings"
	"time"
)

// loadItems открывает хранилище и читает все записи.
// Ошибка загрузки выводится пользователю и возвращается как ErrReported.
func loadItems(ctx context.Context, cfg *config.Config) ([]model.Item, error) {
	st, done, err := bootstrap.OpenItemStore(cfg, logger)
	if err != nil {
		return nil, err
	}
	defer func() { _ = done() }()

	items, err := st.List(ctx)
	if err != nil {
		return nil, reportLoadError(cfg, err)
	}
	return items, nil
}

// findItem читает одну запись: напрямую, если хранилище это умеет, иначе поиском по списку.
func findItem(ctx context.Context, st service.ItemStore, id string) (model.Item, error) {
	if g, ok := st.(service.ItemGetter); ok {
		return g.Get(ctx, id)
	}
	items, err := st.List(ctx)
	if err != nil {
		return model.Item{}, err
	}
	for _, it := range items {
		if it.ID == id {
			return it, nil
		}
	}
	return model.Item{}, fmt.Errorf("%w: %s", service.ErrNotFound, id)
}

func reportLoadError(cfg *config.Config, err error) error {
	logger.Warnw("load items failed", "backend", cfg.StoreBackend, "error", err)
	fmt.Fprintf(Out, "Error loading items: %v\n", err)
	fmt.Fprintln(Out, "Run the command again to retry.")
	return ErrReported
}

// typeBadge — метка типа записи в списках.
func typeBadge(t string) string {
	return "[" + strings.ToUpper(t) + "]"
}

// humanDate форматирует YYYY-MM-DD как "January 2, 2006"; неразборчивое значение выводится как есть.
func humanDate(s string) string {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return s
	}
	return d.Format("January 2, 2006")
}

// humanTimestamp форматирует ISO-8601 отметку создания.
func humanTimestamp(s string) string {
	ts, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return s
	}
	return ts.Format("January 2, 2006")
}

func printItemLine(it model.Item) {
	fmt.Fprintf(Out, "  %-8s %s  %s, %s  (%s)  id=%s\n",
		typeBadge(it.Type), it.Name, it.Location, humanDate(it.Date), it.Category, it.ID)
}
