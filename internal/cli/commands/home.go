package commands

import (
	"FindIt/internal/cli/service"
	"FindIt/internal/config"
	"context"
	"fmt"
)

// recentCount — сколько последних записей показывает сводка.
const recentCount = 6

type homeCmd struct{}

func (homeCmd) Name() string { return "home" }
func (homeCmd) Description() string {
	return "Сводка: количество записей и последние сообщения"
}
func (homeCmd) Usage() string { return "home" }

func (homeCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	items, err := loadItems(ctx, cfg)
	if err != nil {
		return err
	}
	counts := service.CountByType(items)

	fmt.Fprintln(Out, "FindIt - Community Lost & Found")
	fmt.Fprintf(Out, "Lost: %d   Found: %d   Total: %d\n", counts.Lost, counts.Found, len(items))
	fmt.Fprintln(Out)
	if len(items) == 0 {
		fmt.Fprintln(Out, "No items reported yet")
		fmt.Fprintln(Out, "Use `submit` to report a lost or found item.")
		return nil
	}
	fmt.Fprintln(Out, "Recent reports:")
	for _, it := range service.Recent(items, recentCount) {
		printItemLine(it)
	}
	if len(items) > recentCount {
		fmt.Fprintln(Out, "Use `browse` to see all items.")
	}
	return nil
}

func init() { RegisterCmd(homeCmd{}) }
