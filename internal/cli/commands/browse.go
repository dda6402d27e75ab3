package commands

import (
	"FindIt/internal/cli/service"
	"FindIt/internal/config"
	srvmodel "FindIt/internal/model"
	"context"
	"flag"
	"fmt"
	"io"
)

type browseCmd struct{}

func (browseCmd) Name() string        { return "browse" }
func (browseCmd) Description() string { return "Поиск и фильтрация записей" }
func (browseCmd) Usage() string {
	return "browse [-q <text>] [-type all|lost|found] [-category <name>]"
}

func (browseCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("browse", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var c service.Criteria
	fs.StringVar(&c.Search, "q", "", "search in name, description and location")
	fs.StringVar(&c.Type, "type", service.FilterAll, "all|lost|found")
	fs.StringVar(&c.Category, "category", service.FilterAll, "category or all")
	if err := fs.Parse(args); err != nil || fs.NArg() != 0 {
		return ErrUsage
	}
	if c.Type != service.FilterAll && !srvmodel.IsType(c.Type) {
		return ErrUsage
	}
	if c.Category != service.FilterAll && !srvmodel.IsCategory(c.Category) {
		fmt.Fprintf(Out, "Unknown category %q, see `categories`\n", c.Category)
		return ErrUsage
	}

	items, err := loadItems(ctx, cfg)
	if err != nil {
		return err
	}
	counts := service.CountByType(items)
	fmt.Fprintf(Out, "Total: %d items (Lost: %d, Found: %d)\n", len(items), counts.Lost, counts.Found)

	filtered := service.Filter(items, c)
	if c.Active() {
		fmt.Fprintf(Out, "Showing %d results\n", len(filtered))
	}
	fmt.Fprintln(Out)

	switch {
	case len(items) == 0:
		fmt.Fprintln(Out, "No items reported yet")
	case len(filtered) == 0:
		fmt.Fprintln(Out, "No items match your search")
		fmt.Fprintln(Out, "Try adjusting your search or filters.")
	default:
		for _, it := range filtered {
			printItemLine(it)
		}
	}
	return nil
}

func init() { RegisterCmd(browseCmd{}) }
