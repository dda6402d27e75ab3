package commands

import (
	"FindIt/internal/cli/bootstrap"
	"FindIt/internal/cli/model"
	"FindIt/internal/cli/service"
	"FindIt/internal/config"
	"context"
	"errors"
	"fmt"
)

type showCmd struct{}

func (showCmd) Name() string        { return "show" }
func (showCmd) Description() string { return "Подробности записи и контакты" }
func (showCmd) Usage() string       { return "show <id>" }

func (showCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 || args[0] == "" {
		return ErrUsage
	}
	st, done, err := bootstrap.OpenItemStore(cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = done() }()

	it, err := findItem(ctx, st, args[0])
	switch {
	case errors.Is(err, service.ErrNotFound):
		fmt.Fprintf(Out, "Item not found: %s\n", args[0])
		return ErrReported
	case err != nil:
		return reportLoadError(cfg, err)
	}
	printDetail(it)
	return nil
}

func printDetail(it model.Item) {
	dateLabel := "Date Lost"
	if it.Type == model.TypeFound {
		dateLabel = "Date Found"
	}
	fmt.Fprintln(Out, it.Name)
	fmt.Fprintf(Out, "%s %s\n", typeBadge(it.Type), it.Category)
	fmt.Fprintln(Out)
	fmt.Fprintf(Out, "Description: %s\n", it.Description)
	fmt.Fprintf(Out, "Location:    %s\n", it.Location)
	fmt.Fprintf(Out, "%s:   %s\n", dateLabel, humanDate(it.Date))
	fmt.Fprintln(Out)
	fmt.Fprintf(Out, "Contact: %s\n", it.ContactName)
	if it.ContactPhone != nil {
		fmt.Fprintf(Out, "  Call:  tel:%s\n", *it.ContactPhone)
	}
	if it.ContactEmail != nil {
		fmt.Fprintf(Out, "  Email: mailto:%s?subject=Regarding %s item: %s\n", *it.ContactEmail, it.Type, it.Name)
	}
	fmt.Fprintln(Out)
	fmt.Fprintf(Out, "Reported on %s\n", humanTimestamp(it.CreatedAt))
}

func init() { RegisterCmd(showCmd{}) }
