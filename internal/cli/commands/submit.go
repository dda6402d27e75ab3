package commands

import (
	"FindIt/internal/cli/bootstrap"
	"FindIt/internal/cli/model"
	"FindIt/internal/cli/service"
	"FindIt/internal/config"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
)

type submitCmd struct{}

func (submitCmd) Name() string { return "submit" }
func (submitCmd) Description() string {
	return "Сообщить о потерянной или найденной вещи"
}
func (submitCmd) Usage() string {
	return "submit -type lost|found -name <n> -description <d> -location <l> -date YYYY-MM-DD " +
		"-contact-name <n> [-phone <p>] [-email <e>] -category <c>"
}

// validationErrs — ошибки проверки черновика, которые показываются как есть.
var validationErrs = []error{
	service.ErrMissingField,
	service.ErrMissingContact,
	service.ErrInvalidType,
	service.ErrInvalidCategory,
	service.ErrInvalidDate,
	service.ErrFutureDate,
}

func (submitCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("submit", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var d model.ItemFormData
	fs.StringVar(&d.Type, "type", model.TypeLost, "lost|found")
	fs.StringVar(&d.Name, "name", "", "item name")
	fs.StringVar(&d.Description, "description", "", "description")
	fs.StringVar(&d.Location, "location", "", "where it was lost or found")
	fs.StringVar(&d.Date, "date", "", "date, YYYY-MM-DD")
	fs.StringVar(&d.ContactName, "contact-name", "", "contact name")
	fs.StringVar(&d.ContactPhone, "phone", "", "contact phone")
	fs.StringVar(&d.ContactEmail, "email", "", "contact email")
	fs.StringVar(&d.Category, "category", "", "category, see `categories`")
	if err := fs.Parse(args); err != nil || fs.NArg() != 0 {
		return ErrUsage
	}

	st, done, err := bootstrap.OpenItemStore(cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = done() }()

	it, err := service.NewSubmitter(st).Submit(ctx, d)
	if err != nil {
		for _, v := range validationErrs {
			if errors.Is(err, v) {
				fmt.Fprintf(Out, "Cannot submit: %v\n", err)
				return ErrReported
			}
		}
		logger.Warnw("submit failed", "backend", cfg.StoreBackend, "error", err)
		fmt.Fprintf(Out, "Failed to add item: %v\n", err)
		return ErrReported
	}

	fmt.Fprintln(Out, "Success!")
	fmt.Fprintf(Out, "Your %s item %q has been added to our database.\n", it.Type, it.Name)
	if cfg.StoreBackend != config.BackendRemote {
		fmt.Fprintf(Out, "  id: %s\n", it.ID)
	}
	return nil
}

func init() { RegisterCmd(submitCmd{}) }
