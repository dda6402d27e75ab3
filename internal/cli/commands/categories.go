package commands

import (
	"FindIt/internal/config"
	"FindIt/internal/model"
	"context"
	"fmt"
)

type categoriesCmd struct{}

func (categoriesCmd) Name() string        { return "categories" }
func (categoriesCmd) Description() string { return "Список категорий" }
func (categoriesCmd) Usage() string       { return "categories" }

func (categoriesCmd) Run(_ context.Context, _ *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	for _, c := range model.Categories {
		fmt.Fprintln(Out, c)
	}
	return nil
}

func init() { RegisterCmd(categoriesCmd{}) }
