package service

import (
	"FindIt/internal/cli/model"
	"context"
	"errors"
)

// ErrNotFound — запись с таким id отсутствует в хранилище.
var ErrNotFound = errors.New("item not found")

// ItemStore — единый порт хранилища записей для всех команд клиента.
// Реализации: LocalStore (локальный слот) и RemoteStore (сервер).
type ItemStore interface {
	// List возвращает записи, новые сверху.
	List(ctx context.Context) ([]model.Item, error)

	// Create сохраняет полностью сформированную запись.
	Create(ctx context.Context, it model.Item) error
}

// ItemGetter — необязательная возможность хранилища: чтение одной записи без загрузки всего списка.
type ItemGetter interface {
	Get(ctx context.Context, id string) (model.Item, error)
}
