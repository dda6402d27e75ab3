package service

import (
	"FindIt/internal/cli/api"
	"FindIt/internal/cli/model"
	"context"
	"errors"
	"fmt"
	"sync"
)

// RemoteAPI — операции удалённого хранилища, которые использует RemoteStore.
type RemoteAPI interface {
	ListItems(ctx context.Context) ([]api.Row, error)
	GetItem(ctx context.Context, id string) (api.Row, error)
	InsertItem(ctx context.Context, in api.Insert) (api.Row, error)
}

var _ RemoteAPI = (*api.Client)(nil)

// AddResult — итог AddItem. При неудаче Error содержит сообщение для пользователя.
type AddResult struct {
	Success bool
	Error   string
}

// RemoteStore держит в памяти список записей сервера вместе с состоянием загрузки.
// Список обновляется только после завершения запроса: без повторов и оптимистичных правок.
type RemoteStore struct {
	api RemoteAPI

	mu      sync.RWMutex
	items   []model.Item
	loading bool
	err     string
}

var (
	_ ItemStore  = (*RemoteStore)(nil)
	_ ItemGetter = (*RemoteStore)(nil)
)

// NewRemoteStore создаёт хранилище. Loading() истинно до завершения первой загрузки.
func NewRemoteStore(c RemoteAPI) *RemoteStore {
	return &RemoteStore{api: c, items: []model.Item{}, loading: true}
}

// FetchItems загружает все записи (новые сверху) и обновляет состояние.
// Параллельные вызовы не объединяются: каждый выполняет свой запрос.
func (s *RemoteStore) FetchItems(ctx context.Context) ([]model.Item, error) {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	rows, err := s.api.ListItems(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.err = err.Error()
		return nil, err
	}
	items := make([]model.Item, 0, len(rows))
	for _, r := range rows {
		items = append(items, r.ToItem())
	}
	s.items = items
	return clone(items), nil
}

// Refetch — ручной перезапрос списка.
func (s *RemoteStore) Refetch(ctx context.Context) error {
	_, err := s.FetchItems(ctx)
	return err
}

// AddItem вставляет строку и затем полностью перезапрашивает список.
// Ошибки не возвращаются, а описываются в AddResult. Ошибка перезапроса после
// успешной вставки остаётся только в Err(): запись уже сохранена.
func (s *RemoteStore) AddItem(ctx context.Context, d model.ItemFormData) AddResult {
	if _, err := s.api.InsertItem(ctx, api.InsertFromDraft(d)); err != nil {
		return AddResult{Success: false, Error: err.Error()}
	}
	_ = s.Refetch(ctx)
	return AddResult{Success: true}
}

// Items возвращает последний загруженный список.
func (s *RemoteStore) Items() []model.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.items)
}

// Loading сообщает, выполняется ли загрузка.
func (s *RemoteStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err возвращает сообщение последней ошибки или пустую строку.
func (s *RemoteStore) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *RemoteStore) List(ctx context.Context) ([]model.Item, error) {
	return s.FetchItems(ctx)
}

// Create отправляет запись на сервер. id и createdAt назначает сервер.
func (s *RemoteStore) Create(ctx context.Context, it model.Item) error {
	res := s.AddItem(ctx, it.Draft())
	if !res.Success {
		return errors.New(res.Error)
	}
	return nil
}

// Get запрашивает одну строку по id. Состояние списка не меняется.
func (s *RemoteStore) Get(ctx context.Context, id string) (model.Item, error) {
	row, err := s.api.GetItem(ctx, id)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			return model.Item{}, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return model.Item{}, err
	}
	return row.ToItem(), nil
}
