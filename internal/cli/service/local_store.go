package service

import (
	"FindIt/internal/cli/model"
	"FindIt/internal/cli/repo"
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// ItemsSlotKey — имя слота, в котором хранится массив записей.
const ItemsSlotKey = "lostFoundItems"

// LocalStore — типизированное зеркало слота key-value хранилища.
// Загружается при создании, каждое изменение синхронно записывается обратно.
type LocalStore struct {
	mu     sync.Mutex
	slots  repo.SlotStore
	key    string
	items  []model.Item
	logger *zap.SugaredLogger
}

var _ ItemStore = (*LocalStore)(nil)

// NewLocalStore загружает слот key. Пустой или отсутствующий слот инициализируется
// пустым массивом (и он же записывается в хранилище). Если значение не разбирается,
// используется def, а в лог пишется предупреждение.
func NewLocalStore(slots repo.SlotStore, key string, def []model.Item, logger *zap.SugaredLogger) (*LocalStore, error) {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	s := &LocalStore{slots: slots, key: key, logger: logger}

	raw, ok, err := slots.Load(key)
	if err != nil {
		return nil, fmt.Errorf("load slot %q: %w", key, err)
	}
	if !ok || raw == "" {
		s.items = []model.Item{}
		if err := s.save(s.items); err != nil {
			return nil, err
		}
		return s, nil
	}

	var items []model.Item
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		logger.Warnw("local store: cannot parse slot, using default", "key", key, "error", err)
		s.items = clone(def)
		return s, nil
	}
	if items == nil {
		// "null" в слоте
		items = []model.Item{}
	}
	s.items = items
	return s, nil
}

// Items возвращает копию текущего состояния.
func (s *LocalStore) Items() []model.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clone(s.items)
}

// Set заменяет массив целиком.
func (s *LocalStore) Set(items []model.Item) error {
	return s.Update(func([]model.Item) []model.Item { return items })
}

// Update применяет fn к предыдущему состоянию и сохраняет результат.
// При ошибке записи состояние в памяти не меняется.
func (s *LocalStore) Update(fn func(prev []model.Item) []model.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := fn(clone(s.items))
	if next == nil {
		next = []model.Item{}
	}
	if err := s.save(next); err != nil {
		return err
	}
	s.items = next
	return nil
}

// List возвращает записи в порядке хранения (новые добавляются в начало).
func (s *LocalStore) List(ctx context.Context) ([]model.Item, error) {
	return s.Items(), nil
}

// Create добавляет запись в начало массива.
func (s *LocalStore) Create(ctx context.Context, it model.Item) error {
	return s.Update(func(prev []model.Item) []model.Item {
		return append([]model.Item{it}, prev...)
	})
}

func (s *LocalStore) save(items []model.Item) error {
	b, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode slot %q: %w", s.key, err)
	}
	if err := s.slots.Save(s.key, string(b)); err != nil {
		return fmt.Errorf("save slot %q: %w", s.key, err)
	}
	return nil
}

func clone(items []model.Item) []model.Item {
	out := make([]model.Item, len(items))
	copy(out, items)
	return out
}
