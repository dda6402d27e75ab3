package repo

import (
	"FindIt/internal/model"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ItemRepository определяет минимальный контракт доступа к таблице items для слоя сервиса.
type ItemRepository interface {
	// ListNewestFirst возвращает все записи, отсортированные по created_at DESC.
	ListNewestFirst(ctx context.Context) ([]model.Item, error)

	// GetByID возвращает запись по id или gorm.ErrRecordNotFound.
	GetByID(ctx context.Context, id string) (*model.Item, error)

	// Create вставляет новую запись. Пустой ID заполняется UUID, created_at ставит БД-слой.
	Create(ctx context.Context, it *model.Item) error
}

type itemRepo struct {
	db *gorm.DB
}

// NewItemRepository создаёт реализацию репозитория для Item.
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepo{db: db}
}

func (r *itemRepo) ListNewestFirst(ctx context.Context) ([]model.Item, error) {
	var items []model.Item
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepo) GetByID(ctx context.Context, id string) (*model.Item, error) {
	var it model.Item
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&it).Error; err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *itemRepo) Create(ctx context.Context, it *model.Item) error {
	if it.ID == "" {
		it.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(it).Error
}
