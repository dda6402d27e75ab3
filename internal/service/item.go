package service

import (
	"FindIt/internal/model"
	"FindIt/internal/repo"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ErrInvalidItem возвращается, если строка для вставки не проходит проверку схемы.
var ErrInvalidItem = errors.New("invalid item")

// ItemService инкапсулирует работу с таблицей items на стороне сервера.
type ItemService struct {
	repo   repo.ItemRepository
	logger *zap.SugaredLogger
	now    func() time.Time
}

func NewItemService(r repo.ItemRepository, logger *zap.SugaredLogger) *ItemService {
	return &ItemService{repo: r, logger: logger, now: time.Now}
}

// NewItem — входные данные вставки. ID и created_at назначает хранилище.
type NewItem struct {
	Type         string
	Name         string
	Description  string
	Location     string
	Date         string
	ContactName  string
	ContactPhone *string
	ContactEmail *string
	Category     string
}

// List возвращает все записи, новые сверху.
func (s *ItemService) List(ctx context.Context) ([]model.Item, error) {
	items, err := s.repo.ListNewestFirst(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// Get возвращает запись по id. Ошибка gorm.ErrRecordNotFound пробрасывается как есть.
func (s *ItemService) Get(ctx context.Context, id string) (*model.Item, error) {
	return s.repo.GetByID(ctx, id)
}

// Create проверяет обязательные колонки и вставляет строку.
// Наличие контакта здесь не проверяется: хранилище принимает записи без телефона и почты.
func (s *ItemService) Create(ctx context.Context, in NewItem) (*model.Item, error) {
	if err := checkColumns(in); err != nil {
		return nil, err
	}
	it := &model.Item{
		Type:         in.Type,
		Name:         in.Name,
		Description:  in.Description,
		Location:     in.Location,
		Date:         in.Date,
		ContactName:  in.ContactName,
		ContactPhone: nullIfEmpty(in.ContactPhone),
		ContactEmail: nullIfEmpty(in.ContactEmail),
		Category:     in.Category,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.repo.Create(ctx, it); err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	s.logger.Infow("item created", "id", it.ID, "type", it.Type, "category", it.Category)
	return it, nil
}

func checkColumns(in NewItem) error {
	required := []struct{ col, val string }{
		{"type", in.Type},
		{"name", in.Name},
		{"description", in.Description},
		{"location", in.Location},
		{"date", in.Date},
		{"contact_name", in.ContactName},
		{"category", in.Category},
	}
	var missing []string
	for _, r := range required {
		if strings.TrimSpace(r.val) == "" {
			missing = append(missing, r.col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidItem, strings.Join(missing, ", "))
	}
	if !model.IsType(in.Type) {
		return fmt.Errorf("%w: type must be lost or found, got %q", ErrInvalidItem, in.Type)
	}
	if !model.IsCategory(in.Category) {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidItem, in.Category)
	}
	return nil
}

func nullIfEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := *s
	return &v
}
