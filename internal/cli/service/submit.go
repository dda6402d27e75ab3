package service

import (
	"FindIt/internal/cli/model"
	srvmodel "FindIt/internal/model"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Ошибки проверки черновика. Сообщения показываются пользователю.
var (
	ErrMissingField    = errors.New("missing information: please fill in all required fields")
	ErrMissingContact  = errors.New("contact information required: please provide either a phone number or email address")
	ErrInvalidType     = errors.New("type must be lost or found")
	ErrInvalidCategory = errors.New("unknown category")
	ErrInvalidDate     = errors.New("date must be in YYYY-MM-DD format")
	ErrFutureDate      = errors.New("date cannot be in the future")
)

// DateLayout — формат календарной даты записи.
const DateLayout = "2006-01-02"

// createdAtLayout — ISO-8601 с миллисекундами в UTC.
const createdAtLayout = "2006-01-02T15:04:05.000Z07:00"

// Validate проверяет черновик на дату today (учитывается только календарный день).
// Обязательное поле считается пустым только при нулевой длине; пробелы не обрезаются.
func Validate(d model.ItemFormData, today time.Time) error {
	required := []struct{ field, val string }{
		{"name", d.Name},
		{"description", d.Description},
		{"location", d.Location},
		{"date", d.Date},
		{"contact name", d.ContactName},
		{"category", d.Category},
	}
	var missing []string
	for _, r := range required {
		if r.val == "" {
			missing = append(missing, r.field)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w (%s)", ErrMissingField, strings.Join(missing, ", "))
	}
	if d.ContactPhone == "" && d.ContactEmail == "" {
		return ErrMissingContact
	}
	if !srvmodel.IsType(d.Type) {
		return fmt.Errorf("%w: %q", ErrInvalidType, d.Type)
	}
	if !srvmodel.IsCategory(d.Category) {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, d.Category)
	}
	date, err := time.Parse(DateLayout, d.Date)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, d.Date)
	}
	// календарный день берётся в локации today (у CLI — местное время),
	// а не в UTC: запись, сделанную после полуночи по местному времени, не отклоняем
	y, m, dd := today.Date()
	if date.After(time.Date(y, m, dd, 0, 0, 0, 0, time.UTC)) {
		return fmt.Errorf("%w: %s", ErrFutureDate, d.Date)
	}
	return nil
}

// NewItem формирует запись из проверенного черновика:
// id — миллисекунды с эпохи, createdAt — момент создания.
func NewItem(d model.ItemFormData, now time.Time) model.Item {
	return model.Item{
		ID:           strconv.FormatInt(now.UnixMilli(), 10),
		Type:         d.Type,
		Name:         d.Name,
		Description:  d.Description,
		Location:     d.Location,
		Date:         d.Date,
		ContactName:  d.ContactName,
		ContactPhone: model.Optional(d.ContactPhone),
		ContactEmail: model.Optional(d.ContactEmail),
		Category:     d.Category,
		CreatedAt:    now.UTC().Format(createdAtLayout),
	}
}

// Submitter проверяет черновики и передаёт записи в активное хранилище.
type Submitter struct {
	store ItemStore
	now   func() time.Time
}

func NewSubmitter(store ItemStore) *Submitter {
	return &Submitter{store: store, now: time.Now}
}

// Submit проверяет черновик и сохраняет запись. При ошибке проверки ничего не пишется.
func (s *Submitter) Submit(ctx context.Context, d model.ItemFormData) (model.Item, error) {
	now := s.now()
	if err := Validate(d, now); err != nil {
		return model.Item{}, err
	}
	it := NewItem(d, now)
	if err := s.store.Create(ctx, it); err != nil {
		return model.Item{}, err
	}
	return it, nil
}
