package service

import (
	"FindIt/internal/cli/model"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDraft() model.ItemFormData {
	return model.ItemFormData{
		Type:         model.TypeLost,
		Name:         "Blue backpack",
		Description:  "Has a laptop sticker",
		Location:     "Library, 2nd floor",
		Date:         "2024-03-10",
		ContactName:  "Ann",
		ContactEmail: "ann@example.com",
		Category:     "Bags & Wallets",
	}
}

var testNow = time.Date(2024, 3, 15, 12, 30, 45, 123_000_000, time.UTC)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(d *model.ItemFormData)
		wantErr error
	}{
		{"valid", func(d *model.ItemFormData) {}, nil},
		{"phone only", func(d *model.ItemFormData) { d.ContactEmail = ""; d.ContactPhone = "555-0100" }, nil},
		{"today", func(d *model.ItemFormData) { d.Date = "2024-03-15" }, nil},
		{"missing description", func(d *model.ItemFormData) { d.Description = "" }, ErrMissingField},
		{"whitespace name is not empty", func(d *model.ItemFormData) { d.Name = "   " }, nil},
		{"whitespace phone counts as contact", func(d *model.ItemFormData) { d.ContactEmail = ""; d.ContactPhone = "  " }, nil},
		{"missing category", func(d *model.ItemFormData) { d.Category = "" }, ErrMissingField},
		{"no contact", func(d *model.ItemFormData) { d.ContactEmail = "" }, ErrMissingContact},
		{"bad type", func(d *model.ItemFormData) { d.Type = "stolen" }, ErrInvalidType},
		{"bad category", func(d *model.ItemFormData) { d.Category = "Pets" }, ErrInvalidCategory},
		{"bad date", func(d *model.ItemFormData) { d.Date = "10/03/2024" }, ErrInvalidDate},
		{"future date", func(d *model.ItemFormData) { d.Date = "2024-03-16" }, ErrFutureDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.mutate(&d)
			err := Validate(d, testNow)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_MissingFieldsListed(t *testing.T) {
	d := validDraft()
	d.Description = ""
	d.Location = ""
	err := Validate(d, testNow)
	require.ErrorIs(t, err, ErrMissingField)
	assert.Contains(t, err.Error(), "description, location")
}

func TestValidate_TodayIsSubmittersLocalDay(t *testing.T) {
	// 01:00 15 марта в UTC+5 — в UTC ещё 14 марта
	loc := time.FixedZone("UTC+5", 5*60*60)
	today := time.Date(2024, 3, 15, 1, 0, 0, 0, loc)
	d := validDraft()
	d.Date = "2024-03-15"
	assert.NoError(t, Validate(d, today))

	d.Date = "2024-03-16"
	assert.ErrorIs(t, Validate(d, today), ErrFutureDate)
}

func TestNewItem_StoresValuesAsEntered(t *testing.T) {
	d := validDraft()
	d.Name = "  Keys "
	d.ContactPhone = "  "
	it := NewItem(d, testNow)
	assert.Equal(t, "  Keys ", it.Name)
	assert.Equal(t, "  ", model.Deref(it.ContactPhone))
}

func TestNewItem(t *testing.T) {
	d := validDraft()
	it := NewItem(d, testNow)
	assert.Equal(t, "1710505845123", it.ID)
	assert.Equal(t, "2024-03-15T12:30:45.123Z", it.CreatedAt)
	assert.Equal(t, "ann@example.com", model.Deref(it.ContactEmail))
	assert.Nil(t, it.ContactPhone) // пустой телефон → отсутствует
	assert.Equal(t, d.Category, it.Category)
}

// recordingStore запоминает созданные записи.
type recordingStore struct {
	created []model.Item
	err     error
}

func (r *recordingStore) List(ctx context.Context) ([]model.Item, error) { return r.created, nil }
func (r *recordingStore) Create(ctx context.Context, it model.Item) error {
	if r.err != nil {
		return r.err
	}
	r.created = append(r.created, it)
	return nil
}

func TestSubmitter_Submit(t *testing.T) {
	st := &recordingStore{}
	s := NewSubmitter(st)
	s.now = func() time.Time { return testNow }

	it, err := s.Submit(context.Background(), validDraft())
	require.NoError(t, err)
	require.Len(t, st.created, 1)
	assert.Equal(t, it, st.created[0])
	assert.Equal(t, "Blue backpack", it.Name)
}

func TestSubmitter_InvalidDraftWritesNothing(t *testing.T) {
	st := &recordingStore{}
	s := NewSubmitter(st)
	s.now = func() time.Time { return testNow }

	d := validDraft()
	d.ContactEmail = ""
	_, err := s.Submit(context.Background(), d)
	assert.ErrorIs(t, err, ErrMissingContact)
	assert.Empty(t, st.created)
}

func TestSubmitter_StoreError(t *testing.T) {
	st := &recordingStore{err: errors.New("quota exceeded")}
	s := NewSubmitter(st)
	s.now = func() time.Time { return testNow }

	_, err := s.Submit(context.Background(), validDraft())
	assert.EqualError(t, err, "quota exceeded")
}

func TestSubmitter_WithLocalStore(t *testing.T) {
	slots := newMemSlots()
	ls, err := NewLocalStore(slots, ItemsSlotKey, nil, nil)
	require.NoError(t, err)
	s := NewSubmitter(ls)
	s.now = func() time.Time { return testNow }

	first := validDraft()
	_, err = s.Submit(context.Background(), first)
	require.NoError(t, err)

	second := validDraft()
	second.Type = model.TypeFound
	second.Name = "Keys"
	second.Category = "Keys"
	second.ContactEmail = ""
	second.ContactPhone = "555"
	s.now = func() time.Time { return testNow.Add(time.Second) }
	_, err = s.Submit(context.Background(), second)
	require.NoError(t, err)

	items := ls.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "Keys", items[0].Name) // новые сверху
	assert.Nil(t, items[0].ContactEmail)
	assert.Contains(t, slots.data[ItemsSlotKey], `"contactPhone":"555"`)
}
