package api

import (
	"FindIt/internal/cli/model"
	"encoding/json"
	"fmt"
)

// RowID — идентификатор строки. Хранилище может отдавать его строкой или числом.
type RowID string

func (id *RowID) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = RowID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("row id: %w", err)
	}
	*id = RowID(n.String())
	return nil
}

// Row — строка таблицы items в проводном формате (snake_case, контакты nullable).
type Row struct {
	ID           RowID   `json:"id"`
	Type         string  `json:"type"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Location     string  `json:"location"`
	Date         string  `json:"date"`
	ContactName  string  `json:"contact_name"`
	ContactPhone *string `json:"contact_phone"`
	ContactEmail *string `json:"contact_email"`
	Category     string  `json:"category"`
	CreatedAt    string  `json:"created_at"`
}

// Insert — тело вставки. Отсутствующий контакт уходит явным null.
type Insert struct {
	Type         string  `json:"type"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Location     string  `json:"location"`
	Date         string  `json:"date"`
	ContactName  string  `json:"contact_name"`
	ContactPhone *string `json:"contact_phone"`
	ContactEmail *string `json:"contact_email"`
	Category     string  `json:"category"`
}

// ToItem переводит строку в клиентскую запись: null и пустая строка → отсутствующее поле.
func (r Row) ToItem() model.Item {
	return model.Item{
		ID:           string(r.ID),
		Type:         r.Type,
		Name:         r.Name,
		Description:  r.Description,
		Location:     r.Location,
		Date:         r.Date,
		ContactName:  r.ContactName,
		ContactPhone: model.Optional(model.Deref(r.ContactPhone)),
		ContactEmail: model.Optional(model.Deref(r.ContactEmail)),
		Category:     r.Category,
		CreatedAt:    r.CreatedAt,
	}
}

// InsertFromDraft строит тело вставки из черновика: пустая строка → null.
func InsertFromDraft(d model.ItemFormData) Insert {
	return Insert{
		Type:         d.Type,
		Name:         d.Name,
		Description:  d.Description,
		Location:     d.Location,
		Date:         d.Date,
		ContactName:  d.ContactName,
		ContactPhone: model.Optional(d.ContactPhone),
		ContactEmail: model.Optional(d.ContactEmail),
		Category:     d.Category,
	}
}
