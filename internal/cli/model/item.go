package model

// Типы записей.
const (
	TypeLost  = "lost"
	TypeFound = "found"
)

// Item — запись о потерянной или найденной вещи в клиентском (camelCase) виде.
// Отсутствующий контакт — nil, в JSON поле не выводится.
type Item struct {
	ID           string  `json:"id"`
	Type         string  `json:"type"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Location     string  `json:"location"`
	Date         string  `json:"date"` // YYYY-MM-DD
	ContactName  string  `json:"contactName"`
	ContactPhone *string `json:"contactPhone,omitempty"`
	ContactEmail *string `json:"contactEmail,omitempty"`
	Category     string  `json:"category"`
	CreatedAt    string  `json:"createdAt"` // ISO-8601
}

// ItemFormData — черновик формы отправки. Пустая строка в контактах означает "не указано".
type ItemFormData struct {
	Type         string
	Name         string
	Description  string
	Location     string
	Date         string
	ContactName  string
	ContactPhone string
	ContactEmail string
	Category     string
}

// Draft возвращает данные записи в виде черновика формы.
func (it Item) Draft() ItemFormData {
	return ItemFormData{
		Type:         it.Type,
		Name:         it.Name,
		Description:  it.Description,
		Location:     it.Location,
		Date:         it.Date,
		ContactName:  it.ContactName,
		ContactPhone: Deref(it.ContactPhone),
		ContactEmail: Deref(it.ContactEmail),
		Category:     it.Category,
	}
}

// Optional переводит строку формы в опциональное поле: "" → nil.
func Optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Deref переводит опциональное поле в строку формы: nil → "".
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
