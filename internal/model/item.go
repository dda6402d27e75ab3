package model

import "time"

// Item — серверная модель записи о потерянной или найденной вещи (таблица items).
// Опциональные контакты хранятся как NULL.
type Item struct {
	ID           string    `gorm:"primaryKey;type:uuid" json:"id"`
	Type         string    `gorm:"not null;size:8" json:"type"`
	Name         string    `gorm:"not null" json:"name"`
	Description  string    `gorm:"not null" json:"description"`
	Location     string    `gorm:"not null" json:"location"`
	Date         string    `gorm:"not null;size:10" json:"date"`
	ContactName  string    `gorm:"column:contact_name;not null" json:"contact_name"`
	ContactPhone *string   `gorm:"column:contact_phone" json:"contact_phone"`
	ContactEmail *string   `gorm:"column:contact_email" json:"contact_email"`
	Category     string    `gorm:"not null;index" json:"category"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime;index" json:"created_at"`
}

// Типы записей.
const (
	TypeLost  = "lost"
	TypeFound = "found"
)

// Categories — закрытый набор категорий, в порядке отображения.
var Categories = []string{
	"Electronics",
	"Jewelry",
	"Clothing",
	"Bags & Wallets",
	"Keys",
	"Documents",
	"Sports Equipment",
	"Books",
	"Toys",
	"Other",
}

// IsCategory сообщает, входит ли c в набор категорий.
func IsCategory(c string) bool {
	for _, known := range Categories {
		if known == c {
			return true
		}
	}
	return false
}

// IsType сообщает, является ли t допустимым типом записи.
func IsType(t string) bool {
	return t == TypeLost || t == TypeFound
}
