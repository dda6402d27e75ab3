package repo

// SlotStore — порт долговременного key-value хранилища клиента.
// Значение слота — произвольная строка (как правило, JSON).
type SlotStore interface {
	// Load возвращает значение слота и признак его наличия.
	Load(key string) (value string, ok bool, err error)

	// Save записывает значение слота, заменяя предыдущее.
	Save(key, value string) error
}
