package service

import (
	"FindIt/internal/cli/model"
	"slices"
	"strings"
)

// FilterAll — значение фильтра типа/категории "без ограничений".
const FilterAll = "all"

// Criteria — параметры поиска по списку.
type Criteria struct {
	Search   string
	Type     string // all | lost | found; пусто = all
	Category string // all | категория; пусто = all
}

// Active сообщает, задан ли хотя бы один фильтр.
func (c Criteria) Active() bool {
	return c.Search != "" || !isAll(c.Type) || !isAll(c.Category)
}

func isAll(v string) bool { return v == "" || v == FilterAll }

// Filter возвращает записи, удовлетворяющие всем условиям, сохраняя исходный порядок.
// Поиск — подстрока без учёта регистра в name, description или location.
// Функция чистая: результат зависит только от (items, c), его можно кэшировать по этой паре.
func Filter(items []model.Item, c Criteria) []model.Item {
	term := strings.ToLower(c.Search)
	out := make([]model.Item, 0, len(items))
	for _, it := range items {
		if !matchesSearch(it, term) {
			continue
		}
		if !isAll(c.Type) && it.Type != c.Type {
			continue
		}
		if !isAll(c.Category) && it.Category != c.Category {
			continue
		}
		out = append(out, it)
	}
	return out
}

func matchesSearch(it model.Item, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(it.Name), term) ||
		strings.Contains(strings.ToLower(it.Description), term) ||
		strings.Contains(strings.ToLower(it.Location), term)
}

// TypeCounts — число потерянных и найденных вещей.
type TypeCounts struct {
	Lost  int
	Found int
}

func CountByType(items []model.Item) TypeCounts {
	var c TypeCounts
	for _, it := range items {
		switch it.Type {
		case model.TypeLost:
			c.Lost++
		case model.TypeFound:
			c.Found++
		}
	}
	return c
}

// Recent возвращает первые n записей.
func Recent(items []model.Item, n int) []model.Item {
	if n < 0 {
		n = 0
	}
	if len(items) > n {
		items = items[:n]
	}
	return slices.Clone(items)
}
