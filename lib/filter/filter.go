package filter

import (
	"strings"

	"hr-pipeline-backend/lib/utils/helpers"
)

// Фильтрация снимка коллекции по пользовательскому фильтру.
// Операция чистая: без побочных эффектов, порядок записей сохраняется,
// некорректные части фильтра игнорируются, а не приводят к ошибке.

// Spec - спецификация фильтра: точные значения по именованным полям
// плюс поисковая подстрока по текстовым полям записи
type Spec struct {
	Search string
	Fields map[string]string
}

func (s Spec) IsEmpty() bool {
	if s.Search != "" {
		return false
	}
	for _, want := range s.Fields {
		if want != "" {
			return false
		}
	}
	return true
}

// Record - проекция записи для фильтрации
type Record struct {
	Fields     map[string]string // категориальные поля по имени
	Searchable []string          // текстовые поля для поиска подстрокой
}

// Match - логическое И всех заданных предикатов.
// Пустое значение предиката и неизвестное имя поля означают "совпадает всё".
func Match(spec Spec, rec Record) bool {
	for name, want := range spec.Fields {
		if want == "" {
			continue
		}
		got, ok := rec.Fields[helpers.ToSnakeCase(name)]
		if !ok {
			continue
		}
		if !strings.EqualFold(got, want) {
			return false
		}
	}
	if spec.Search != "" {
		needle := strings.ToLower(spec.Search)
		found := false
		for _, text := range rec.Searchable {
			if strings.Contains(strings.ToLower(text), needle) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Apply фильтрует список, сохраняя исходный порядок
func Apply[T any](list []T, spec Spec, project func(T) Record) []T {
	if spec.IsEmpty() {
		return list
	}
	result := make([]T, 0, len(list))
	for _, rec := range list {
		if Match(spec, project(rec)) {
			result = append(result, rec)
		}
	}
	return result
}
