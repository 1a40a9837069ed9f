package filter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type testRow struct {
	Name       string
	Department string
	Status     string
}

func project(row testRow) Record {
	return Record{
		Fields: map[string]string{
			"department": row.Department,
			"status":     row.Status,
		},
		Searchable: []string{row.Name, row.Department},
	}
}

func testRows() []testRow {
	return []testRow{
		{Name: "Анна Серова", Department: "Engineering", Status: "active"},
		{Name: "Пётр Ильин", Department: "Design", Status: "active"},
		{Name: "Мария Кошкина", Department: "Engineering", Status: "paused"},
	}
}

func TestFilter(t *testing.T) {
	t.Run(`пустой фильтр возвращает всё`, func(t *testing.T) {
		result := Apply(testRows(), Spec{}, project)
		require.Len(t, result, 3)
	})

	t.Run(`точное совпадение поля без учёта регистра`, func(t *testing.T) {
		spec := Spec{Fields: map[string]string{"department": "engineering"}}
		result := Apply(testRows(), spec, project)
		require.Len(t, result, 2)
		require.Equal(t, "Анна Серова", result[0].Name)
		require.Equal(t, "Мария Кошкина", result[1].Name)
	})

	t.Run(`условия соединяются по И`, func(t *testing.T) {
		spec := Spec{Fields: map[string]string{
			"department": "Engineering",
			"status":     "active",
		}}
		result := Apply(testRows(), spec, project)
		require.Len(t, result, 1)
		require.Equal(t, "Анна Серова", result[0].Name)
	})

	t.Run(`поиск подстрокой без учёта регистра`, func(t *testing.T) {
		spec := Spec{Search: "кошкина"}
		result := Apply(testRows(), spec, project)
		require.Len(t, result, 1)
		require.Equal(t, "Мария Кошкина", result[0].Name)
	})

	t.Run(`неизвестное поле игнорируется`, func(t *testing.T) {
		spec := Spec{Fields: map[string]string{"unknown_field": "value"}}
		result := Apply(testRows(), spec, project)
		require.Len(t, result, 3)
	})

	t.Run(`пустое значение предиката игнорируется`, func(t *testing.T) {
		spec := Spec{Fields: map[string]string{"department": ""}}
		require.True(t, spec.IsEmpty())
		result := Apply(testRows(), spec, project)
		require.Len(t, result, 3)
	})

	t.Run(`повторное применение не меняет результат`, func(t *testing.T) {
		spec := Spec{Fields: map[string]string{"status": "active"}}
		first := Apply(testRows(), spec, project)
		second := Apply(first, spec, project)
		require.Equal(t, first, second)
	})

	t.Run(`имя поля в camelCase приводится к snake_case`, func(t *testing.T) {
		rows := []testRow{{Name: "Анна", Department: "Engineering", Status: "active"}}
		spec := Spec{Fields: map[string]string{"Department": "Engineering"}}
		result := Apply(rows, spec, project)
		require.Len(t, result, 1)
	})
}
