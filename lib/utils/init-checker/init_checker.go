package initchecker

import "fmt"

// CheckInit принимает пары (имя, значение) и падает паникой при первой
// неинициализированной зависимости. Вызывается из NewHandler, чтобы
// нарушение порядка инициализации проявлялось на старте, а не в запросе.
func CheckInit(pairs ...any) {
	if len(pairs)%2 != 0 {
		panic("CheckInit: нечётное число аргументов")
	}
	for i := 0; i < len(pairs); i += 2 {
		name, ok := pairs[i].(string)
		if !ok {
			panic("CheckInit: первый элемент пары должен быть строкой")
		}
		if pairs[i+1] == nil {
			panic(fmt.Sprintf("зависимость %s не инициализирована", name))
		}
	}
}
