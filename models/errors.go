package models

import "errors"

// Типизированные ошибки движка подбора.
// Обработчики возвращают их (или обёртки через pkg/errors),
// контроллеры преобразуют в http-коды через errors.Is.
var (
	// ErrNotFound - запись с указанным идентификатором отсутствует
	ErrNotFound = errors.New("запись не найдена")
	// ErrValidation - нарушение инварианта сущности при создании/изменении
	ErrValidation = errors.New("данные не прошли проверку")
	// ErrInvalidTransition - недопустимая смена статуса
	ErrInvalidTransition = errors.New("недопустимая смена статуса")
	// ErrSchedulingConflict - пересечение интервью у одного интервьюера
	ErrSchedulingConflict = errors.New("интервал пересекается с другим интервью")
)
