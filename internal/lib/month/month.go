// Package month содержит арифметику календарных месяцев для сроков подписки.
package month

import (
	"time"
)

// AddOne возвращает дату через один календарный месяц.
//
// Используется наивное прибавление месяца без ограничения по длине целевого
// месяца: 31 января превращается во 2 или 3 марта. Такое поведение повторяет
// семантику клиентских дат исходного сервиса и зафиксировано тестами.
func AddOne(t time.Time) time.Time {
	return t.AddDate(0, 1, 0)
}
