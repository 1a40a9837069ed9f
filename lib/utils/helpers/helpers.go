package helpers

import (
	"regexp"
	"strings"
	"time"
)

var matchFirstCap = regexp.MustCompile("(.)([A-Z][a-z]+)")
var matchAllCap = regexp.MustCompile("([a-z0-9])([A-Z])")

func ToSnakeCase(str string) string {
	snake := matchFirstCap.ReplaceAllString(str, "${1}_${2}")
	snake = matchAllCap.ReplaceAllString(snake, "${1}_${2}")
	return strings.ToLower(snake)
}

// ParseDate разбирает дату в формате ДД.ММ.ГГГГ
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse("02.01.2006", dateStr)
}

// ParseTimeOfDay разбирает время слота в формате ЧЧ:ММ
func ParseTimeOfDay(timeStr string) (time.Time, error) {
	return time.Parse("15:04", timeStr)
}

// DayOf обнуляет время, оставляя календарную дату
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
