package formatting

import (
	"strconv"
	"strings"
	"time"
)

// pt-BR weekday abbreviations indexed by time.Weekday (Sunday first).
var weekdayShortNames = []string{"Dom", "Seg", "Ter", "Qua", "Qui", "Sex", "Sáb"}

// WeekdayShort derives the Brazilian-Portuguese weekday abbreviation from a
// raw "DD/MM/YYYY - HH:MM" slot string. It returns "" for anything it
// cannot trust: a missing " - " separator, a date portion without two
// slashes, non-numeric components, a month outside 1..12, a day outside
// 1..31, or a calendar-invalid date such as 30/02/2024. The calendar check
// is a round trip through time.Date, which silently normalizes overflowing
// days; if the reconstructed date differs from the parsed components the
// input was never a real date.
func WeekdayShort(raw string) string {
	parts := strings.Split(raw, " - ")
	if len(parts) != 2 {
		return ""
	}

	dateParts := strings.Split(parts[0], "/")
	if len(dateParts) != 3 {
		return ""
	}

	day, err := strconv.Atoi(dateParts[0])
	if err != nil {
		return ""
	}
	month, err := strconv.Atoi(dateParts[1])
	if err != nil {
		return ""
	}
	year, err := strconv.Atoi(dateParts[2])
	if err != nil {
		return ""
	}

	if month < 1 || month > 12 || day < 1 || day > 31 {
		return ""
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Year() != year || date.Month() != time.Month(month) || date.Day() != day {
		return ""
	}

	return weekdayShortNames[date.Weekday()]
}

// FormatSlotWithWeekday prefixes a slot string with its weekday
// abbreviation, e.g. "Qua, 25/12/2024 - 15:00". When no weekday can be
// derived the raw string is returned unchanged.
func FormatSlotWithWeekday(raw string) string {
	weekday := WeekdayShort(raw)
	if weekday == "" {
		return raw
	}
	return weekday + ", " + raw
}
