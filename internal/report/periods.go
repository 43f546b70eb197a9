package report

import (
	"fmt"
	"time"
)

var monthNames = [12]string{
	"Январь", "Февраль", "Март", "Апрель", "Май", "Июнь",
	"Июль", "Август", "Сентябрь", "Октябрь", "Ноябрь", "Декабрь",
}

// MonthLabel returns the Russian month name with year, e.g. "Июль 2026".
func MonthLabel(year, month int) string {
	if month < 1 || month > 12 {
		return fmt.Sprintf("%d-%d", year, month)
	}
	return fmt.Sprintf("%s %d", monthNames[month-1], year)
}

func monthKeyLabel(key string) string {
	var year, month int
	if _, err := fmt.Sscanf(key, "%d-%d", &year, &month); err != nil {
		return key
	}
	return MonthLabel(year, month)
}

// Period is one month+year option for the period filter.
type Period struct {
	Value string // "YYYY-M", matching the select value format
	Label string
	Year  int
	Month int
}

// PeriodOptions returns the last n months from now, newest first.
func PeriodOptions(now time.Time, n int) []Period {
	options := make([]Period, 0, n)
	for i := 0; i < n; i++ {
		d := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -i, 0)
		options = append(options, Period{
			Value: fmt.Sprintf("%d-%d", d.Year(), int(d.Month())),
			Label: MonthLabel(d.Year(), int(d.Month())),
			Year:  d.Year(),
			Month: int(d.Month()),
		})
	}
	return options
}

// PreviousMonth returns the month preceding now. The dashboard shows
// stats for the last complete month.
func PreviousMonth(now time.Time) (month, year int) {
	d := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -1, 0)
	return int(d.Month()), d.Year()
}
