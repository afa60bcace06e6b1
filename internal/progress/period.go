package progress

import (
	"math"
	"strings"
	"time"

	"coach-backend/internal/clock"
	"coach-backend/internal/store"
)

var dayNames = map[time.Weekday]string{
	time.Monday:    "Pazartesi",
	time.Tuesday:   "Salı",
	time.Wednesday: "Çarşamba",
	time.Thursday:  "Perşembe",
	time.Friday:    "Cuma",
	time.Saturday:  "Cumartesi",
	time.Sunday:    "Pazar",
}

// DayName is the Turkish weekday name.
func DayName(d time.Weekday) string {
	return dayNames[d]
}

type Day struct {
	Date      string
	Name      string
	Completed int
	Notes     int
	Rate      int
	Active    bool
}

// Week covers the seven calendar days ending today.
type Week struct {
	Days       []Day
	Average    float64
	ActiveDays int
	Weekend    bool
}

type Month struct {
	Name           string
	Completed      int
	Notes          int
	ActiveDays     int
	Average        float64
	DaysInMonth    int
	MonthEnd       bool
	LoggedDayCount int
}

// currentTaskCount is what historical days are rated against: the task count
// of today's project, not the one that existed on that day.
func currentTaskCount(doc *store.Document) int {
	if doc.Current == nil {
		return 0
	}
	return len(doc.Current.Tasks)
}

// Weekly builds the week ending at now, oldest day first.
func Weekly(doc *store.Document, now time.Time) Week {
	total := currentTaskCount(doc)
	w := Week{Days: make([]Day, 0, 7), Weekend: IsWeekend(now)}

	sum := 0
	for i := 6; i >= 0; i-- {
		date := now.AddDate(0, 0, -i)
		log := doc.Log(clock.Day(date))
		d := Day{
			Date:      clock.Day(date),
			Name:      DayName(date.Weekday()),
			Completed: len(log.CompletedTasks),
			Notes:     len(log.Notes),
		}
		d.Rate = Rate(d.Completed, total)
		d.Active = d.Completed > 0 || d.Notes > 0
		if d.Active {
			w.ActiveDays++
		}
		sum += d.Rate
		w.Days = append(w.Days, d)
	}
	w.Average = float64(sum) / 7
	return w
}

// Monthly aggregates every log dated in the calendar month of now.
func Monthly(doc *store.Document, now time.Time) Month {
	total := currentTaskCount(doc)
	prefix := now.Format("2006-01")
	m := Month{Name: now.Format("January 2006")}

	sum := 0
	for day, log := range doc.DailyLogs {
		if !strings.HasPrefix(day, prefix) {
			continue
		}
		m.LoggedDayCount++
		m.Completed += len(log.CompletedTasks)
		m.Notes += len(log.Notes)
		if len(log.CompletedTasks) > 0 || len(log.Notes) > 0 {
			m.ActiveDays++
		}
		sum += Rate(len(log.CompletedTasks), total)
	}
	if m.LoggedDayCount > 0 {
		m.Average = float64(sum) / float64(m.LoggedDayCount)
	}

	m.DaysInMonth = DaysInMonth(now)
	m.MonthEnd = IsMonthEnd(now)
	return m
}

func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// DaysInMonth is the day before the first of the next month. time.Date
// normalises month 13 into January of the following year.
func DaysInMonth(t time.Time) int {
	firstOfNext := time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, t.Location())
	return firstOfNext.AddDate(0, 0, -1).Day()
}

// IsMonthEnd reports whether t falls in the last three days of its month.
func IsMonthEnd(t time.Time) bool {
	return t.Day() >= DaysInMonth(t)-2
}

// Round1 rounds to one decimal place for display.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
