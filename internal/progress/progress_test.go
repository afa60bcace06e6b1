package progress

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coach-backend/internal/store"
)

// 2026-10-19 is a Monday.
var today = time.Date(2026, time.October, 19, 14, 0, 0, 0, time.Local)

func TestRate(t *testing.T) {
	assert.Equal(t, 0, Rate(0, 0))
	assert.Equal(t, 0, Rate(3, 0))
	assert.Equal(t, 33, Rate(1, 3))
	assert.Equal(t, 66, Rate(2, 3))
	assert.Equal(t, 100, Rate(3, 3))
	assert.Equal(t, 29, Rate(29, 100))

	for total := 1; total <= 40; total++ {
		for done := 0; done <= total; done++ {
			r := Rate(done, total)
			require.GreaterOrEqual(t, r, 0)
			require.LessOrEqual(t, r, 100)
			require.Equal(t, (100*done)/total, r, fmt.Sprintf("%d/%d", done, total))
		}
	}
}

func TestTodayNoProject(t *testing.T) {
	s := Today(store.NewDocument(), today)
	assert.Equal(t, "", s.Goal)
	assert.Zero(t, s.Total)
	assert.Zero(t, s.Rate)
	assert.Empty(t, s.Remaining)
	assert.Empty(t, s.Notes)
}

func TestToday(t *testing.T) {
	doc := store.NewDocument()
	doc.ReplaceProject("learn go", 4, []string{"a", "b", "c", "d"}, today)
	_, err := doc.CompleteTask(2, today)
	require.NoError(t, err)
	_, err = doc.CompleteTask(0, today.AddDate(0, 0, -1))
	require.NoError(t, err)
	require.NoError(t, doc.AddNote("note", today))
	require.NoError(t, doc.AddNote("old", today.AddDate(0, 0, -1)))

	s := Today(doc, today)
	assert.Equal(t, "learn go", s.Goal)
	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 2, s.Completed)
	assert.Equal(t, 50, s.Rate)
	assert.Equal(t, []string{"c", "a"}, s.CompletedTasks)
	assert.Equal(t, []string{"b", "d"}, s.Remaining)
	assert.Equal(t, []string{"note"}, s.NoteTexts())
}

func TestStatus(t *testing.T) {
	assert.Equal(t, "Başlangıç aşaması", Status(0))
	assert.Equal(t, "Başlangıç aşaması", Status(29))
	assert.Equal(t, "İlerleme var", Status(30))
	assert.Equal(t, "Bitirmeye yakın", Status(70))
	assert.Equal(t, "Bitirmeye yakın", Status(99))
	assert.Equal(t, "Tamamlandı 🎉", Status(100))
}

func weekDoc(t *testing.T) *store.Document {
	t.Helper()
	doc := store.NewDocument()
	doc.ReplaceProject("g", 4, []string{"a", "b", "c", "d"}, today.AddDate(0, 0, -10))
	_, err := doc.CompleteTask(0, today.AddDate(0, 0, -6))
	require.NoError(t, err)
	_, err = doc.CompleteTask(1, today)
	require.NoError(t, err)
	_, err = doc.CompleteTask(2, today)
	require.NoError(t, err)
	require.NoError(t, doc.AddNote("x", today.AddDate(0, 0, -3)))
	// outside the window
	_, err = doc.CompleteTask(3, today.AddDate(0, 0, -7))
	require.NoError(t, err)
	return doc
}

func TestWeekly(t *testing.T) {
	w := Weekly(weekDoc(t), today)

	require.Len(t, w.Days, 7)
	assert.Equal(t, "2026-10-13", w.Days[0].Date)
	assert.Equal(t, "Salı", w.Days[0].Name)
	assert.Equal(t, "2026-10-19", w.Days[6].Date)
	assert.Equal(t, "Pazartesi", w.Days[6].Name)
	for i := 1; i < len(w.Days); i++ {
		assert.Less(t, w.Days[i-1].Date, w.Days[i].Date)
	}

	assert.Equal(t, 25, w.Days[0].Rate)
	assert.True(t, w.Days[0].Active)
	assert.Equal(t, 0, w.Days[3].Rate)
	assert.True(t, w.Days[3].Active)
	assert.False(t, w.Days[4].Active)
	assert.Equal(t, 50, w.Days[6].Rate)

	sum := 0
	for _, d := range w.Days {
		sum += d.Rate
	}
	assert.Equal(t, float64(sum)/7, w.Average)
	assert.Equal(t, 3, w.ActiveDays)
	assert.False(t, w.Weekend)
	assert.Equal(t, 10.7, Round1(w.Average))
}

func TestWeeklyUsesCurrentTaskCount(t *testing.T) {
	doc := weekDoc(t)
	doc.ReplaceProject("new", 2, []string{"x", "y"}, today)

	w := Weekly(doc, today)
	assert.Equal(t, 50, w.Days[0].Rate)
	assert.Equal(t, 100, w.Days[6].Rate)
}

func TestWeeklyNoProject(t *testing.T) {
	w := Weekly(store.NewDocument(), today.AddDate(0, 0, 5))
	require.Len(t, w.Days, 7)
	assert.Zero(t, w.Average)
	assert.True(t, w.Weekend)
}

func TestMonthly(t *testing.T) {
	doc := weekDoc(t)
	// previous month, ignored
	doc.DailyLogs["2026-09-30"] = store.DailyLog{CompletedTasks: []string{"a", "b"}}

	m := Monthly(doc, today)
	assert.Equal(t, "October 2026", m.Name)
	assert.Equal(t, 4, m.Completed)
	assert.Equal(t, 1, m.Notes)
	assert.Equal(t, 4, m.ActiveDays)
	assert.Equal(t, 4, m.LoggedDayCount)
	assert.Equal(t, float64(25+25+0+50)/4, m.Average)
	assert.Equal(t, 31, m.DaysInMonth)
	assert.False(t, m.MonthEnd)
}

func TestMonthlyEmpty(t *testing.T) {
	m := Monthly(store.NewDocument(), today)
	assert.Zero(t, m.Average)
	assert.Zero(t, m.ActiveDays)
}

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		date time.Time
		want int
	}{
		{time.Date(2026, time.December, 15, 0, 0, 0, 0, time.UTC), 31},
		{time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC), 28},
		{time.Date(2028, time.February, 29, 0, 0, 0, 0, time.UTC), 29},
		{time.Date(2026, time.April, 30, 0, 0, 0, 0, time.UTC), 30},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, DaysInMonth(c.date), c.date.String())
	}
}

func TestIsMonthEnd(t *testing.T) {
	assert.False(t, IsMonthEnd(time.Date(2026, time.December, 28, 0, 0, 0, 0, time.UTC)))
	assert.True(t, IsMonthEnd(time.Date(2026, time.December, 29, 0, 0, 0, 0, time.UTC)))
	assert.True(t, IsMonthEnd(time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC)))
	assert.True(t, IsMonthEnd(time.Date(2026, time.February, 26, 0, 0, 0, 0, time.UTC)))
	assert.False(t, IsMonthEnd(time.Date(2026, time.February, 25, 0, 0, 0, 0, time.UTC)))
}
