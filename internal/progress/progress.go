package progress

import (
	"slices"
	"time"

	"coach-backend/internal/clock"
	"coach-backend/internal/store"
)

// Stats is the read-only view of today's progress that every report and
// prompt is built from.
type Stats struct {
	Goal           string
	Total          int
	Completed      int
	Rate           int
	Notes          []store.Note
	Tasks          []string
	CompletedTasks []string
	Remaining      []string
}

// Rate is the completion percentage, truncated. Zero tasks means zero.
func Rate(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return completed * 100 / total
}

// Today derives Stats from the current project and today's log.
func Today(doc *store.Document, now time.Time) Stats {
	log := doc.Log(clock.Day(now))
	s := Stats{
		Notes:          log.Notes,
		Tasks:          []string{},
		CompletedTasks: []string{},
		Remaining:      []string{},
	}
	p := doc.Current
	if p == nil {
		return s
	}

	s.Goal = p.Goal
	s.Tasks = p.Tasks
	s.CompletedTasks = p.Completed
	s.Total = len(p.Tasks)
	s.Completed = len(p.Completed)
	s.Rate = Rate(s.Completed, s.Total)
	for _, t := range p.Tasks {
		if !slices.Contains(p.Completed, t) {
			s.Remaining = append(s.Remaining, t)
		}
	}
	return s
}

// NoteTexts returns the text of today's notes in order.
func (s Stats) NoteTexts() []string {
	out := make([]string, 0, len(s.Notes))
	for _, n := range s.Notes {
		out = append(out, n.Text)
	}
	return out
}

// Status labels a completion rate for the analysis view.
func Status(rate int) string {
	switch {
	case rate < 30:
		return "Başlangıç aşaması"
	case rate < 70:
		return "İlerleme var"
	case rate < 100:
		return "Bitirmeye yakın"
	default:
		return "Tamamlandı 🎉"
	}
}
