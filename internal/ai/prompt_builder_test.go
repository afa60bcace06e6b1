package ai

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"

	"coach-backend/internal/progress"
	"coach-backend/internal/store"
)

func TestPromptsGolden(t *testing.T) {
	p := NewPrompts("")
	g := goldie.New(t)

	g.Assert(t, "celebration", []byte(p.Celebration("Veri modellerini oluştur", 1, 3, 33)))
	g.Assert(t, "plan_prompt", []byte(p.PlanPrompt("learn python", 3)))
}

func TestNewPromptsDefaultName(t *testing.T) {
	assert.Equal(t, DefaultUserName, NewPrompts("  ").UserName)
	assert.Equal(t, "Ali", NewPrompts("Ali").UserName)
}

func TestChatSystemEmbedsStats(t *testing.T) {
	p := NewPrompts("Şeyma")
	s := progress.Stats{
		Goal:           "Flutter öğren",
		Total:          7,
		Completed:      1,
		Rate:           14,
		Notes:          []store.Note{{Text: "widget okudum", Time: "10:00"}},
		CompletedTasks: []string{"t1"},
		Remaining:      []string{"t2", "t3", "t4", "t5", "t6", "t7"},
	}

	out := p.ChatSystem(s)
	assert.Contains(t, out, "ŞEYMA'NIN MEVCUT DURUMU:")
	assert.Contains(t, out, "- Aktif hedef: Flutter öğren")
	assert.Contains(t, out, "- Görev ilerleme: 1/7 tamamlandı (%14)")
	assert.Contains(t, out, "- Tamamlanan görevler: t1")
	assert.Contains(t, out, "- Kalan görevler: t2, t3, t4, t5, t6\n")
	assert.Contains(t, out, "- Bugün yazılan notlar: widget okudum")
	assert.Contains(t, out, TasksStart)
	assert.Contains(t, out, TasksEnd)
}

func TestChatSystemWithoutProject(t *testing.T) {
	out := NewPrompts("").ChatSystem(progress.Stats{})
	assert.Contains(t, out, "- Aktif hedef: Henüz proje yok")
	assert.Contains(t, out, "- Tamamlanan görevler: henüz yok")
	assert.Contains(t, out, "- Kalan görevler: hepsi bitti!")
	assert.Contains(t, out, "- Bugün yazılan notlar: not yok")
}

func TestUpperTR(t *testing.T) {
	assert.Equal(t, "İLKİM", upperTR("ilkim"))
}

func TestWeeklyPrompt(t *testing.T) {
	w := progress.Week{
		Days:       []progress.Day{{Name: "Pazartesi", Rate: 25}, {Name: "Salı", Rate: 0}},
		Average:    12.5,
		ActiveDays: 1,
	}
	out := NewPrompts("").Weekly(w, "")
	assert.Contains(t, out, "- Günlük dağılım: Pazartesi: %25, Salı: %0")
	assert.Contains(t, out, "- Aktif gün: 1/7")
	assert.Contains(t, out, "- Hedef: yok")
}
