package ai

import (
	"fmt"
	"strings"

	"coach-backend/internal/progress"
)

// PlanPrompt asks for exactly days task names, one per line.
func (p Prompts) PlanPrompt(goal string, days int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Kullanıcının hedefi: %q\n", goal)
	fmt.Fprintf(&b, "Süre: %d gün\n\n", days)
	fmt.Fprintf(&b, "Bu hedef için tam olarak %d adet somut, yapılabilir görev listesi oluştur.\n", days)
	b.WriteString("SADECE görev adlarını yaz, her satıra bir görev.\n")
	b.WriteString("Numara, tire veya madde işareti KULLANMA. Sadece görev adı.")
	return b.String()
}

func (p Prompts) Analysis(s progress.Stats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s'nın bugünkü durumu:\n", p.UserName)
	fmt.Fprintf(&b, "- Hedef: %s\n", s.Goal)
	fmt.Fprintf(&b, "- Tamamlanan: %d/%d görev (%%%d)\n", s.Completed, s.Total, s.Rate)
	fmt.Fprintf(&b, "- Tamamlanan görevler: %s\n", joinOr(s.CompletedTasks, "henüz yok"))
	fmt.Fprintf(&b, "- Kalan görevler: %s\n", joinOr(s.Remaining, "hepsi bitti!"))
	fmt.Fprintf(&b, "- Bugün yazdığı notlar: %s\n", joinOr(s.NoteTexts(), "not yok"))
	fmt.Fprintf(&b, "Bu verilere bakarak %s'ya ÖZEL, samimi bir yorum yap. Spesifik görev adlarından bahset. 2-3 cümle.", p.UserName)
	return b.String()
}

// Celebration reacts to a freshly completed task.
func (p Prompts) Celebration(task string, done, total, rate int) string {
	return fmt.Sprintf("%s az önce '%s' görevini tamamladı!\n"+
		"İlerleme: %d/%d görev (%%%d).\n"+
		"Kısa, samimi ve motive edici bir kutlama mesajı yaz. 1-2 cümle.",
		p.UserName, task, done, total, rate)
}

func (p Prompts) NoteReaction(text string, s progress.Stats) string {
	return fmt.Sprintf("%s şunu yazdı: %q\n"+
		"Hedefi: %s, bugün %%%d ilerledi.\n"+
		"Bu nota kısa, samimi bir yorum yap. 1 cümle.",
		p.UserName, text, s.Goal, s.Rate)
}

func (p Prompts) Weekly(w progress.Week, goal string) string {
	days := make([]string, 0, len(w.Days))
	for _, d := range w.Days {
		days = append(days, fmt.Sprintf("%s: %%%d", d.Name, d.Rate))
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s'nın bu haftaki performansı:\n", p.UserName)
	fmt.Fprintf(&b, "- Ortalama başarı: %%%.0f\n", w.Average)
	fmt.Fprintf(&b, "- Aktif gün: %d/7\n", w.ActiveDays)
	fmt.Fprintf(&b, "- Günlük dağılım: %s\n", strings.Join(days, ", "))
	fmt.Fprintf(&b, "- Hedef: %s\n", orNone(goal))
	b.WriteString("Haftayı değerlendiren samimi, kişisel bir haftalık rapor yorumu yaz. 2-3 cümle.")
	return b.String()
}

func (p Prompts) Monthly(m progress.Month, monthName, goal string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s'nın %s ayı özeti:\n", p.UserName, monthName)
	fmt.Fprintf(&b, "- Ortalama başarı: %%%.0f\n", m.Average)
	fmt.Fprintf(&b, "- Aktif gün: %d\n", m.ActiveDays)
	fmt.Fprintf(&b, "- Tamamlanan görev: %d\n", m.Completed)
	fmt.Fprintf(&b, "- Yazılan not: %d\n", m.Notes)
	fmt.Fprintf(&b, "- Hedef: %s\n", orNone(goal))
	b.WriteString("Ayı değerlendiren samimi, motive edici bir aylık rapor yorumu yaz. 2-3 cümle.")
	return b.String()
}

func (p Prompts) Suggestion(s progress.Stats) string {
	next := s.Remaining
	if len(next) > 3 {
		next = next[:3]
	}
	return fmt.Sprintf("%s'nın hedefi: %s, %%%d ilerledi, kalan görevler: %s. Bugün için kısa bir öneri ver. 1 cümle.",
		p.UserName, s.Goal, s.Rate, joinOr(next, "yok"))
}

func (p Prompts) ShortReport(s progress.Stats) string {
	return fmt.Sprintf("%s %%%d ilerledi, hedef: %s. Kısa yorum yap.", p.UserName, s.Rate, s.Goal)
}

// Introduce is the live test sent after a new API key is stored.
func (p Prompts) Introduce() string {
	return fmt.Sprintf("Merhaba! Kendini tek cümleyle tanıt, %s'nın asistanı olarak.", p.UserName)
}

func orNone(s string) string {
	if s == "" {
		return "yok"
	}
	return s
}
