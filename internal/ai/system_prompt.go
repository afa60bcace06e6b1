package ai

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"coach-backend/internal/progress"
)

// Task block markers the chat model is asked to wrap suggested tasks in.
const (
	TasksStart = "[GÖREVLER]"
	TasksEnd   = "[/GÖREVLER]"
)

const DefaultUserName = "Şeyma"

const planSystemPrompt = "Sen bir proje planlama asistanısın. Sadece görev adlarını listele, her satıra bir tane. Başka hiçbir şey yazma."

// Prompts renders every prompt sent to the model for one user.
type Prompts struct {
	UserName string
}

func NewPrompts(userName string) Prompts {
	if strings.TrimSpace(userName) == "" {
		userName = DefaultUserName
	}
	return Prompts{UserName: userName}
}

// Persona is the default system message.
func (p Prompts) Persona() string {
	return fmt.Sprintf(`Sen %s'nın kişisel AI asistanısın.
Samimi, sıcak ve arkadaşça konuşursun. Türkçe konuşursun.
Emoji kullanırsın ama abartmazsın. Kısa ve öz cevaplar verirsin.`, p.UserName)
}

// PlanSystem is the system message for task list generation.
func (p Prompts) PlanSystem() string {
	return planSystemPrompt
}

// ChatSystem embeds today's progress and the task block instructions.
func (p Prompts) ChatSystem(s progress.Stats) string {
	goal := s.Goal
	if goal == "" {
		goal = "Henüz proje yok"
	}
	remaining := s.Remaining
	if len(remaining) > 5 {
		remaining = remaining[:5]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Sen %s'nın kişisel AI asistanısın. Samimi, zeki ve yardımsever bir arkadaş gibi konuşursun. Türkçe konuşursun.\n\n", p.UserName)

	fmt.Fprintf(&b, "%s'NIN MEVCUT DURUMU:\n", upperTR(p.UserName))
	fmt.Fprintf(&b, "- Aktif hedef: %s\n", goal)
	fmt.Fprintf(&b, "- Görev ilerleme: %d/%d tamamlandı (%%%d)\n", s.Completed, s.Total, s.Rate)
	fmt.Fprintf(&b, "- Tamamlanan görevler: %s\n", joinOr(s.CompletedTasks, "henüz yok"))
	fmt.Fprintf(&b, "- Kalan görevler: %s\n", joinOr(remaining, "hepsi bitti!"))
	fmt.Fprintf(&b, "- Bugün yazılan notlar: %s\n\n", joinOr(s.NoteTexts(), "not yok"))

	b.WriteString("GÖREV LİSTESİ OLUŞTURMA:\n")
	fmt.Fprintf(&b, "- Eğer %s bir şey YAPMAK istediğini söylerse (yeni proje, hedef, plan vs.) MUTLAKA görev listesi öner\n", p.UserName)
	b.WriteString("- Görev listesi önerirken cevabının SONUNA şu formatta ekle:\n")
	fmt.Fprintf(&b, "  %s\n  Görev 1\n  Görev 2\n  Görev 3\n  %s\n", TasksStart, TasksEnd)
	b.WriteString("- 4-8 görev arası, somut ve yapılabilir olsun\n\n")

	b.WriteString("ANALİZ:\n")
	fmt.Fprintf(&b, "- %s yaptıklarını anlatırsa gerçek verilerle karşılaştır ve samimi yorum yap\n", p.UserName)
	b.WriteString("- \"harika, mükemmel\" gibi boş övgüler yapma, gerçekçi ol\n\n")

	b.WriteString("GENEL:\n")
	b.WriteString("- Kısa ve öz konuş (3-4 cümle max), emoji kullan ama abartma\n")
	fmt.Fprintf(&b, "- %s'nın adını ara ara kullan", p.UserName)
	return b.String()
}

func joinOr(items []string, empty string) string {
	if len(items) == 0 {
		return empty
	}
	return strings.Join(items, ", ")
}

// upperTR upper-cases with Turkish rules (i → İ).
func upperTR(s string) string {
	return cases.Upper(language.Turkish).String(s)
}
