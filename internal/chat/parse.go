package chat

import (
	"strings"

	"coach-backend/internal/ai"
	"coach-backend/internal/planner"
)

// PlanReadyReply replaces an answer that was nothing but a task block.
const PlanReadyReply = "Sana özel bir görev listesi hazırladım! Projeye eklemek ister misin? 📋"

// Reply is a model answer split into prose and suggested tasks. Tasks is nil
// when the answer carried no usable task block.
type Reply struct {
	Text  string
	Tasks []string
}

// ParseReply extracts a [GÖREVLER]…[/GÖREVLER] block. Model output is
// untrusted text: missing or reversed markers leave the answer untouched.
func ParseReply(raw string) Reply {
	start := strings.Index(raw, ai.TasksStart)
	end := strings.Index(raw, ai.TasksEnd)
	if start < 0 || end < 0 || end < start+len(ai.TasksStart) {
		return Reply{Text: raw}
	}

	tasks := planner.ParseLines(raw[start+len(ai.TasksStart):end], 0)

	text := strings.TrimSpace(raw[:start])
	if text == "" {
		text = PlanReadyReply
	}
	return Reply{Text: text, Tasks: tasks}
}
