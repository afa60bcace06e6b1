package goals

import (
	"fmt"
	"net/http"
	"strings"

	"coach-backend/internal/ai"
	"coach-backend/internal/analytics"
	"coach-backend/internal/clock"
	"coach-backend/internal/planner"
	"coach-backend/internal/progress"
	"coach-backend/internal/respond"
	"coach-backend/internal/store"
)

type Handler struct {
	Store   *store.Keeper
	AI      *ai.Client
	Planner *planner.Planner
	Clock   clock.Clock
	Events  analytics.Recorder
}

// Create plans a new project and replaces the current one.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var body CreateRequest
	if !respond.Decode(w, r, &body) {
		return
	}

	// planning talks to the model, so it runs before taking the store lock
	tasks := h.Planner.Generate(r.Context(), body.Goal, body.DurationDays)

	err := h.Store.Update(r.Context(), func(doc *store.Document) error {
		doc.ReplaceProject(body.Goal, body.DurationDays, tasks, h.Clock.Now())
		return nil
	})
	if err != nil {
		respond.Internal(w, r, err)
		return
	}

	analytics.Record(r, h.Events, "project_created", map[string]any{
		"text_len":      len(strings.TrimSpace(body.Goal)),
		"duration_days": body.DurationDays,
		"task_count":    len(tasks),
		"ai_active":     h.AI.Active(),
	})

	respond.JSON(w, CreateResponse{Mesaj: "Plan hazır!", Gorevler: tasks})
}

// Analysis reports today's progress with a personal comment.
func (h *Handler) Analysis(w http.ResponseWriter, r *http.Request) {
	doc := h.Store.Snapshot()
	if doc.Current == nil {
		respond.JSON(w, noProjectAnalysis)
		return
	}

	stats := progress.Today(doc, h.Clock.Now())
	advice := h.AI.Ask(r.Context(), h.AI.Prompts.Analysis(stats), "", nil)

	respond.JSON(w, Analysis{
		Hedef:           stats.Goal,
		TamamlananGorev: stats.Completed,
		NotSayisi:       len(stats.Notes),
		BasariOrani:     fmt.Sprintf("%%%d", stats.Rate),
		Durum:           progress.Status(stats.Rate),
		Tavsiye:         advice,
	})
}
