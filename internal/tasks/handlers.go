package tasks

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"coach-backend/internal/ai"
	"coach-backend/internal/analytics"
	"coach-backend/internal/clock"
	"coach-backend/internal/progress"
	"coach-backend/internal/respond"
	"coach-backend/internal/store"
)

type Handler struct {
	Store  *store.Keeper
	AI     *ai.Client
	Clock  clock.Clock
	Events analytics.Recorder
}

// Complete marks one task of the current project done.
func (h *Handler) Complete(w http.ResponseWriter, r *http.Request) {
	var body CompleteRequest
	if !respond.Decode(w, r, &body) {
		return
	}

	var (
		task        string
		done, total int
	)
	err := h.Store.Update(r.Context(), func(doc *store.Document) error {
		var err error
		task, err = doc.CompleteTask(body.TaskIndex, h.Clock.Now())
		if err != nil {
			return err
		}
		done, total = len(doc.Current.Completed), len(doc.Current.Tasks)
		return nil
	})
	switch {
	case errors.Is(err, store.ErrNoProject):
		respond.Fail(w, "Aktif proje yok")
		return
	case errors.Is(err, store.ErrTaskIndex):
		respond.Fail(w, "Geçersiz görev indexi")
		return
	case errors.Is(err, store.ErrAlreadyCompleted):
		respond.JSON(w, message{Mesaj: "Bu görevi zaten tamamladın! ✅"})
		return
	case err != nil:
		respond.Internal(w, r, err)
		return
	}

	rate := progress.Rate(done, total)
	analytics.Record(r, h.Events, "task_completed", map[string]any{
		"task_index": body.TaskIndex,
		"rate":       rate,
	})

	comment := h.AI.Ask(r.Context(), h.AI.Prompts.Celebration(task, done, total, rate), "", nil)
	respond.JSON(w, CompleteResponse{
		Mesaj:       fmt.Sprintf("'%s' tamamlandı!", task),
		BasariOrani: rate,
		Yorum:       comment,
	})
}

// AddProgress stores a free-text note in today's log.
func (h *Handler) AddProgress(w http.ResponseWriter, r *http.Request) {
	var body ProgressRequest
	if !respond.Decode(w, r, &body) {
		return
	}

	var now time.Time
	err := h.Store.Update(r.Context(), func(doc *store.Document) error {
		now = h.Clock.Now()
		return doc.AddNote(body.Text, now)
	})
	switch {
	case errors.Is(err, store.ErrNoProject):
		respond.Fail(w, "Önce proje oluşturmalısın")
		return
	case err != nil:
		respond.Internal(w, r, err)
		return
	}

	analytics.Record(r, h.Events, "note_added", map[string]any{
		"text_len": len([]rune(body.Text)),
	})

	stats := progress.Today(h.Store.Snapshot(), now)
	comment := h.AI.Ask(r.Context(), h.AI.Prompts.NoteReaction(body.Text, stats), "", nil)
	respond.JSON(w, ProgressResponse{Mesaj: "Not kaydedildi! 📝", Yorum: comment})
}

// List returns the current task list with completion state.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	p := h.Store.Snapshot().Current
	if p == nil {
		respond.JSON(w, ListResponse{Tasks: []string{}, Completed: []string{}})
		return
	}

	total, done := len(p.Tasks), len(p.Completed)
	respond.JSON(w, ListResponse{
		Hedef:          p.Goal,
		Tasks:          p.Tasks,
		Completed:      p.Completed,
		Toplam:         &total,
		TamamlananSayi: &done,
	})
}
