package chat

import (
	"errors"
	"fmt"
	"net/http"

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

type chatRequest struct {
	Message string       `json:"message"`
	History []ai.Message `json:"history"`
}

type chatResponse struct {
	Cevap    string   `json:"cevap"`
	Gorevler []string `json:"gorevler"`
}

// Chat answers a free-text message with today's progress as context and
// returns any task list the model proposed.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var body chatRequest
	if !respond.Decode(w, r, &body) {
		return
	}

	stats := progress.Today(h.Store.Snapshot(), h.Clock.Now())
	raw := h.AI.Ask(r.Context(), body.Message, h.AI.Prompts.ChatSystem(stats), body.History)

	reply := ParseReply(raw)
	respond.JSON(w, chatResponse{Cevap: reply.Text, Gorevler: reply.Tasks})
}

type createProjectResponse struct {
	Mesaj    string   `json:"mesaj"`
	Gorevler []string `json:"gorevler"`
}

// CreateProject installs a task list accepted from chat. The goal of the
// current project is kept.
func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Tasks []string `json:"tasks"`
	}
	if !respond.Decode(w, r, &body) {
		return
	}

	err := h.Store.Update(r.Context(), func(doc *store.Document) error {
		return doc.ReplaceTasks(body.Tasks, h.Clock.Now())
	})
	switch {
	case errors.Is(err, store.ErrEmptyTasks):
		respond.Fail(w, "Görev listesi boş")
		return
	case err != nil:
		respond.Internal(w, r, err)
		return
	}

	analytics.Record(r, h.Events, "project_created_from_chat", map[string]any{
		"task_count": len(body.Tasks),
	})

	respond.JSON(w, createProjectResponse{
		Mesaj:    fmt.Sprintf("%d görev projeye eklendi! ✅", len(body.Tasks)),
		Gorevler: body.Tasks,
	})
}
