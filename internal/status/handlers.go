package status

import (
	"net/http"
	"strings"

	"coach-backend/internal/ai"
	"coach-backend/internal/analytics"
	"coach-backend/internal/respond"
	"coach-backend/internal/store"
)

type Handler struct {
	Store  *store.Keeper
	AI     *ai.Client
	Events analytics.Recorder
}

type homeResponse struct {
	Mesaj   string `json:"mesaj"`
	AIAktif bool   `json:"ai_aktif"`
}

type apiStatusResponse struct {
	AIAktif bool   `json:"ai_aktif"`
	Mesaj   string `json:"mesaj"`
}

type setKeyResponse struct {
	Mesaj string `json:"mesaj"`
	Test  string `json:"test"`
}

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, homeResponse{Mesaj: "Kişisel asistanın çalışıyor! 🤖", AIAktif: h.AI.Active()})
}

func (h *Handler) APIStatus(w http.ResponseWriter, r *http.Request) {
	msg := "API key bekleniyor"
	if h.AI.Active() {
		msg = "Groq AI aktif! ✅"
	}
	respond.JSON(w, apiStatusResponse{AIAktif: h.AI.Active(), Mesaj: msg})
}

// SetAPIKey persists the credential, activates it and answers with a live
// test completion.
func (h *Handler) SetAPIKey(w http.ResponseWriter, r *http.Request) {
	var body struct {
		APIKey string `json:"api_key"`
	}
	if !respond.Decode(w, r, &body) {
		return
	}
	key := strings.TrimSpace(body.APIKey)

	err := h.Store.Update(r.Context(), func(doc *store.Document) error {
		doc.GroqAPIKey = key
		return nil
	})
	if err != nil {
		respond.Internal(w, r, err)
		return
	}
	h.AI.SetAPIKey(key)

	analytics.Record(r, h.Events, "api_key_set", map[string]any{
		"active": key != "",
	})

	respond.JSON(w, setKeyResponse{
		Mesaj: "Groq API key ayarlandı ve kaydedildi!",
		Test:  h.AI.Ask(r.Context(), h.AI.Prompts.Introduce(), "", nil),
	})
}
