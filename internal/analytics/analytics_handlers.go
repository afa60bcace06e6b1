package analytics

import (
	"encoding/json"
	"net/http"

	"coach-backend/internal/respond"
)

type appOpened struct {
	ColdStart bool   `json:"cold_start"`
	From      string `json:"from"`
}

var openSources = map[string]bool{"push": true, "deeplink": true, "icon": true}

// AppOpenedHandler records the client's "app opened" metric. The body is
// optional; an unreadable one counts as an unknown warm start.
func AppOpenedHandler(rec Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body appOpened
		_ = json.NewDecoder(r.Body).Decode(&body)
		if !openSources[body.From] {
			body.From = "unknown"
		}

		Record(r, rec, "app_opened", map[string]any{
			"cold_start": body.ColdStart,
			"from":       body.From,
		})
		respond.JSON(w, map[string]bool{"ok": true})
	}
}
