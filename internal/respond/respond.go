package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Error is the payload for domain failures. They are reported with status 200
// so the client always reads a JSON body.
type Error struct {
	Hata string `json:"hata"`
}

func JSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

func Fail(w http.ResponseWriter, msg string) {
	JSON(w, Error{Hata: msg})
}

// Decode reads a JSON body into v. On failure it answers 400 and returns false.
func Decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return false
	}
	return true
}

// Internal reports an infrastructure failure such as a failed save.
func Internal(w http.ResponseWriter, r *http.Request, err error) {
	slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}
