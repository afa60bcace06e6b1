package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/rs/cors"

	"coach-backend/internal/ai"
	"coach-backend/internal/analytics"
	"coach-backend/internal/chat"
	"coach-backend/internal/clock"
	"coach-backend/internal/goals"
	"coach-backend/internal/planner"
	"coach-backend/internal/reports"
	"coach-backend/internal/status"
	"coach-backend/internal/store"
	"coach-backend/internal/tasks"
)

type Deps struct {
	Store   *store.Keeper
	AI      *ai.Client
	Planner *planner.Planner
	Clock   clock.Clock
	Events  analytics.Recorder

	CORSOrigins []string
}

// New wires every endpoint onto one mux behind request logging and CORS.
func New(d Deps) http.Handler {
	if d.Clock == nil {
		d.Clock = clock.System()
	}
	if d.Planner == nil {
		d.Planner = planner.New(d.AI, d.AI.Prompts, nil)
	}

	st := &status.Handler{Store: d.Store, AI: d.AI, Events: d.Events}
	ch := &chat.Handler{Store: d.Store, AI: d.AI, Clock: d.Clock, Events: d.Events}
	gh := &goals.Handler{Store: d.Store, AI: d.AI, Planner: d.Planner, Clock: d.Clock, Events: d.Events}
	th := &tasks.Handler{Store: d.Store, AI: d.AI, Clock: d.Clock, Events: d.Events}
	rh := &reports.Handler{Store: d.Store, AI: d.AI, Clock: d.Clock}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	mux.HandleFunc("GET /{$}", st.Home)
	mux.HandleFunc("GET /api-status", st.APIStatus)
	mux.HandleFunc("POST /set-api-key", st.SetAPIKey)

	// ----- CHAT -----
	mux.HandleFunc("POST /chat", ch.Chat)
	mux.HandleFunc("POST /chat/create-project", ch.CreateProject)

	// ----- PROJECT / TASKS -----
	mux.HandleFunc("POST /project", gh.Create)
	mux.HandleFunc("GET /analysis", gh.Analysis)
	mux.HandleFunc("POST /complete-task", th.Complete)
	mux.HandleFunc("POST /progress", th.AddProgress)
	mux.HandleFunc("GET /tasks", th.List)

	// ----- REPORTS -----
	mux.HandleFunc("GET /report/weekly", rh.Weekly)
	mux.HandleFunc("GET /report/monthly", rh.Monthly)
	mux.HandleFunc("GET /check-notifications", rh.CheckNotifications)
	mux.HandleFunc("GET /suggest", rh.Suggest)
	mux.HandleFunc("GET /report", rh.Summary)

	mux.HandleFunc("POST /events/app-opened", analytics.AppOpenedHandler(d.Events))

	origins := d.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{
			"Content-Type", "Authorization",
			"X-Platform", "X-App-Version", "X-Session-Id", "X-Device-Locale",
			"Idempotency-Key", "X-Source-Event-Key",
		},
	})

	return c.Handler(logRequests(mux))
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		slog.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"duration", time.Since(start),
		)
	})
}
