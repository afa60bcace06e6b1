package analytics

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Envelope is what we store with every event.
type Envelope struct {
	SessionID    string
	Platform     string
	AppVersion   string
	DeviceLocale string
}

// FromRequest extracts event envelope fields from request headers.
func FromRequest(r *http.Request) Envelope {
	platform := strings.ToLower(strings.TrimSpace(r.Header.Get("X-Platform")))
	if platform != "ios" && platform != "android" && platform != "web" {
		platform = "unknown"
	}

	locale := strings.TrimSpace(r.Header.Get("Accept-Language"))
	if locale == "" {
		locale = strings.TrimSpace(r.Header.Get("X-Device-Locale"))
	}

	return Envelope{
		SessionID:    strings.TrimSpace(r.Header.Get("X-Session-Id")),
		Platform:     platform,
		AppVersion:   strings.TrimSpace(r.Header.Get("X-App-Version")),
		DeviceLocale: locale,
	}
}

// SourceEventKeyFromRequest returns the client idempotency key, if any.
func SourceEventKeyFromRequest(r *http.Request) string {
	if k := strings.TrimSpace(r.Header.Get("Idempotency-Key")); k != "" {
		return k
	}
	return strings.TrimSpace(r.Header.Get("X-Source-Event-Key"))
}

// Recorder stores one analytics event. Props must never carry raw user text.
type Recorder interface {
	Log(ctx context.Context, env Envelope, eventName string, props map[string]any, sourceEventKey string) error
}

// Record logs an event for a request. Failures are logged and swallowed so
// analytics never breaks the core flow.
func Record(r *http.Request, rec Recorder, eventName string, props map[string]any) {
	if rec == nil || eventName == "" {
		return
	}
	if err := rec.Log(r.Context(), FromRequest(r), eventName, props, SourceEventKeyFromRequest(r)); err != nil {
		slog.Warn("analytics event dropped", "event", eventName, "error", err)
	}
}

// LogRecorder writes events to the structured log. Used with the file store.
type LogRecorder struct{}

func (LogRecorder) Log(_ context.Context, env Envelope, eventName string, props map[string]any, sourceEventKey string) error {
	slog.Info("analytics event",
		"event", eventName,
		"platform", env.Platform,
		"app_version", env.AppVersion,
		"session_id", env.SessionID,
		"source_event_key", sourceEventKey,
		"props", props,
	)
	return nil
}

// SQLRecorder inserts events into analytics_events. A repeated source event
// key is ignored.
type SQLRecorder struct {
	DB  *sql.DB
	Now func() time.Time
}

func (s SQLRecorder) Log(ctx context.Context, env Envelope, eventName string, props map[string]any, sourceEventKey string) error {
	b, err := json.Marshal(props)
	if err != nil {
		return err
	}
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}

	_, err = s.DB.ExecContext(ctx, `
		INSERT INTO analytics_events (
			id, event_name, event_time,
			session_id, platform, app_version, device_locale,
			source_event_key, properties
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (source_event_key) DO NOTHING
	`, uuid.NewString(), eventName, now().UTC(),
		nullIfEmpty(env.SessionID), env.Platform, env.AppVersion, nullIfEmpty(env.DeviceLocale),
		nullIfEmpty(sourceEventKey), string(b),
	)
	return err
}

func nullIfEmpty(s string) sql.NullString {
	if strings.TrimSpace(s) == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}
