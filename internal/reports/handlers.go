package reports

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"coach-backend/internal/ai"
	"coach-backend/internal/clock"
	"coach-backend/internal/progress"
	"coach-backend/internal/respond"
	"coach-backend/internal/store"
)

type Handler struct {
	Store *store.Keeper
	AI    *ai.Client
	Clock clock.Clock
}

func goalOf(doc *store.Document) string {
	if doc.Current == nil {
		return ""
	}
	return doc.Current.Goal
}

func (h *Handler) weekly(ctx context.Context, doc *store.Document, now time.Time) WeeklyReport {
	week := progress.Weekly(doc, now)
	comment := h.AI.Ask(ctx, h.AI.Prompts.Weekly(week, goalOf(doc)), "", nil)

	days := make([]DayEntry, 0, len(week.Days))
	for _, d := range week.Days {
		days = append(days, DayEntry{
			Tarih:       d.Date,
			Gun:         d.Name,
			Tamamlanan:  d.Completed,
			NotSayisi:   d.Notes,
			BasariOrani: d.Rate,
		})
	}

	rep := WeeklyReport{
		HaftaOzeti:         days,
		OrtalamaBasari:     progress.Round1(week.Average),
		AktifGunSayisi:     week.ActiveDays,
		SekreterYorumu:     comment,
		HaftaSonuBildirimi: week.Weekend,
	}
	if week.Weekend {
		msg := fmt.Sprintf("📊 Haftalık rapor hazır! %%%.0f başarı oranın var!", week.Average)
		rep.BildirimMesaji = &msg
	}
	return rep
}

func (h *Handler) monthly(ctx context.Context, doc *store.Document, now time.Time) MonthlyReport {
	month := progress.Monthly(doc, now)
	monthName := now.Format("January")
	comment := h.AI.Ask(ctx, h.AI.Prompts.Monthly(month, monthName, goalOf(doc)), "", nil)

	rep := MonthlyReport{
		Ay:                    month.Name,
		AktifGun:              month.ActiveDays,
		ToplamTamamlananGorev: month.Completed,
		ToplamNot:             month.Notes,
		OrtalamaBasari:        progress.Round1(month.Average),
		SekreterYorumu:        comment,
		AySonuBildirimi:       month.MonthEnd,
	}
	if month.MonthEnd {
		msg := fmt.Sprintf("📅 Aylık rapor hazır! %s ayında %%%.0f başarın var!", monthName, month.Average)
		rep.BildirimMesaji = &msg
	}
	return rep
}

// Weekly reports the seven days ending today.
func (h *Handler) Weekly(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, h.weekly(r.Context(), h.Store.Snapshot(), h.Clock.Now()))
}

// Monthly reports the logged days of the current calendar month.
func (h *Handler) Monthly(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, h.monthly(r.Context(), h.Store.Snapshot(), h.Clock.Now()))
}

// CheckNotifications builds the weekly report on weekends and the monthly
// report in the last three days of a month. Other days produce no
// completion calls.
func (h *Handler) CheckNotifications(w http.ResponseWriter, r *http.Request) {
	doc, now := h.Store.Snapshot(), h.Clock.Now()
	out := Notifications{Bildirimler: []Notification{}}

	if progress.IsWeekend(now) {
		rep := h.weekly(r.Context(), doc, now)
		out.Bildirimler = append(out.Bildirimler, Notification{
			Tip:    "haftalik",
			Baslik: "📊 Haftalık Rapor",
			Mesaj:  rep.SekreterYorumu,
			Detay:  fmt.Sprintf("Bu hafta %%%.0f ortalama, %d aktif gün!", rep.OrtalamaBasari, rep.AktifGunSayisi),
		})
	}
	if progress.IsMonthEnd(now) {
		rep := h.monthly(r.Context(), doc, now)
		out.Bildirimler = append(out.Bildirimler, Notification{
			Tip:    "aylik",
			Baslik: "🗓️ Aylık Rapor",
			Mesaj:  rep.SekreterYorumu,
			Detay:  fmt.Sprintf("%s ayında %%%.0f başarı!", now.Format("January"), rep.OrtalamaBasari),
		})
	}

	out.BildirimVar = len(out.Bildirimler) > 0
	respond.JSON(w, out)
}

// Suggest asks for one concrete next step.
func (h *Handler) Suggest(w http.ResponseWriter, r *http.Request) {
	stats := progress.Today(h.Store.Snapshot(), h.Clock.Now())
	respond.JSON(w, Suggestion{
		BasariOrani: fmt.Sprintf("%%%d", stats.Rate),
		Oneri:       h.AI.Ask(r.Context(), h.AI.Prompts.Suggestion(stats), "", nil),
	})
}

// Summary is the short progress report.
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	stats := progress.Today(h.Store.Snapshot(), h.Clock.Now())
	respond.JSON(w, Summary{
		Hedef:       stats.Goal,
		ToplamGorev: stats.Total,
		Tamamlanan:  stats.Completed,
		BasariOrani: fmt.Sprintf("%%%d", stats.Rate),
		Yorum:       h.AI.Ask(r.Context(), h.AI.Prompts.ShortReport(stats), "", nil),
	})
}
