package progress

import (
	"context"
	"math"
	"time"

	"github.com/mvukovic/trainlog/internal/telemetry/tracing"
	"github.com/mvukovic/trainlog/internal/training/calendar"
	"github.com/mvukovic/trainlog/internal/training/routines"
	"github.com/mvukovic/trainlog/internal/training/sessions"

	log "github.com/sirupsen/logrus"
)

type sessionsRepo interface {
	ListCompletedSince(ctx context.Context, userID, routineID int, sinceDay string) ([]sessions.Session, error)
}

type routineCatalog interface {
	Routine(ctx context.Context, id int) (*routines.Routine, error)
}

// WeeklySummary is the scheduled-vs-completed adherence for the
// current calendar week. NoRoutineScheduled is set when the routine
// has no trainable day this week, so a zero percentage can be told
// apart from a skipped week.
type WeeklySummary struct {
	Completed          int  `json:"completed"`
	Scheduled          int  `json:"scheduled"`
	Percentage         int  `json:"percentage"`
	NoRoutineScheduled bool `json:"noRoutineScheduled,omitempty"`
}

// Weekly computes the weekly adherence summary. Fetch failures degrade
// to a zero summary, the widgets feeding off this must never fail the
// whole view.
type Weekly struct {
	sessions sessionsRepo
	catalog  routineCatalog
	now      func() time.Time
}

type WeeklyOption func(*Weekly)

func WeeklyWithNow(now func() time.Time) WeeklyOption {
	return func(w *Weekly) {
		w.now = now
	}
}

func NewWeekly(sessionsRepo sessionsRepo, catalog routineCatalog, opts ...WeeklyOption) *Weekly {
	weekly := &Weekly{
		sessions: sessionsRepo,
		catalog:  catalog,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(weekly)
	}
	return weekly
}

func (w *Weekly) Summary(ctx context.Context, userID, routineID int) WeeklySummary {
	ctx, span := tracing.GlobalTracer.Start(ctx, "progress.weekly.summary")
	defer span.End()

	week := calendar.WeekOf(w.now())

	routine, err := w.catalog.Routine(ctx, routineID)
	if err != nil {
		log.Errorf("weekly summary, failed to get routine %d: %s", routineID, err)
		return WeeklySummary{NoRoutineScheduled: true}
	}

	scheduled := len(scheduledDays(routine, week))
	if scheduled == 0 {
		return WeeklySummary{NoRoutineScheduled: true}
	}

	completedSessions, err := w.sessions.ListCompletedSince(ctx, userID, routineID, calendar.DayKey(week.Start))
	if err != nil {
		log.Errorf("weekly summary, failed to list sessions [user %d, routine %d]: %s", userID, routineID, err)
		return WeeklySummary{Scheduled: scheduled}
	}

	completed := completedDaysInWeek(completedSessions, week)

	return WeeklySummary{
		Completed:  completed,
		Scheduled:  scheduled,
		Percentage: int(math.Round(float64(completed) / float64(scheduled) * 100)),
	}
}

// scheduledDays maps every trainable routine day onto its concrete
// date within the week window.
func scheduledDays(routine *routines.Routine, week calendar.Week) []time.Time {
	days := make([]time.Time, 0)
	for _, day := range routine.Days {
		if day.Trainable() {
			days = append(days, week.DayAt(day.Weekday))
		}
	}
	return days
}

// completedDaysInWeek counts distinct calendar days with a completed
// session inside the week window. Two sessions on one day count once.
func completedDaysInWeek(completedSessions []sessions.Session, week calendar.Week) int {
	seen := make(map[string]bool)
	for _, session := range completedSessions {
		sessionDate, err := time.ParseInLocation(calendar.DayKeyLayout, session.Day, week.Start.Location())
		if err != nil {
			log.Errorf("weekly summary, session %d has an invalid day %q: %s", session.ID, session.Day, err)
			continue
		}
		if week.Contains(sessionDate) {
			seen[session.Day] = true
		}
	}
	return len(seen)
}
