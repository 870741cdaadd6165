package progress

import (
	"context"
	"sort"
	"time"

	"github.com/mvukovic/trainlog/internal/telemetry/tracing"
	"github.com/mvukovic/trainlog/internal/training/calendar"

	log "github.com/sirupsen/logrus"
)

// streakLookbackDays bounds how far back the streak walk reads history.
const streakLookbackDays = 60

type Streak struct {
	CurrentStreak int `json:"currentStreak"`
}

// StreakCalculator derives the current consecutive-day completion
// streak. A day without a completed session breaks the chain, but a
// streak ending yesterday still counts, today is not over yet.
type StreakCalculator struct {
	sessions sessionsRepo
	now      func() time.Time
}

type StreakOption func(*StreakCalculator)

func StreakWithNow(now func() time.Time) StreakOption {
	return func(s *StreakCalculator) {
		s.now = now
	}
}

func NewStreakCalculator(sessionsRepo sessionsRepo, opts ...StreakOption) *StreakCalculator {
	calculator := &StreakCalculator{
		sessions: sessionsRepo,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(calculator)
	}
	return calculator
}

func (s *StreakCalculator) Current(ctx context.Context, userID, routineID int) Streak {
	ctx, span := tracing.GlobalTracer.Start(ctx, "progress.streak.current")
	defer span.End()

	now := s.now()
	since := calendar.DayKey(now.AddDate(0, 0, -streakLookbackDays))

	completedSessions, err := s.sessions.ListCompletedSince(ctx, userID, routineID, since)
	if err != nil {
		log.Errorf("streak, failed to list sessions [user %d, routine %d]: %s", userID, routineID, err)
		return Streak{}
	}

	// one entry per calendar day
	seen := make(map[string]bool)
	days := make([]time.Time, 0, len(completedSessions))
	for _, session := range completedSessions {
		if seen[session.Day] {
			continue
		}
		sessionDate, err := time.ParseInLocation(calendar.DayKeyLayout, session.Day, now.Location())
		if err != nil {
			log.Errorf("streak, session %d has an invalid day %q: %s", session.ID, session.Day, err)
			continue
		}
		seen[session.Day] = true
		days = append(days, sessionDate)
	}

	if len(days) == 0 {
		return Streak{}
	}

	sort.Slice(days, func(i, j int) bool {
		return days[i].After(days[j])
	})

	// a full skipped day breaks the streak, yesterday still grants grace
	if calendar.DaysBetween(days[0], now) > 1 {
		return Streak{}
	}

	streak := 1
	for i := 1; i < len(days); i++ {
		if calendar.DaysBetween(days[i], days[i-1]) != 1 {
			break
		}
		streak++
	}

	return Streak{CurrentStreak: streak}
}
