package sessions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mvukovic/trainlog/internal/telemetry/tracing"
	"github.com/mvukovic/trainlog/internal/training/calendar"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=resolver_mocks_test.go -package=sessions_test

type resolverRepo interface {
	Find(ctx context.Context, userID, routineID int, routineDayID *int, day string) (*Session, error)
	FindForDay(ctx context.Context, userID, routineID int, day string) (*Session, error)
	ListRecent(ctx context.Context, userID, routineID, limit int) ([]Session, error)
	Create(ctx context.Context, session Session) (*Session, error)
}

// recentScanLimit bounds the fallback scan over the session history.
const recentScanLimit = 30

// Resolver finds or creates the one session for (user, routine, day).
// Sequential calls with the same arguments always land on the same
// session. The repo's unique index catches the remaining concurrent
// create race.
type Resolver struct {
	repo resolverRepo
	now  func() time.Time
}

type ResolverOption func(*Resolver)

// WithNow replaces the wall clock, used in tests.
func WithNow(now func() time.Time) ResolverOption {
	return func(r *Resolver) {
		r.now = now
	}
}

func NewResolver(repo resolverRepo, opts ...ResolverOption) *Resolver {
	resolver := &Resolver{
		repo: repo,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(resolver)
	}
	return resolver
}

// EnsureSession resolves the session for the target date, creating one
// when no matching session exists yet. The lookup cascades from the
// exact identity over a relaxed match (the routine day assignment may
// have changed since the session was created) down to a scan of the
// most recent sessions, and only then creates.
func (r *Resolver) EnsureSession(
	ctx context.Context,
	userID, routineID int,
	routineDayID *int,
	targetDate time.Time,
) (_ *Session, created bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "sessions.resolver.ensure")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))
	span.SetAttributes(attribute.Int("routine.id", routineID))

	// the caller's target day and the server's current day can disagree
	// around midnight or across timezones, both keys are candidates
	candidateKeys := []string{calendar.DayKey(targetDate)}
	if nowKey := calendar.DayKey(r.now()); nowKey != candidateKeys[0] {
		candidateKeys = append(candidateKeys, nowKey)
	}
	span.SetAttributes(attribute.StringSlice("candidate.days", candidateKeys))

	for _, day := range candidateKeys {
		session, err := r.repo.Find(ctx, userID, routineID, routineDayID, day)
		if err == nil {
			return session, false, nil
		}
		if !errors.Is(err, ErrSessionNotFound) {
			return nil, false, fmt.Errorf("find session: %w", err)
		}
	}

	for _, day := range candidateKeys {
		session, err := r.repo.FindForDay(ctx, userID, routineID, day)
		if err == nil {
			log.Debugf(
				"session %d found for user %d, day %s, with a different routine day assignment",
				session.ID, userID, day,
			)
			return session, false, nil
		}
		if !errors.Is(err, ErrSessionNotFound) {
			return nil, false, fmt.Errorf("find session for day: %w", err)
		}
	}

	recentSessions, err := r.repo.ListRecent(ctx, userID, routineID, recentScanLimit)
	if err != nil {
		return nil, false, fmt.Errorf("list recent sessions: %w", err)
	}
	for i := range recentSessions {
		for _, day := range candidateKeys {
			if recentSessions[i].Day == day {
				return &recentSessions[i], false, nil
			}
		}
	}

	session, err := r.repo.Create(ctx, Session{
		UserID:       userID,
		RoutineID:    routineID,
		RoutineDayID: routineDayID,
		Day:          candidateKeys[0],
		Completed:    false,
	})
	if err != nil {
		return nil, false, fmt.Errorf("create session: %w", err)
	}

	span.SetAttributes(attribute.Int("session.id", session.ID))
	log.Debugf("session %d created for user %d, day %s", session.ID, userID, session.Day)

	return session, true, nil
}
