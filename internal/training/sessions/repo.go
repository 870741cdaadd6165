package sessions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mvukovic/trainlog/internal/telemetry/tracing"
	"github.com/mvukovic/trainlog/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

const sessionColumns = `id, user_id, routine_id, routine_day_id, day, completed, notes, rating, created_at`

// Create stores a new session. The table carries a unique index on
// (user_id, routine_id, day), so a concurrent create for the same day
// surfaces as a unique violation here and resolves to the session the
// other writer stored.
func (r *Repo) Create(ctx context.Context, session Session) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", session.UserID))
	span.SetAttributes(attribute.Int("routine.id", session.RoutineID))
	span.SetAttributes(attribute.String("day", session.Day))

	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO training_session
				(user_id, routine_id, routine_day_id, day, completed, notes, rating, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id;`,
		session.UserID, session.RoutineID, session.RoutineDayID, session.Day,
		session.Completed, session.Notes, session.Rating, session.CreatedAt,
	).Scan(&session.ID)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			existing, findErr := r.FindForDay(ctx, session.UserID, session.RoutineID, session.Day)
			if findErr != nil {
				return nil, fmt.Errorf("session exists, re-fetch failed: %w", findErr)
			}
			return existing, nil
		}
		return nil, fmt.Errorf("insert session: %w", err)
	}

	span.SetAttributes(attribute.Int("session.id", session.ID))
	return &session, nil
}

// Find looks up the session by its full identity, routine day included.
func (r *Repo) Find(ctx context.Context, userID, routineID int, routineDayID *int, day string) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.find")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("day", day))

	return r.scanOne(r.db.QueryRow(
		ctx,
		`SELECT `+sessionColumns+`
			FROM training_session
			WHERE user_id = $1 AND routine_id = $2
				AND routine_day_id IS NOT DISTINCT FROM $3
				AND day = $4;`,
		userID, routineID, routineDayID, day,
	))
}

// FindForDay looks up the session ignoring the routine day assignment.
func (r *Repo) FindForDay(ctx context.Context, userID, routineID int, day string) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.findforday")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("day", day))

	return r.scanOne(r.db.QueryRow(
		ctx,
		`SELECT `+sessionColumns+`
			FROM training_session
			WHERE user_id = $1 AND routine_id = $2 AND day = $3;`,
		userID, routineID, day,
	))
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	return r.scanOne(r.db.QueryRow(
		ctx,
		`SELECT `+sessionColumns+` FROM training_session WHERE id = $1;`,
		id,
	))
}

// ListRecent returns the newest sessions for the user and routine.
func (r *Repo) ListRecent(ctx context.Context, userID, routineID, limit int) (_ []Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.listrecent")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("limit", limit))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+sessionColumns+`
			FROM training_session
			WHERE user_id = $1 AND routine_id = $2
			ORDER BY day DESC, created_at DESC
			LIMIT $3;`,
		userID, routineID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	return r.rows2sessions(rows)
}

// ListCompletedSince returns completed sessions whose day is on or
// after the given day key.
func (r *Repo) ListCompletedSince(ctx context.Context, userID, routineID int, sinceDay string) (_ []Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.listcompletedsince")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("since", sinceDay))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+sessionColumns+`
			FROM training_session
			WHERE user_id = $1 AND routine_id = $2 AND completed = TRUE AND day >= $3
			ORDER BY day DESC;`,
		userID, routineID, sinceDay,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	return r.rows2sessions(rows)
}

// Finish marks the session completed and stores notes and rating.
// Completed sessions stay completed, a second finish is rejected.
func (r *Repo) Finish(ctx context.Context, id int, notes *string, rating *int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.sessions.finish")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE training_session
			SET completed = TRUE, notes = $2, rating = $3
			WHERE id = $1 AND completed = FALSE;`,
		id, notes, rating,
	)
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}

	if tag.RowsAffected() == 0 {
		if _, getErr := r.Get(ctx, id); getErr != nil {
			return getErr
		}
		return ErrSessionCompleted
	}

	return nil
}

func (r *Repo) scanOne(row pgx.Row) (*Session, error) {
	var s Session
	if err := row.Scan(
		&s.ID, &s.UserID, &s.RoutineID, &s.RoutineDayID, &s.Day,
		&s.Completed, &s.Notes, &s.Rating, &s.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *Repo) rows2sessions(rows pgx.Rows) ([]Session, error) {
	sessionsList := make([]Session, 0)
	for rows.Next() {
		var s Session
		if err := rows.Scan(
			&s.ID, &s.UserID, &s.RoutineID, &s.RoutineDayID, &s.Day,
			&s.Completed, &s.Notes, &s.Rating, &s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		sessionsList = append(sessionsList, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return sessionsList, nil
}
