package series

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mvukovic/trainlog/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrSeriesNotFound = errors.New("series not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Append stores a new set for the given exercise within the session.
// The series number is assigned inside the insert itself, so two
// concurrent appends for the same exercise can never pick the same
// ordinal.
func (r *Repo) Append(ctx context.Context, s Series) (_ *Series, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.series.append")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", s.SessionID))
	span.SetAttributes(attribute.Int("exercise.id", s.ExerciseID))

	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}

	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO training_series
				(session_id, exercise_id, series_number, reps, weight, rpe, created_at)
			VALUES (
				$1, $2,
				(SELECT COALESCE(MAX(series_number), 0) + 1
					FROM training_series
					WHERE session_id = $1 AND exercise_id = $2),
				$3, $4, $5, $6
			)
			RETURNING id, series_number;`,
		s.SessionID, s.ExerciseID, s.Reps, s.Weight, s.RPE, s.CreatedAt,
	).Scan(&s.ID, &s.SeriesNumber); err != nil {
		return nil, fmt.Errorf("insert series: %w", err)
	}

	span.SetAttributes(attribute.Int("series.id", s.ID))
	span.SetAttributes(attribute.Int("series.number", s.SeriesNumber))

	return &s, nil
}

// ListBySession returns all sets of the session ordered by exercise and
// series number.
func (r *Repo) ListBySession(ctx context.Context, sessionID int) (_ []Series, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.series.listbysession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", sessionID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, session_id, exercise_id, series_number, reps, weight, rpe, created_at
			FROM training_series
			WHERE session_id = $1
			ORDER BY exercise_id, series_number;`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	return r.rows2series(rows)
}

// ListByExercise returns the sets of a single exercise within the session.
func (r *Repo) ListByExercise(ctx context.Context, sessionID, exerciseID int) (_ []Series, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.series.listbyexercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", sessionID))
	span.SetAttributes(attribute.Int("exercise.id", exerciseID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, session_id, exercise_id, series_number, reps, weight, rpe, created_at
			FROM training_series
			WHERE session_id = $1 AND exercise_id = $2
			ORDER BY series_number;`,
		sessionID, exerciseID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	return r.rows2series(rows)
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Series, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.series.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	var s Series
	if err := r.db.QueryRow(
		ctx,
		`SELECT id, session_id, exercise_id, series_number, reps, weight, rpe, created_at
			FROM training_series WHERE id = $1;`,
		id,
	).Scan(
		&s.ID, &s.SessionID, &s.ExerciseID, &s.SeriesNumber,
		&s.Reps, &s.Weight, &s.RPE, &s.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSeriesNotFound
		}
		return nil, err
	}

	return &s, nil
}

func (r *Repo) rows2series(rows pgx.Rows) ([]Series, error) {
	seriesList := make([]Series, 0)
	for rows.Next() {
		var s Series
		if err := rows.Scan(
			&s.ID, &s.SessionID, &s.ExerciseID, &s.SeriesNumber,
			&s.Reps, &s.Weight, &s.RPE, &s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		seriesList = append(seriesList, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return seriesList, nil
}
