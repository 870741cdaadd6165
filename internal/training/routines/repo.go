package routines

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/mvukovic/trainlog/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrRoutineNotFound = errors.New("routine not found")
	ErrDayNotFound     = errors.New("routine day not found")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Add stores the routine together with all its days and exercises.
func (r *Repo) Add(ctx context.Context, routine Routine) (_ *Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	if routine.CreatedAt.IsZero() {
		routine.CreatedAt = time.Now()
	}

	if err := tx.QueryRow(
		ctx,
		`INSERT INTO routine (user_id, name, created_at) VALUES ($1, $2, $3) RETURNING id;`,
		routine.UserID, routine.Name, routine.CreatedAt,
	).Scan(&routine.ID); err != nil {
		return nil, fmt.Errorf("insert routine: %w", err)
	}

	for di := range routine.Days {
		day := &routine.Days[di]
		day.RoutineID = routine.ID
		if err := tx.QueryRow(
			ctx,
			`INSERT INTO routine_day (routine_id, weekday, rest, name) VALUES ($1, $2, $3, $4) RETURNING id;`,
			day.RoutineID, int(day.Weekday), day.Rest, day.Name,
		).Scan(&day.ID); err != nil {
			return nil, fmt.Errorf("insert routine day: %w", err)
		}

		for ei := range day.Exercises {
			ex := &day.Exercises[ei]
			ex.RoutineDayID = day.ID
			if err := tx.QueryRow(
				ctx,
				`INSERT INTO routine_exercise (routine_day_id, name, target_series, position)
					VALUES ($1, $2, $3, $4) RETURNING id;`,
				ex.RoutineDayID, ex.Name, ex.TargetSeries, ex.Position,
			).Scan(&ex.ID); err != nil {
				return nil, fmt.Errorf("insert routine exercise: %w", err)
			}
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	span.SetAttributes(attribute.Int("routine.id", routine.ID))
	return &routine, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	var routine Routine
	if err := r.db.QueryRow(
		ctx,
		`SELECT id, user_id, name, created_at FROM routine WHERE id = $1;`,
		id,
	).Scan(&routine.ID, &routine.UserID, &routine.Name, &routine.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRoutineNotFound
		}
		return nil, err
	}

	days, err := r.daysForRoutine(ctx, routine.ID)
	if err != nil {
		return nil, err
	}
	routine.Days = days

	return &routine, nil
}

func (r *Repo) List(ctx context.Context, userID int) (_ []Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, name, created_at FROM routine WHERE user_id = $1 ORDER BY created_at DESC;`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	routines := make([]Routine, 0)
	for rows.Next() {
		var routine Routine
		if err := rows.Scan(&routine.ID, &routine.UserID, &routine.Name, &routine.CreatedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		routines = append(routines, routine)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	for i := range routines {
		days, err := r.daysForRoutine(ctx, routines[i].ID)
		if err != nil {
			return nil, err
		}
		routines[i].Days = days
	}

	return routines, nil
}

func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM routine WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrRoutineNotFound
	}
	return nil
}

// DayFor returns the routine day scheduled for the given weekday.
func (r *Repo) DayFor(ctx context.Context, routineID int, weekday time.Weekday) (_ *Day, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.dayfor")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("routine.id", routineID))
	span.SetAttributes(attribute.String("weekday", weekday.String()))

	var day Day
	if err := r.db.QueryRow(
		ctx,
		`SELECT id, routine_id, weekday, rest, name FROM routine_day WHERE routine_id = $1 AND weekday = $2;`,
		routineID, int(weekday),
	).Scan(&day.ID, &day.RoutineID, &day.Weekday, &day.Rest, &day.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDayNotFound
		}
		return nil, err
	}

	exercises, err := r.exercisesForDay(ctx, day.ID)
	if err != nil {
		return nil, err
	}
	day.Exercises = exercises

	return &day, nil
}

func (r *Repo) daysForRoutine(ctx context.Context, routineID int) ([]Day, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, routine_id, weekday, rest, name FROM routine_day WHERE routine_id = $1 ORDER BY weekday;`,
		routineID,
	)
	if err != nil {
		return nil, fmt.Errorf("query days: %w", err)
	}
	defer rows.Close()

	days := make([]Day, 0)
	for rows.Next() {
		var day Day
		if err := rows.Scan(&day.ID, &day.RoutineID, &day.Weekday, &day.Rest, &day.Name); err != nil {
			return nil, fmt.Errorf("scan day: %w", err)
		}
		days = append(days, day)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("day rows: %w", err)
	}

	for i := range days {
		exercises, err := r.exercisesForDay(ctx, days[i].ID)
		if err != nil {
			return nil, err
		}
		days[i].Exercises = exercises
	}

	return days, nil
}

func (r *Repo) exercisesForDay(ctx context.Context, dayID int) ([]Exercise, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, routine_day_id, name, target_series, position
			FROM routine_exercise WHERE routine_day_id = $1 ORDER BY position;`,
		dayID,
	)
	if err != nil {
		return nil, fmt.Errorf("query exercises: %w", err)
	}
	defer rows.Close()

	exercises := make([]Exercise, 0)
	for rows.Next() {
		var ex Exercise
		if err := rows.Scan(&ex.ID, &ex.RoutineDayID, &ex.Name, &ex.TargetSeries, &ex.Position); err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}
		exercises = append(exercises, ex)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("exercise rows: %w", err)
	}

	sort.SliceStable(exercises, func(i, j int) bool {
		return exercises[i].Position < exercises[j].Position
	})

	return exercises, nil
}
