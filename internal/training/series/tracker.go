package series

import (
	"context"
	"errors"
	"fmt"

	"github.com/mvukovic/trainlog/internal/training/routines"
)

var ErrUnknownExercise = errors.New("exercise is not part of the routine day")

type trackerRepo interface {
	Append(ctx context.Context, s Series) (*Series, error)
	ListBySession(ctx context.Context, sessionID int) ([]Series, error)
}

// Tracker derives exercise progress for a session. Progress is never
// stored or incremented, it is recomputed from the full list of logged
// sets on every call.
type Tracker struct {
	repo trackerRepo
}

func NewTracker(repo trackerRepo) *Tracker {
	return &Tracker{
		repo: repo,
	}
}

// Progress returns per-exercise progress for every exercise of the
// routine day, in routine order, plus the session summary.
func (t *Tracker) Progress(ctx context.Context, sessionID int, day routines.Day) ([]ExerciseProgress, SummaryStats, error) {
	loggedSeries, err := t.repo.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, SummaryStats{}, fmt.Errorf("list session series: %w", err)
	}

	return deriveProgress(day, loggedSeries), deriveSummary(day, loggedSeries), nil
}

// SaveSeries logs one set and returns the stored set together with the
// re-derived progress of its exercise.
func (t *Tracker) SaveSeries(ctx context.Context, day routines.Day, s Series) (*Series, *ExerciseProgress, error) {
	if day.ExerciseByID(s.ExerciseID) == nil {
		return nil, nil, ErrUnknownExercise
	}

	savedSeries, err := t.repo.Append(ctx, s)
	if err != nil {
		return nil, nil, fmt.Errorf("append series: %w", err)
	}

	loggedSeries, err := t.repo.ListBySession(ctx, s.SessionID)
	if err != nil {
		return nil, nil, fmt.Errorf("list session series: %w", err)
	}

	for _, progress := range deriveProgress(day, loggedSeries) {
		if progress.ExerciseID == s.ExerciseID {
			return savedSeries, &progress, nil
		}
	}

	// unreachable, the exercise was checked against the day above
	return savedSeries, nil, nil
}

func deriveProgress(day routines.Day, loggedSeries []Series) []ExerciseProgress {
	progressList := make([]ExerciseProgress, 0, len(day.Exercises))
	for _, ex := range day.Exercises {
		progress := ExerciseProgress{
			ExerciseID:   ex.ID,
			ExerciseName: ex.Name,
			TotalSeries:  ex.TargetSeries,
		}

		for _, s := range loggedSeries {
			if s.ExerciseID != ex.ID {
				continue
			}
			progress.CompletedSeries++
			progress.Volume += s.Volume()
			if progress.LastUpdate == nil || s.CreatedAt.After(*progress.LastUpdate) {
				createdAt := s.CreatedAt
				progress.LastUpdate = &createdAt
			}
		}

		progress.State = ComputeState(progress.CompletedSeries, progress.TotalSeries)
		progressList = append(progressList, progress)
	}

	return progressList
}

func deriveSummary(day routines.Day, loggedSeries []Series) SummaryStats {
	stats := SummaryStats{
		TotalExercises: len(day.Exercises),
	}

	for _, progress := range deriveProgress(day, loggedSeries) {
		stats.TotalSeries += progress.TotalSeries
		stats.CompletedSeries += progress.CompletedSeries
		stats.TotalVolume += progress.Volume
		if progress.State == StateCompleted {
			stats.CompletedExercises++
		}
	}

	return stats
}
