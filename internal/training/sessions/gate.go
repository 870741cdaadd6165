package sessions

import (
	"context"
	"fmt"
	"math"

	"github.com/mvukovic/trainlog/internal/telemetry/tracing"
	"github.com/mvukovic/trainlog/internal/training/series"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=gate_mocks_test.go -package=sessions_test

type gateRepo interface {
	Finish(ctx context.Context, id int, notes *string, rating *int) error
}

// completionThreshold is the share of target series that must be logged
// before a session may be finished.
const completionThreshold = 0.3

// CanFinish says whether the session may transition to completed: at
// least one exercise fully done, and at least 30% of all target series
// logged. Partial sessions are fine, empty ones are not.
func CanFinish(stats series.SummaryStats) bool {
	if stats.CompletedExercises == 0 {
		return false
	}
	required := int(math.Ceil(float64(stats.TotalSeries) * completionThreshold))
	return stats.CompletedSeries >= required
}

// RecommendedExercise picks what to do next: the first exercise in
// routine order that is in progress, else the first pending one, else
// nil when everything is done.
func RecommendedExercise(progressList []series.ExerciseProgress) *series.ExerciseProgress {
	for i := range progressList {
		if progressList[i].State == series.StateInProgress {
			return &progressList[i]
		}
	}
	for i := range progressList {
		if progressList[i].State == series.StatePending {
			return &progressList[i]
		}
	}
	return nil
}

// Gate performs the one-way active to completed transition. Callers
// must check CanFinish first, Finish itself only validates the rating.
type Gate struct {
	repo gateRepo
}

func NewGate(repo gateRepo) *Gate {
	return &Gate{
		repo: repo,
	}
}

func (g *Gate) Finish(ctx context.Context, sessionID int, notes *string, rating *int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "sessions.gate.finish")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", sessionID))

	if rating != nil && (*rating < MinRating || *rating > MaxRating) {
		return fmt.Errorf("rating must be between %d and %d", MinRating, MaxRating)
	}

	return g.repo.Finish(ctx, sessionID, notes, rating)
}
