package series

import (
	"fmt"
	"time"
)

// Series is one logged set of an exercise within a training session.
// SeriesNumber is the 1-based ordinal of the set within its exercise,
// assigned by the repo at insert time.
type Series struct {
	ID           int       `json:"id"`
	SessionID    int       `json:"sessionId"`
	ExerciseID   int       `json:"exerciseId"`
	SeriesNumber int       `json:"seriesNumber"`
	Reps         int       `json:"reps"`
	Weight       float64   `json:"weight"`
	RPE          *int      `json:"rpe,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Volume is reps times weight for this single set.
func (s Series) Volume() float64 {
	return float64(s.Reps) * s.Weight
}

type State string

const (
	StatePending    State = "pending"
	StateInProgress State = "in_progress"
	StateCompleted  State = "completed"
)

// ComputeState derives the exercise state from the number of logged
// sets against the target. The state is never stored, always derived.
func ComputeState(completed, total int) State {
	switch {
	case completed <= 0:
		return StatePending
	case completed < total:
		return StateInProgress
	default:
		return StateCompleted
	}
}

const (
	MinRPE = 1
	MaxRPE = 10
)

// ValidateSeriesPayload checks a set about to be logged and returns the
// rejection reason, or an empty string when the payload is acceptable.
// Weight zero is valid, bodyweight exercises carry no extra load.
func ValidateSeriesPayload(reps int, weight float64, rpe *int) string {
	if reps <= 0 {
		return "reps must be a positive number"
	}
	if weight < 0 {
		return "weight must not be negative"
	}
	if rpe != nil && (*rpe < MinRPE || *rpe > MaxRPE) {
		return fmt.Sprintf("rpe must be between %d and %d", MinRPE, MaxRPE)
	}
	return ""
}

// ExerciseProgress is the derived progress of a single exercise within
// a session.
type ExerciseProgress struct {
	ExerciseID      int        `json:"exerciseId"`
	ExerciseName    string     `json:"exerciseName"`
	State           State      `json:"state"`
	CompletedSeries int        `json:"completedSeries"`
	TotalSeries     int        `json:"totalSeries"`
	Volume          float64    `json:"volume"`
	LastUpdate      *time.Time `json:"lastUpdate,omitempty"`
}

// SummaryStats aggregates progress over all exercises of a session.
type SummaryStats struct {
	TotalSeries        int     `json:"totalSeries"`
	CompletedSeries    int     `json:"completedSeries"`
	TotalExercises     int     `json:"totalExercises"`
	CompletedExercises int     `json:"completedExercises"`
	TotalVolume        float64 `json:"totalVolume"`
}
