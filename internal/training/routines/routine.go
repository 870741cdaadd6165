package routines

import (
	"time"
)

// Routine is a weekly training plan. Every weekday is either a rest day
// or carries a list of exercises with their target series counts.
type Routine struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	Name      string    `json:"name"`
	Days      []Day     `json:"days"`
	CreatedAt time.Time `json:"createdAt"`
}

type Day struct {
	ID        int          `json:"id"`
	RoutineID int          `json:"routineId"`
	Weekday   time.Weekday `json:"weekday"`
	Rest      bool         `json:"rest"`
	Name      string       `json:"name"`
	Exercises []Exercise   `json:"exercises"`
}

type Exercise struct {
	ID           int    `json:"id"`
	RoutineDayID int    `json:"routineDayId"`
	Name         string `json:"name"`
	TargetSeries int    `json:"targetSeries"`
	Position     int    `json:"position"`
}

// Trainable says whether the day expects any actual work.
func (d Day) Trainable() bool {
	return !d.Rest && len(d.Exercises) > 0
}

// TotalSeries is the sum of target series over all exercises of the day.
func (d Day) TotalSeries() int {
	total := 0
	for _, e := range d.Exercises {
		total += e.TargetSeries
	}
	return total
}

func (d Day) ExerciseByID(id int) *Exercise {
	for i := range d.Exercises {
		if d.Exercises[i].ID == id {
			return &d.Exercises[i]
		}
	}
	return nil
}
