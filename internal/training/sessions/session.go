package sessions

import (
	"errors"
	"time"
)

var (
	ErrSessionNotFound  = errors.New("training session not found")
	ErrSessionCompleted = errors.New("training session already completed")
)

// Session is one user's single day of training against one routine.
// Day holds the calendar day key ("2006-01-02") in the user's local
// wall-clock sense, never a UTC instant.
type Session struct {
	ID           int       `json:"id"`
	UserID       int       `json:"userId"`
	RoutineID    int       `json:"routineId"`
	RoutineDayID *int      `json:"routineDayId,omitempty"`
	Day          string    `json:"day"`
	Completed    bool      `json:"completed"`
	Notes        *string   `json:"notes,omitempty"`
	Rating       *int      `json:"rating,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

const (
	MinRating = 1
	MaxRating = 5
)
