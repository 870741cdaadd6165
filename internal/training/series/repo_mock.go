package series

import (
	"context"
	"sort"
	"time"
)

type repoMock struct {
	series map[int]*Series
	nextID int
}

func NewMockSeriesRepo() *repoMock {
	return &repoMock{
		series: make(map[int]*Series),
		nextID: 1,
	}
}

func (r *repoMock) Append(_ context.Context, s Series) (*Series, error) {
	maxNumber := 0
	for _, stored := range r.series {
		if stored.SessionID == s.SessionID && stored.ExerciseID == s.ExerciseID && stored.SeriesNumber > maxNumber {
			maxNumber = stored.SeriesNumber
		}
	}

	s.ID = r.nextID
	r.nextID++
	s.SeriesNumber = maxNumber + 1
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}

	r.series[s.ID] = &s
	return &s, nil
}

func (r *repoMock) ListBySession(_ context.Context, sessionID int) ([]Series, error) {
	seriesList := make([]Series, 0)
	for _, s := range r.series {
		if s.SessionID == sessionID {
			seriesList = append(seriesList, *s)
		}
	}
	sort.Slice(seriesList, func(i, j int) bool {
		if seriesList[i].ExerciseID != seriesList[j].ExerciseID {
			return seriesList[i].ExerciseID < seriesList[j].ExerciseID
		}
		return seriesList[i].SeriesNumber < seriesList[j].SeriesNumber
	})
	return seriesList, nil
}

func (r *repoMock) ListByExercise(_ context.Context, sessionID, exerciseID int) ([]Series, error) {
	all, _ := r.ListBySession(context.Background(), sessionID)
	seriesList := make([]Series, 0)
	for _, s := range all {
		if s.ExerciseID == exerciseID {
			seriesList = append(seriesList, s)
		}
	}
	return seriesList, nil
}

func (r *repoMock) Get(_ context.Context, id int) (*Series, error) {
	s, ok := r.series[id]
	if !ok {
		return nil, ErrSeriesNotFound
	}
	return s, nil
}
