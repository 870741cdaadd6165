package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvukovic/trainlog/internal/training/calendar"
	"github.com/mvukovic/trainlog/internal/training/routines"
	"github.com/mvukovic/trainlog/internal/training/sessions"
)

func (s *IntegrationTestSuite) doTrainingRequest(
	ctx context.Context,
	t *testing.T,
	method, path string,
	body any,
) *http.Response {
	var reqBody io.Reader
	if body != nil {
		bodyJson, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(bodyJson)
	}

	req, err := http.NewRequestWithContext(ctx, method, fmt.Sprintf("%s%s", serverEndpoint, path), reqBody)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-TRAINLOG-TOKEN", testDeviceAppSecret)

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded T
	require.NoError(t, json.Unmarshal(respBytes, &decoded), "body: %s", string(respBytes))
	return decoded
}

// full session lifecycle, from a fresh routine to a finished session
func (s *IntegrationTestSuite) TestTrainingSessionLifecycle() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	today := time.Now()
	todayKey := calendar.DayKey(today)

	newRoutine := routines.Routine{
		UserID: 1,
		Name:   "push pull legs",
		Days: []routines.Day{
			{
				Weekday: today.Weekday(),
				Name:    "push",
				Exercises: []routines.Exercise{
					{Name: "bench press", TargetSeries: 3, Position: 1},
					{Name: "overhead press", TargetSeries: 3, Position: 2},
				},
			},
		},
	}

	resp := s.doTrainingRequest(ctx, t, "POST", "/training/routine", newRoutine)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	addedRoutine := decodeBody[routines.Routine](t, resp)
	require.NotZero(t, addedRoutine.ID)
	require.Len(t, addedRoutine.Days, 1)
	require.Len(t, addedRoutine.Days[0].Exercises, 2)
	benchPress := addedRoutine.Days[0].Exercises[0]

	// first ensure creates the session
	ensureReq := sessions.EnsureSessionRequest{
		UserID:    1,
		RoutineID: addedRoutine.ID,
		Date:      todayKey,
	}
	resp = s.doTrainingRequest(ctx, t, "POST", "/training/session", ensureReq)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	ensured := decodeBody[sessions.EnsureSessionResponse](t, resp)
	require.True(t, ensured.Created)
	require.NotZero(t, ensured.Session.ID)
	assert.Equal(t, todayKey, ensured.Session.Day)
	sessionID := ensured.Session.ID

	// second ensure resolves to the same session
	resp = s.doTrainingRequest(ctx, t, "POST", "/training/session", ensureReq)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	ensuredAgain := decodeBody[sessions.EnsureSessionResponse](t, resp)
	assert.False(t, ensuredAgain.Created)
	assert.Equal(t, sessionID, ensuredAgain.Session.ID)

	// empty session cannot be finished yet
	resp = s.doTrainingRequest(ctx, t, "POST", fmt.Sprintf("/training/session/%d/finish", sessionID), sessions.FinishSessionRequest{})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// log all three bench press sets
	for i := 1; i <= 3; i++ {
		rpe := 7
		resp = s.doTrainingRequest(ctx, t, "POST", fmt.Sprintf("/training/session/%d/series", sessionID), sessions.AddSeriesRequest{
			ExerciseID: benchPress.ID,
			Reps:       10,
			Weight:     60,
			RPE:        &rpe,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		added := decodeBody[sessions.AddSeriesResponse](t, resp)
		assert.Equal(t, i, added.Series.SeriesNumber)
		assert.Equal(t, i, added.Progress.CompletedSeries)
	}

	resp = s.doTrainingRequest(ctx, t, "GET", fmt.Sprintf("/training/session/%d/progress", sessionID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	progress := decodeBody[sessions.ProgressResponse](t, resp)
	assert.Equal(t, 3, progress.Stats.CompletedSeries)
	assert.Equal(t, 6, progress.Stats.TotalSeries)
	assert.Equal(t, 1, progress.Stats.CompletedExercises)
	assert.True(t, progress.CanFinish)
	require.NotNil(t, progress.Recommended)
	assert.Equal(t, "overhead press", progress.Recommended.ExerciseName)

	// finish with a rating, then verify the session rejects further writes
	rating := 4
	notes := "solid push day"
	resp = s.doTrainingRequest(ctx, t, "POST", fmt.Sprintf("/training/session/%d/finish", sessionID), sessions.FinishSessionRequest{
		Notes:  &notes,
		Rating: &rating,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	finished := decodeBody[sessions.FinishSessionResponse](t, resp)
	assert.Equal(t, sessionID, finished.FinishedID)

	resp = s.doTrainingRequest(ctx, t, "POST", fmt.Sprintf("/training/session/%d/series", sessionID), sessions.AddSeriesRequest{
		ExerciseID: benchPress.ID,
		Reps:       10,
		Weight:     60,
	})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// weekly progress and streak pick up the finished session
	resp = s.doTrainingRequest(ctx, t, "GET", fmt.Sprintf("/training/progress/week?user_id=1&routine_id=%d", addedRoutine.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	weekly := decodeBody[map[string]any](t, resp)
	assert.EqualValues(t, 1, weekly["completed"])

	resp = s.doTrainingRequest(ctx, t, "GET", fmt.Sprintf("/training/progress/streak?user_id=1&routine_id=%d", addedRoutine.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	streak := decodeBody[map[string]any](t, resp)
	assert.EqualValues(t, 1, streak["currentStreak"])
}

func (s *IntegrationTestSuite) TestTrainingRoutineCRUD() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	newRoutine := routines.Routine{
		UserID: 77,
		Name:   "upper lower",
		Days: []routines.Day{
			{Weekday: time.Monday, Name: "upper", Exercises: []routines.Exercise{
				{Name: "row", TargetSeries: 4, Position: 1},
			}},
			{Weekday: time.Sunday, Rest: true},
		},
	}

	resp := s.doTrainingRequest(ctx, t, "POST", "/training/routine", newRoutine)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	addedRoutine := decodeBody[routines.Routine](t, resp)
	require.NotZero(t, addedRoutine.ID)

	resp = s.doTrainingRequest(ctx, t, "GET", fmt.Sprintf("/training/routine/%d", addedRoutine.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	fetched := decodeBody[routines.Routine](t, resp)
	assert.Equal(t, "upper lower", fetched.Name)
	require.Len(t, fetched.Days, 2)

	resp = s.doTrainingRequest(ctx, t, "GET", "/training/routine?user_id=77", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	listed := decodeBody[routines.ListRoutinesResponse](t, resp)
	assert.Equal(t, 1, listed.Total)

	resp = s.doTrainingRequest(ctx, t, "DELETE", fmt.Sprintf("/training/routine/%d", addedRoutine.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	deleted := decodeBody[routines.DeleteRoutineResponse](t, resp)
	assert.Equal(t, addedRoutine.ID, deleted.DeletedID)

	resp = s.doTrainingRequest(ctx, t, "DELETE", fmt.Sprintf("/training/routine/%d", addedRoutine.ID), nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}
