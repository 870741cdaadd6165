package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/mvukovic/trainlog/internal/telemetry/metrics"
	"github.com/mvukovic/trainlog/internal/telemetry/tracing"
	"github.com/mvukovic/trainlog/internal/training/calendar"
	"github.com/mvukovic/trainlog/internal/training/routines"
	"github.com/mvukovic/trainlog/internal/training/series"
	"github.com/mvukovic/trainlog/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=sessions_test

type sessionResolver interface {
	EnsureSession(ctx context.Context, userID, routineID int, routineDayID *int, targetDate time.Time) (*Session, bool, error)
}

type sessionsRepo interface {
	Get(ctx context.Context, id int) (*Session, error)
}

type progressTracker interface {
	Progress(ctx context.Context, sessionID int, day routines.Day) ([]series.ExerciseProgress, series.SummaryStats, error)
	SaveSeries(ctx context.Context, day routines.Day, s series.Series) (*series.Series, *series.ExerciseProgress, error)
}

type routineCatalog interface {
	DayFor(ctx context.Context, routineID int, weekday time.Weekday) (*routines.Day, error)
}

type sessionFinisher interface {
	Finish(ctx context.Context, sessionID int, notes *string, rating *int) error
}

type EnsureSessionRequest struct {
	UserID       int    `json:"userId"`
	RoutineID    int    `json:"routineId"`
	RoutineDayID *int   `json:"routineDayId,omitempty"`
	Date         string `json:"date,omitempty"`
}

type EnsureSessionResponse struct {
	Session Session `json:"session"`
	Created bool    `json:"created"`
}

type ProgressResponse struct {
	Exercises   []series.ExerciseProgress `json:"exercises"`
	Stats       series.SummaryStats       `json:"stats"`
	CanFinish   bool                      `json:"canFinish"`
	Recommended *series.ExerciseProgress  `json:"recommended,omitempty"`
}

type AddSeriesRequest struct {
	ExerciseID int     `json:"exerciseId"`
	Reps       int     `json:"reps"`
	Weight     float64 `json:"weight"`
	RPE        *int    `json:"rpe,omitempty"`
}

type AddSeriesResponse struct {
	Series   series.Series           `json:"series"`
	Progress series.ExerciseProgress `json:"progress"`
}

type FinishSessionRequest struct {
	Notes  *string `json:"notes,omitempty"`
	Rating *int    `json:"rating,omitempty"`
}

type FinishSessionResponse struct {
	FinishedID int `json:"finishedId"`
}

type Handler struct {
	resolver sessionResolver
	repo     sessionsRepo
	tracker  progressTracker
	catalog  routineCatalog
	gate     sessionFinisher
	metrics  *metrics.Manager
}

func NewHandler(
	resolver sessionResolver,
	repo sessionsRepo,
	tracker progressTracker,
	catalog routineCatalog,
	gate sessionFinisher,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		resolver: resolver,
		repo:     repo,
		tracker:  tracker,
		catalog:  catalog,
		gate:     gate,
		metrics:  metricsManager,
	}
}

func (handler *Handler) HandleEnsureSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.ensure")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req EnsureSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("ensure session, unmarshal json params: %s", err)
		http.Error(w, "ensure session failed", http.StatusBadRequest)
		return
	}

	if req.UserID <= 0 || req.RoutineID <= 0 {
		http.Error(w, "error, user id or routine id invalid", http.StatusBadRequest)
		return
	}

	targetDate := time.Now()
	if req.Date != "" {
		dayKey, err := calendar.ParseDayKey(req.Date, time.Local)
		if err != nil {
			http.Error(w, "error, invalid date", http.StatusBadRequest)
			return
		}
		parsed, err := time.ParseInLocation(calendar.DayKeyLayout, dayKey, time.Local)
		if err != nil {
			http.Error(w, "error, invalid date", http.StatusBadRequest)
			return
		}
		targetDate = parsed
	}

	session, created, err := handler.resolver.EnsureSession(ctx, req.UserID, req.RoutineID, req.RoutineDayID, targetDate)
	if err != nil {
		log.Errorf("failed to ensure session [user %d, routine %d]: %s", req.UserID, req.RoutineID, err)
		http.Error(w, "error, failed to resolve session", http.StatusInternalServerError)
		return
	}

	if created {
		handler.metrics.CounterSessionsCreated.Inc()
	}

	respJson, err := json.Marshal(EnsureSessionResponse{
		Session: *session,
		Created: created,
	})
	if err != nil {
		log.Errorf("failed to marshal ensure session response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	statusCode := http.StatusOK
	if created {
		statusCode = http.StatusCreated
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, statusCode)
}

func (handler *Handler) HandleGetProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.progress")
	defer span.End()

	session, ok := handler.sessionFromRequest(ctx, w, r)
	if !ok {
		return
	}

	day, err := handler.dayForSession(ctx, session)
	if err != nil {
		log.Errorf("failed to get routine day for session %d: %s", session.ID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	progressList, stats, err := handler.tracker.Progress(ctx, session.ID, *day)
	if err != nil {
		log.Errorf("failed to get progress for session %d: %s", session.ID, err)
		http.Error(w, "failed to get session progress", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(ProgressResponse{
		Exercises:   progressList,
		Stats:       stats,
		CanFinish:   !session.Completed && CanFinish(stats),
		Recommended: RecommendedExercise(progressList),
	})
	if err != nil {
		log.Errorf("failed to marshal progress response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleAddSeries(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.addseries")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	session, ok := handler.sessionFromRequest(ctx, w, r)
	if !ok {
		return
	}

	if session.Completed {
		http.Error(w, "session already completed", http.StatusConflict)
		return
	}

	var req AddSeriesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("add series, unmarshal json params: %s", err)
		http.Error(w, "add series failed", http.StatusBadRequest)
		return
	}

	if reason := series.ValidateSeriesPayload(req.Reps, req.Weight, req.RPE); reason != "" {
		http.Error(w, reason, http.StatusBadRequest)
		return
	}

	day, err := handler.dayForSession(ctx, session)
	if err != nil {
		log.Errorf("failed to get routine day for session %d: %s", session.ID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	savedSeries, progress, err := handler.tracker.SaveSeries(ctx, *day, series.Series{
		SessionID:  session.ID,
		ExerciseID: req.ExerciseID,
		Reps:       req.Reps,
		Weight:     req.Weight,
		RPE:        req.RPE,
	})
	if err != nil {
		if errors.Is(err, series.ErrUnknownExercise) {
			http.Error(w, "exercise is not part of the session routine day", http.StatusBadRequest)
			return
		}
		log.Errorf("failed to save series for session %d: %s", session.ID, err)
		http.Error(w, "error, failed to save series", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterSeriesLogged.Inc()

	respJson, err := json.Marshal(AddSeriesResponse{
		Series:   *savedSeries,
		Progress: *progress,
	})
	if err != nil {
		log.Errorf("failed to marshal add series response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusCreated)
}

func (handler *Handler) HandleFinish(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sessions.finish")
	defer span.End()

	session, ok := handler.sessionFromRequest(ctx, w, r)
	if !ok {
		return
	}

	if session.Completed {
		http.Error(w, "session already completed", http.StatusConflict)
		return
	}

	var req FinishSessionRequest
	if r.Body != nil {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Tracef("finish session, unmarshal json params: %s", err)
			http.Error(w, "finish session failed", http.StatusBadRequest)
			return
		}
	}

	if req.Rating != nil && (*req.Rating < MinRating || *req.Rating > MaxRating) {
		http.Error(w, "rating must be between 1 and 5", http.StatusBadRequest)
		return
	}

	day, err := handler.dayForSession(ctx, session)
	if err != nil {
		log.Errorf("failed to get routine day for session %d: %s", session.ID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	_, stats, err := handler.tracker.Progress(ctx, session.ID, *day)
	if err != nil {
		log.Errorf("failed to get progress for session %d: %s", session.ID, err)
		http.Error(w, "failed to get session progress", http.StatusInternalServerError)
		return
	}

	if !CanFinish(stats) {
		http.Error(w, "session cannot be finished yet", http.StatusConflict)
		return
	}

	if err := handler.gate.Finish(ctx, session.ID, req.Notes, req.Rating); err != nil {
		if errors.Is(err, ErrSessionCompleted) {
			http.Error(w, "session already completed", http.StatusConflict)
			return
		}
		log.Errorf("failed to finish session %d: %s", session.ID, err)
		http.Error(w, "error, failed to finish session", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterSessionsFinished.Inc()
	log.Debugf("session %d finished", session.ID)

	respJson, err := json.Marshal(FinishSessionResponse{
		FinishedID: session.ID,
	})
	if err != nil {
		log.Errorf("failed to marshal finish response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) sessionFromRequest(ctx context.Context, w http.ResponseWriter, r *http.Request) (*Session, bool) {
	vars := mux.Vars(r)
	idStr := vars["id"]
	if idStr == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return nil, false
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return nil, false
	}

	session, err := handler.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			http.Error(w, "session not found", http.StatusNotFound)
			return nil, false
		}
		log.Errorf("failed to get session %d: %s", id, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return nil, false
	}

	return session, true
}

// dayForSession maps the session's calendar day to its routine day. A
// session without a scheduled routine day resolves to an empty day, so
// progress over it is empty instead of an error.
func (handler *Handler) dayForSession(ctx context.Context, session *Session) (*routines.Day, error) {
	sessionDate, err := time.ParseInLocation(calendar.DayKeyLayout, session.Day, time.Local)
	if err != nil {
		return nil, err
	}

	day, err := handler.catalog.DayFor(ctx, session.RoutineID, sessionDate.Weekday())
	if err != nil {
		if errors.Is(err, routines.ErrDayNotFound) {
			return &routines.Day{RoutineID: session.RoutineID, Weekday: sessionDate.Weekday()}, nil
		}
		return nil, err
	}

	return day, nil
}
