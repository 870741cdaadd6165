package progress

import (
	"encoding/json"
	"net/http"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/mvukovic/trainlog/internal/telemetry/tracing"
	"github.com/mvukovic/trainlog/pkg"
)

type Handler struct {
	weekly *Weekly
	streak *StreakCalculator
}

func NewHandler(weekly *Weekly, streak *StreakCalculator) *Handler {
	return &Handler{
		weekly: weekly,
		streak: streak,
	}
}

func (handler *Handler) HandleWeekly(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.weekly")
	defer span.End()

	userID, routineID, ok := idsFromQuery(w, r)
	if !ok {
		return
	}

	summary := handler.weekly.Summary(ctx, userID, routineID)

	summaryJson, err := json.Marshal(summary)
	if err != nil {
		log.Errorf("failed to marshal weekly summary: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, summaryJson, http.StatusOK)
}

func (handler *Handler) HandleStreak(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.streak")
	defer span.End()

	userID, routineID, ok := idsFromQuery(w, r)
	if !ok {
		return
	}

	streak := handler.streak.Current(ctx, userID, routineID)

	streakJson, err := json.Marshal(streak)
	if err != nil {
		log.Errorf("failed to marshal streak: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, streakJson, http.StatusOK)
}

func idsFromQuery(w http.ResponseWriter, r *http.Request) (userID, routineID int, ok bool) {
	userID, err := strconv.Atoi(r.URL.Query().Get("user_id"))
	if err != nil || userID <= 0 {
		http.Error(w, "error, user_id invalid", http.StatusBadRequest)
		return 0, 0, false
	}
	routineID, err = strconv.Atoi(r.URL.Query().Get("routine_id"))
	if err != nil || routineID <= 0 {
		http.Error(w, "error, routine_id invalid", http.StatusBadRequest)
		return 0, 0, false
	}
	return userID, routineID, true
}
