package routines

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/mvukovic/trainlog/internal/telemetry/tracing"
	"github.com/mvukovic/trainlog/pkg"
)

type routinesRepo interface {
	Add(ctx context.Context, routine Routine) (*Routine, error)
	Get(ctx context.Context, id int) (*Routine, error)
	List(ctx context.Context, userID int) ([]Routine, error)
	Delete(ctx context.Context, id int) error
	DayFor(ctx context.Context, routineID int, weekday time.Weekday) (*Day, error)
}

type DeleteRoutineResponse struct {
	DeletedID int `json:"deletedId"`
}

type ListRoutinesResponse struct {
	Routines []Routine `json:"routines"`
	Total    int       `json:"total"`
}

type Handler struct {
	repo    routinesRepo
	catalog *Catalog
}

func NewHandler(repo routinesRepo, catalog *Catalog) *Handler {
	return &Handler{
		repo:    repo,
		catalog: catalog,
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.add")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var routine Routine
	if err := json.NewDecoder(r.Body).Decode(&routine); err != nil {
		log.Tracef("new routine, unmarshal json params: %s", err)
		http.Error(w, "add routine failed", http.StatusBadRequest)
		return
	}

	if routine.Name == "" {
		http.Error(w, "error, routine name empty", http.StatusBadRequest)
		return
	}
	if routine.UserID <= 0 {
		http.Error(w, "error, user id invalid", http.StatusBadRequest)
		return
	}
	for _, day := range routine.Days {
		if day.Weekday < time.Sunday || day.Weekday > time.Saturday {
			http.Error(w, "error, invalid weekday", http.StatusBadRequest)
			return
		}
		for _, ex := range day.Exercises {
			if ex.Name == "" || ex.TargetSeries <= 0 {
				http.Error(w, "error, invalid routine exercise", http.StatusBadRequest)
				return
			}
		}
	}

	addedRoutine, err := handler.repo.Add(ctx, routine)
	if err != nil {
		log.Errorf("failed to add new routine [%s]: %s", routine.Name, err)
		http.Error(w, "error, failed to add new routine", http.StatusInternalServerError)
		return
	}

	addedRoutineJson, err := json.Marshal(addedRoutine)
	if err != nil {
		log.Errorf("failed to marshal new routine: %s", err)
		http.Error(w, "error, failed to add new routine", http.StatusInternalServerError)
		return
	}

	log.Debugf("new routine added: %d [%s]", addedRoutine.ID, addedRoutine.Name)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedRoutineJson, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.get")
	defer span.End()

	vars := mux.Vars(r)
	idStr := vars["id"]
	if idStr == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	routine, err := handler.catalog.Routine(ctx, id)
	if err != nil {
		if errors.Is(err, ErrRoutineNotFound) {
			http.Error(w, "routine not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get routine %d: %s", id, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	routineJson, err := json.Marshal(routine)
	if err != nil {
		log.Errorf("failed to marshal routine: %s", err)
		http.Error(w, "failed to marshal routine", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, routineJson, http.StatusOK)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.list")
	defer span.End()

	userIDStr := r.URL.Query().Get("user_id")
	userID, err := strconv.Atoi(userIDStr)
	if err != nil {
		http.Error(w, "error, user_id invalid", http.StatusBadRequest)
		return
	}

	routinesList, err := handler.repo.List(ctx, userID)
	if err != nil {
		log.Errorf("list routines error: %s", err)
		http.Error(w, "failed to get routines", http.StatusInternalServerError)
		return
	}

	listResponseJson, err := json.Marshal(ListRoutinesResponse{
		Routines: routinesList,
		Total:    len(routinesList),
	})
	if err != nil {
		log.Errorf("marshal routines error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listResponseJson, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.delete")
	defer span.End()

	vars := mux.Vars(r)
	idStr := vars["id"]
	if idStr == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrRoutineNotFound) {
			log.Debugf("routine %d not found", id)
			http.Error(w, "routine not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete routine %d: %s", id, err)
		http.Error(w, "routine not deleted", http.StatusInternalServerError)
		return
	}

	handler.catalog.Invalidate(id)

	deleteRespJson, err := json.Marshal(DeleteRoutineResponse{
		DeletedID: id,
	})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "failed to marshal delete response", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, string(deleteRespJson))
}
