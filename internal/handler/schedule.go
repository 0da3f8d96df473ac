package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/schedule-api/internal/domain"
)

// CreateSchedule handles POST /schedules.
func (s *Server) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	var req createScheduleRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if errs := req.validate(); len(errs) > 0 {
		respondValidation(w, errs)
		return
	}

	created, err := s.schedules.Create(r.Context(), req.toDomain())
	if err != nil {
		respondServerError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

// ListSchedules handles GET /schedules.
// Supports ?skip= and ?limit= query parameters (defaults: skip=0, limit=100).
func (s *Server) ListSchedules(w http.ResponseWriter, r *http.Request) {
	skip, err := queryInt(r, "skip")
	if err != nil {
		respondValidation(w, []fieldError{{Field: "skip", Message: "skip must be an integer"}})
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		respondValidation(w, []fieldError{{Field: "limit", Message: "limit must be an integer"}})
		return
	}

	schedules, err := s.schedules.List(r.Context(), domain.NewListParams(skip, limit))
	if err != nil {
		respondServerError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, schedules)
}

// GetSchedule handles GET /schedules/{id}.
func (s *Server) GetSchedule(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	schedule, err := s.schedules.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondNotFound(w)
			return
		}
		respondServerError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, schedule)
}

// UpdateSchedule handles PUT /schedules/{id}.
// The body is a partial update: only the fields present change, everything
// else keeps its stored value. An empty object is valid and just refreshes
// the record's updated_at.
func (s *Server) UpdateSchedule(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req updateScheduleRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if errs := req.validate(); len(errs) > 0 {
		respondValidation(w, errs)
		return
	}

	updated, err := s.schedules.Update(r.Context(), id, req.toUpdate())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondNotFound(w)
			return
		}
		respondServerError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, updated)
}

// DeleteSchedule handles DELETE /schedules/{id}.
func (s *Server) DeleteSchedule(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := s.schedules.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondNotFound(w)
			return
		}
		respondServerError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, messageResponse{Message: "Schedule deleted successfully"})
}

// ---- request shapes --------------------------------------------------------

// timestamp is a time.Time that also accepts naive ISO 8601 input
// ("2024-01-20T10:00:00") alongside RFC 3339 ("2024-01-20T10:00:00Z").
// Naive values are taken as UTC.
type timestamp struct {
	time.Time
}

func (ts *timestamp) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return errors.New("timestamp must be a string")
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999999"} {
		if t, err := time.Parse(layout, s); err == nil {
			ts.Time = t
			return nil
		}
	}
	return fmt.Errorf("invalid timestamp %q", s)
}

// createScheduleRequest is the body of POST /schedules. Pointer fields
// distinguish "absent" from "zero value" so validation can name exactly the
// fields that are missing.
type createScheduleRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	StartTime   *timestamp `json:"start_time"`
	EndTime     *timestamp `json:"end_time"`
}

// validate returns one fieldError per violated rule, empty when the request
// is acceptable.
func (req createScheduleRequest) validate() []fieldError {
	var errs []fieldError
	if req.Title == nil {
		errs = append(errs, fieldError{Field: "title", Message: "field required"})
	} else if strings.TrimSpace(*req.Title) == "" {
		errs = append(errs, fieldError{Field: "title", Message: "title must not be empty"})
	}
	if req.StartTime == nil {
		errs = append(errs, fieldError{Field: "start_time", Message: "field required"})
	}
	if req.EndTime == nil {
		errs = append(errs, fieldError{Field: "end_time", Message: "field required"})
	}
	return errs
}

// toDomain converts the request into a domain.Schedule.
// Only call this after validate has passed.
func (req createScheduleRequest) toDomain() domain.Schedule {
	s := domain.Schedule{
		Title:     *req.Title,
		StartTime: req.StartTime.Time,
		EndTime:   req.EndTime.Time,
	}
	if req.Description != nil {
		s.Description = *req.Description
	}
	return s
}

// updateScheduleRequest is the body of PUT /schedules/{id}. Every field is
// optional; absent fields leave the stored value untouched. A JSON null is
// treated the same as an absent field.
type updateScheduleRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	StartTime   *timestamp `json:"start_time"`
	EndTime     *timestamp `json:"end_time"`
	IsCompleted *bool      `json:"is_completed"`
}

func (req updateScheduleRequest) validate() []fieldError {
	var errs []fieldError
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		errs = append(errs, fieldError{Field: "title", Message: "title must not be empty"})
	}
	return errs
}

// toUpdate converts the request into the domain partial-update shape.
func (req updateScheduleRequest) toUpdate() domain.ScheduleUpdate {
	upd := domain.ScheduleUpdate{
		Title:       req.Title,
		Description: req.Description,
		IsCompleted: req.IsCompleted,
	}
	if req.StartTime != nil {
		st := req.StartTime.Time
		upd.StartTime = &st
	}
	if req.EndTime != nil {
		et := req.EndTime.Time
		upd.EndTime = &et
	}
	return upd
}

// ---- parsing helpers -------------------------------------------------------

// decodeJSON decodes the request body into v. On failure it writes the
// matching error response and returns false: 413 when the body exceeded the
// size limit, 422 for everything else (empty body, malformed JSON, wrong
// field types).
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			respondTooLarge(w)
			return false
		}
		respondValidation(w, []fieldError{{Field: "body", Message: requestBodyMessage(err)}})
		return false
	}
	return true
}

// requestBodyMessage converts a JSON decode error into a client-facing message.
func requestBodyMessage(err error) string {
	if errors.Is(err, io.EOF) {
		return "request body is required"
	}
	return "invalid JSON: " + err.Error()
}

// pathID parses the {id} path parameter. A non-integer id is a malformed
// request, reported with the same field-level shape as body validation.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondValidation(w, []fieldError{{Field: "id", Message: "id must be an integer"}})
		return 0, false
	}
	return id, true
}

// queryInt returns the named query parameter as an int pointer, nil when the
// parameter is absent.
func queryInt(r *http.Request, name string) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
