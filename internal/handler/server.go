// Package handler implements the HTTP handlers for the schedule API.
// All handlers are methods on Server. Methods are split into files by concern
// (schedule.go, health.go, docs.go) but all share the same Server struct so
// they can access its dependencies.
package handler

import (
	"context"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/pkordes/schedule-api/internal/domain"
)

// ScheduleServicer defines the business operations the schedule handlers
// depend on. Defining the interface here (in the consumer package) follows
// the Go convention: "accept interfaces, return concrete types". It lets
// handler tests inject a mock without touching the database or service layer.
type ScheduleServicer interface {
	Create(ctx context.Context, schedule domain.Schedule) (domain.Schedule, error)
	GetByID(ctx context.Context, id int64) (domain.Schedule, error)
	List(ctx context.Context, params domain.ListParams) ([]domain.Schedule, error)
	Update(ctx context.Context, id int64, upd domain.ScheduleUpdate) (domain.Schedule, error)
	Delete(ctx context.Context, id int64) error
}

// Server holds the dependencies shared by all API endpoints.
// Wire it in main.go via r.Mount("/", srv.Routes()).
type Server struct {
	schedules ScheduleServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(schedules ScheduleServicer) *Server {
	return &Server{schedules: schedules}
}

// messageResponse is the wire shape for endpoints that reply with a single
// human-readable message, e.g. the welcome route and delete confirmations.
type messageResponse struct {
	Message string `json:"message"`
}

// Routes returns the chi router with every API endpoint registered.
// StripSlashes makes /schedules/ and /schedules interchangeable, so clients
// written against either form keep working.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.StripSlashes)

	r.Get("/", s.Root)
	r.Get("/healthz", s.Health)
	r.Get("/openapi.yaml", s.OpenAPISpec)
	r.Get("/docs", s.Docs)

	r.Route("/schedules", func(r chi.Router) {
		r.Post("/", s.CreateSchedule)
		r.Get("/", s.ListSchedules)
		r.Get("/{id}", s.GetSchedule)
		r.Put("/{id}", s.UpdateSchedule)
		r.Delete("/{id}", s.DeleteSchedule)
	})

	return r
}
