// Package service contains the business logic for the schedule API.
// Services orchestrate repo calls and translate store absence into domain
// signals. No SQL and no HTTP live here — services depend on repo interfaces,
// not implementations.
package service

import (
	"context"
	"fmt"

	"github.com/pkordes/schedule-api/internal/domain"
	"github.com/pkordes/schedule-api/internal/repo"
)

// ScheduleService implements business logic for Schedule operations.
// It is the sole caller of the repo layer; handlers never touch it directly.
type ScheduleService struct {
	repo repo.ScheduleRepo
}

// NewScheduleService constructs a ScheduleService backed by the provided repo.
func NewScheduleService(r repo.ScheduleRepo) *ScheduleService {
	return &ScheduleService{repo: r}
}

// Create persists a new schedule. Input shape is validated at the HTTP
// boundary, so by the time it reaches here the schedule is well-formed.
func (s *ScheduleService) Create(ctx context.Context, schedule domain.Schedule) (domain.Schedule, error) {
	result, err := s.repo.Create(ctx, schedule)
	if err != nil {
		return domain.Schedule{}, fmt.Errorf("service.ScheduleService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single schedule by ID.
// Returns domain.ErrNotFound if no schedule with that ID exists.
func (s *ScheduleService) GetByID(ctx context.Context, id int64) (domain.Schedule, error) {
	result, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Schedule{}, fmt.Errorf("service.ScheduleService.GetByID: %w", err)
	}
	return result, nil
}

// List returns schedules ordered by id ascending, honoring params.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ScheduleService) List(ctx context.Context, params domain.ListParams) ([]domain.Schedule, error) {
	schedules, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("service.ScheduleService.List: %w", err)
	}
	if schedules == nil {
		return []domain.Schedule{}, nil
	}
	return schedules, nil
}

// Update applies a partial update to an existing schedule: only the fields
// set in upd change, everything else keeps its stored value.
// Returns domain.ErrNotFound if no schedule with that ID exists.
func (s *ScheduleService) Update(ctx context.Context, id int64, upd domain.ScheduleUpdate) (domain.Schedule, error) {
	result, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		return domain.Schedule{}, fmt.Errorf("service.ScheduleService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a schedule by ID.
// Returns domain.ErrNotFound if no schedule with that ID exists.
func (s *ScheduleService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.ScheduleService.Delete: %w", err)
	}
	return nil
}
