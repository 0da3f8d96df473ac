package repo

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/pkordes/schedule-api/internal/domain"
)

// memScheduleRepo is an in-memory ScheduleRepo used by tests and DB-less
// wiring. It mirrors the store semantics of the Postgres implementation:
// ids start at 1 and are never reused, created_at == updated_at on creation,
// and partial updates leave nil fields untouched.
type memScheduleRepo struct {
	mu        sync.Mutex
	schedules map[int64]domain.Schedule
	nextID    int64
}

// NewMemScheduleRepo constructs an empty in-memory ScheduleRepo.
// Safe for concurrent use by multiple requests.
func NewMemScheduleRepo() ScheduleRepo {
	return &memScheduleRepo{
		schedules: make(map[int64]domain.Schedule),
		nextID:    1,
	}
}

func (r *memScheduleRepo) Create(_ context.Context, schedule domain.Schedule) (domain.Schedule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	s := domain.Schedule{
		ID:          r.nextID,
		Title:       schedule.Title,
		Description: schedule.Description,
		StartTime:   schedule.StartTime,
		EndTime:     schedule.EndTime,
		IsCompleted: false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.nextID++ // never decremented, so deleted ids are not reused
	r.schedules[s.ID] = s
	return s, nil
}

func (r *memScheduleRepo) GetByID(_ context.Context, id int64) (domain.Schedule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.schedules[id]
	if !ok {
		return domain.Schedule{}, domain.ErrNotFound
	}
	return s, nil
}

func (r *memScheduleRepo) List(_ context.Context, params domain.ListParams) ([]domain.Schedule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := slices.Sorted(maps.Keys(r.schedules))
	if params.Skip >= len(ids) {
		return nil, nil
	}
	ids = ids[params.Skip:]
	if params.Limit < len(ids) {
		ids = ids[:params.Limit]
	}

	schedules := make([]domain.Schedule, 0, len(ids))
	for _, id := range ids {
		schedules = append(schedules, r.schedules[id])
	}
	return schedules, nil
}

func (r *memScheduleRepo) Update(_ context.Context, id int64, upd domain.ScheduleUpdate) (domain.Schedule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.schedules[id]
	if !ok {
		return domain.Schedule{}, domain.ErrNotFound
	}

	if upd.Title != nil {
		s.Title = *upd.Title
	}
	if upd.Description != nil {
		s.Description = *upd.Description
	}
	if upd.StartTime != nil {
		s.StartTime = *upd.StartTime
	}
	if upd.EndTime != nil {
		s.EndTime = *upd.EndTime
	}
	if upd.IsCompleted != nil {
		s.IsCompleted = *upd.IsCompleted
	}

	// updated_at must advance even on clocks too coarse to distinguish
	// two calls within the same instant.
	now := time.Now().UTC()
	if !now.After(s.UpdatedAt) {
		now = s.UpdatedAt.Add(time.Nanosecond)
	}
	s.UpdatedAt = now

	r.schedules[id] = s
	return s, nil
}

func (r *memScheduleRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.schedules[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.schedules, id)
	return nil
}
