package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/schedule-api/internal/domain"
	"github.com/pkordes/schedule-api/internal/repo"
	"github.com/pkordes/schedule-api/internal/service"
)

// ---- mock repo -------------------------------------------------------------

// mockScheduleRepo is a hand-written test double for repo.ScheduleRepo.
type mockScheduleRepo struct {
	create  func(ctx context.Context, schedule domain.Schedule) (domain.Schedule, error)
	getByID func(ctx context.Context, id int64) (domain.Schedule, error)
	list    func(ctx context.Context, params domain.ListParams) ([]domain.Schedule, error)
	update  func(ctx context.Context, id int64, upd domain.ScheduleUpdate) (domain.Schedule, error)
	delete  func(ctx context.Context, id int64) error
}

func (m *mockScheduleRepo) Create(ctx context.Context, schedule domain.Schedule) (domain.Schedule, error) {
	return m.create(ctx, schedule)
}
func (m *mockScheduleRepo) GetByID(ctx context.Context, id int64) (domain.Schedule, error) {
	return m.getByID(ctx, id)
}
func (m *mockScheduleRepo) List(ctx context.Context, params domain.ListParams) ([]domain.Schedule, error) {
	return m.list(ctx, params)
}
func (m *mockScheduleRepo) Update(ctx context.Context, id int64, upd domain.ScheduleUpdate) (domain.Schedule, error) {
	return m.update(ctx, id, upd)
}
func (m *mockScheduleRepo) Delete(ctx context.Context, id int64) error {
	return m.delete(ctx, id)
}

// compile-time check: mockScheduleRepo must satisfy repo.ScheduleRepo.
var _ repo.ScheduleRepo = (*mockScheduleRepo)(nil)

// ---- helpers ---------------------------------------------------------------

func validSchedule() domain.Schedule {
	return domain.Schedule{
		Title:       "Meeting",
		Description: "Quarterly planning",
		StartTime:   time.Date(2024, 1, 20, 10, 0, 0, 0, time.UTC),
		EndTime:     time.Date(2024, 1, 20, 11, 0, 0, 0, time.UTC),
	}
}

// ---- Create ----------------------------------------------------------------

func TestScheduleService_Create_OK(t *testing.T) {
	input := validSchedule()
	stored := input
	stored.ID = 1
	stored.CreatedAt = time.Now().UTC()
	stored.UpdatedAt = stored.CreatedAt

	svc := service.NewScheduleService(&mockScheduleRepo{
		create: func(_ context.Context, s domain.Schedule) (domain.Schedule, error) {
			assert.Equal(t, input.Title, s.Title)
			return stored, nil
		},
	})

	got, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, stored.ID, got.ID)
	assert.False(t, got.IsCompleted)
}

func TestScheduleService_Create_RepoError(t *testing.T) {
	repoErr := errors.New("db exploded")

	svc := service.NewScheduleService(&mockScheduleRepo{
		create: func(_ context.Context, _ domain.Schedule) (domain.Schedule, error) {
			return domain.Schedule{}, repoErr
		},
	})

	_, err := svc.Create(context.Background(), validSchedule())

	assert.ErrorIs(t, err, repoErr)
}

// ---- GetByID ---------------------------------------------------------------

func TestScheduleService_GetByID_OK(t *testing.T) {
	expected := validSchedule()
	expected.ID = 7

	svc := service.NewScheduleService(&mockScheduleRepo{
		getByID: func(_ context.Context, id int64) (domain.Schedule, error) {
			assert.Equal(t, int64(7), id)
			return expected, nil
		},
	})

	got, err := svc.GetByID(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestScheduleService_GetByID_NotFound(t *testing.T) {
	svc := service.NewScheduleService(&mockScheduleRepo{
		getByID: func(_ context.Context, _ int64) (domain.Schedule, error) {
			return domain.Schedule{}, domain.ErrNotFound
		},
	})

	_, err := svc.GetByID(context.Background(), 42)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---- List ------------------------------------------------------------------

func TestScheduleService_List_OK(t *testing.T) {
	var captured domain.ListParams

	svc := service.NewScheduleService(&mockScheduleRepo{
		list: func(_ context.Context, params domain.ListParams) ([]domain.Schedule, error) {
			captured = params
			return []domain.Schedule{{ID: 1}, {ID: 2}}, nil
		},
	})

	got, err := svc.List(context.Background(), domain.ListParams{Skip: 2, Limit: 50})

	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, domain.ListParams{Skip: 2, Limit: 50}, captured, "params should pass through unchanged")
}

func TestScheduleService_List_ReturnsEmptySlice(t *testing.T) {
	svc := service.NewScheduleService(&mockScheduleRepo{
		list: func(_ context.Context, _ domain.ListParams) ([]domain.Schedule, error) {
			return nil, nil
		},
	})

	got, err := svc.List(context.Background(), domain.NewListParams(nil, nil))

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestScheduleService_List_RepoError(t *testing.T) {
	repoErr := errors.New("db exploded")

	svc := service.NewScheduleService(&mockScheduleRepo{
		list: func(_ context.Context, _ domain.ListParams) ([]domain.Schedule, error) {
			return nil, repoErr
		},
	})

	_, err := svc.List(context.Background(), domain.NewListParams(nil, nil))

	assert.ErrorIs(t, err, repoErr)
}

// ---- Update ----------------------------------------------------------------

func TestScheduleService_Update_OK(t *testing.T) {
	completed := true
	var captured domain.ScheduleUpdate

	svc := service.NewScheduleService(&mockScheduleRepo{
		update: func(_ context.Context, id int64, upd domain.ScheduleUpdate) (domain.Schedule, error) {
			captured = upd
			s := validSchedule()
			s.ID = id
			s.IsCompleted = true
			return s, nil
		},
	})

	got, err := svc.Update(context.Background(), 3, domain.ScheduleUpdate{IsCompleted: &completed})

	require.NoError(t, err)
	assert.True(t, got.IsCompleted)
	require.NotNil(t, captured.IsCompleted)
	assert.Nil(t, captured.Title, "unset fields should stay nil through the service")
}

func TestScheduleService_Update_NotFound(t *testing.T) {
	completed := true

	svc := service.NewScheduleService(&mockScheduleRepo{
		update: func(_ context.Context, _ int64, _ domain.ScheduleUpdate) (domain.Schedule, error) {
			return domain.Schedule{}, domain.ErrNotFound
		},
	})

	_, err := svc.Update(context.Background(), 42, domain.ScheduleUpdate{IsCompleted: &completed})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---- Delete ----------------------------------------------------------------

func TestScheduleService_Delete_OK(t *testing.T) {
	svc := service.NewScheduleService(&mockScheduleRepo{
		delete: func(_ context.Context, id int64) error {
			assert.Equal(t, int64(5), id)
			return nil
		},
	})

	err := svc.Delete(context.Background(), 5)

	require.NoError(t, err)
}

func TestScheduleService_Delete_NotFound(t *testing.T) {
	svc := service.NewScheduleService(&mockScheduleRepo{
		delete: func(_ context.Context, _ int64) error {
			return domain.ErrNotFound
		},
	})

	err := svc.Delete(context.Background(), 42)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
