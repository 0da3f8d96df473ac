// Package repo contains all database access logic for the schedule API.
// No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pkordes/schedule-api/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ScheduleRepo defines the persistence operations for Schedules.
// The service layer depends on this interface, not a concrete implementation,
// which allows the service to be unit-tested with a mock and end-to-end tests
// to substitute the in-memory implementation.
type ScheduleRepo interface {
	// Create inserts a new schedule and returns the persisted record (with
	// store-assigned id, created_at, and updated_at populated and
	// is_completed defaulted to false).
	Create(ctx context.Context, schedule domain.Schedule) (domain.Schedule, error)

	// GetByID retrieves a single schedule by its integer primary key.
	// Returns domain.ErrNotFound if no schedule with that ID exists.
	GetByID(ctx context.Context, id int64) (domain.Schedule, error)

	// List returns up to params.Limit schedules after skipping params.Skip,
	// ordered by id ascending (insertion order).
	List(ctx context.Context, params domain.ListParams) ([]domain.Schedule, error)

	// Update applies only the fields present in upd, leaving nil fields
	// untouched, and refreshes updated_at even when upd carries no fields.
	// Returns the resulting record, or domain.ErrNotFound if the ID is absent.
	Update(ctx context.Context, id int64, upd domain.ScheduleUpdate) (domain.Schedule, error)

	// Delete removes a schedule by ID. This is a hard delete.
	// Returns domain.ErrNotFound if no schedule with that ID exists.
	Delete(ctx context.Context, id int64) error
}

// pgScheduleRepo is the Postgres implementation of ScheduleRepo.
type pgScheduleRepo struct {
	db db
}

// NewScheduleRepo constructs a ScheduleRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewScheduleRepo(db db) ScheduleRepo {
	return &pgScheduleRepo{db: db}
}

// Create inserts a new schedule row and returns the full persisted record.
// id, is_completed, created_at, and updated_at come from the table defaults,
// so created_at == updated_at on the returned record.
func (r *pgScheduleRepo) Create(ctx context.Context, schedule domain.Schedule) (domain.Schedule, error) {
	const q = `
		INSERT INTO schedules (title, description, start_time, end_time)
		VALUES (@title, @description, @start_time, @end_time)
		RETURNING id, title, description, start_time, end_time, is_completed, created_at, updated_at`

	args := pgx.NamedArgs{
		"title":       schedule.Title,
		"description": schedule.Description,
		"start_time":  schedule.StartTime,
		"end_time":    schedule.EndTime,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanSchedule(row)
	if err != nil {
		return domain.Schedule{}, fmt.Errorf("repo.ScheduleRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a schedule by primary key.
func (r *pgScheduleRepo) GetByID(ctx context.Context, id int64) (domain.Schedule, error) {
	const q = `
		SELECT id, title, description, start_time, end_time, is_completed, created_at, updated_at
		FROM schedules
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanSchedule(row)
	if err != nil {
		return domain.Schedule{}, fmt.Errorf("repo.ScheduleRepo.GetByID: %w", err)
	}
	return result, nil
}

// List returns one window of schedules ordered by id ascending.
func (r *pgScheduleRepo) List(ctx context.Context, params domain.ListParams) ([]domain.Schedule, error) {
	const q = `
		SELECT id, title, description, start_time, end_time, is_completed, created_at, updated_at
		FROM schedules
		ORDER BY id
		OFFSET @skip
		LIMIT @limit`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"skip": params.Skip, "limit": params.Limit})
	if err != nil {
		return nil, fmt.Errorf("repo.ScheduleRepo.List: %w", err)
	}
	defer rows.Close()

	var schedules []domain.Schedule
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ScheduleRepo.List: scan: %w", err)
		}
		schedules = append(schedules, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ScheduleRepo.List: rows: %w", err)
	}

	return schedules, nil
}

// Update merges the supplied fields into the stored row in a single statement.
// COALESCE keeps the stored value wherever the bound parameter is NULL, which
// is exactly the "unset fields are untouched" contract; updated_at is always
// refreshed, including for an empty update.
//
// statement_timestamp() rather than now(): now() is frozen for the duration of
// a transaction, and updated_at must advance per update even inside one.
func (r *pgScheduleRepo) Update(ctx context.Context, id int64, upd domain.ScheduleUpdate) (domain.Schedule, error) {
	const q = `
		UPDATE schedules
		SET title        = COALESCE(@title, title),
		    description  = COALESCE(@description, description),
		    start_time   = COALESCE(@start_time, start_time),
		    end_time     = COALESCE(@end_time, end_time),
		    is_completed = COALESCE(@is_completed, is_completed),
		    updated_at   = statement_timestamp()
		WHERE id = @id
		RETURNING id, title, description, start_time, end_time, is_completed, created_at, updated_at`

	args := pgx.NamedArgs{
		"id":           id,
		"title":        upd.Title, // nil pointers become NULL
		"description":  upd.Description,
		"start_time":   upd.StartTime,
		"end_time":     upd.EndTime,
		"is_completed": upd.IsCompleted,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanSchedule(row)
	if err != nil {
		return domain.Schedule{}, fmt.Errorf("repo.ScheduleRepo.Update: %w", err)
	}
	return result, nil
}

// Delete removes a schedule by primary key.
func (r *pgScheduleRepo) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM schedules WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.ScheduleRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ScheduleRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scanSchedule to
// be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanSchedule maps a single database row into a domain.Schedule.
func scanSchedule(sc scanner) (domain.Schedule, error) {
	var s domain.Schedule
	err := sc.Scan(&s.ID, &s.Title, &s.Description, &s.StartTime, &s.EndTime,
		&s.IsCompleted, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Schedule{}, domain.ErrNotFound
		}
		return domain.Schedule{}, err
	}
	return s, nil
}
