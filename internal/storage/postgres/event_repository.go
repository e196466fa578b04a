package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MiguelPimienta19/mcc-web/internal/domain"
)

type EventRepository struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

func (r *EventRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return withTx(ctx, r.pool, fn)
}

func (r *EventRepository) CreateEvent(ctx context.Context, event domain.Event) error {
	const stmt = `
INSERT INTO events (id, title, description, location, starts_at, ends_at, recurrence_rule, created_by, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.exec(ctx, stmt,
		event.ID,
		event.Title,
		event.Description,
		event.Location,
		event.StartsAt,
		event.EndsAt,
		event.RecurrenceRule,
		event.CreatedBy,
		event.CreatedAt,
	)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return storeErr("create event", err)
	}
	return nil
}

func (r *EventRepository) GetEvent(ctx context.Context, id string) (domain.Event, error) {
	const query = `
SELECT id, title, description, location, starts_at, ends_at, recurrence_rule, created_by, created_at
FROM events
WHERE id = $1`

	return r.scanEvent(r.queryRow(ctx, query, id))
}

func (r *EventRepository) GetEventForUpdate(ctx context.Context, id string) (domain.Event, error) {
	const query = `
SELECT id, title, description, location, starts_at, ends_at, recurrence_rule, created_by, created_at
FROM events
WHERE id = $1
FOR UPDATE`

	return r.scanEvent(r.queryRow(ctx, query, id))
}

func (r *EventRepository) UpdateEvent(ctx context.Context, event domain.Event) error {
	const stmt = `
UPDATE events
SET title = $2, description = $3, location = $4, starts_at = $5, ends_at = $6
WHERE id = $1`

	tag, err := r.exec(ctx, stmt,
		event.ID,
		event.Title,
		event.Description,
		event.Location,
		event.StartsAt,
		event.EndsAt,
	)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return storeErr("update event", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func (r *EventRepository) DeleteEvent(ctx context.Context, id string) error {
	const stmt = `DELETE FROM events WHERE id = $1`

	tag, err := r.exec(ctx, stmt, id)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return storeErr("delete event", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

// ListEventsBetween returns events overlapping the inclusive window
// [start, end], ascending by starts_at. The predicate is interval
// intersection, so events straddling a window boundary are included.
func (r *EventRepository) ListEventsBetween(ctx context.Context, start, end time.Time) ([]domain.Event, error) {
	const query = `
SELECT id, title, description, location, starts_at, ends_at, recurrence_rule, created_by, created_at
FROM events
WHERE starts_at <= $2 AND ends_at >= $1
ORDER BY starts_at ASC`

	rows, err := r.query(ctx, query, start, end)
	if err != nil {
		return nil, storeErr("list events", err)
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var event domain.Event
		if err := rows.Scan(
			&event.ID,
			&event.Title,
			&event.Description,
			&event.Location,
			&event.StartsAt,
			&event.EndsAt,
			&event.RecurrenceRule,
			&event.CreatedBy,
			&event.CreatedAt,
		); err != nil {
			return nil, storeErr("scan event", err)
		}
		events = append(events, event)
	}
	if rows.Err() != nil {
		return nil, storeErr("iterate events", rows.Err())
	}
	return events, nil
}

func (r *EventRepository) scanEvent(row pgx.Row) (domain.Event, error) {
	var event domain.Event
	err := row.Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.Location,
		&event.StartsAt,
		&event.EndsAt,
		&event.RecurrenceRule,
		&event.CreatedBy,
		&event.CreatedAt,
	)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.Event{}, domain.ErrInvalidID
		}
		if err == pgx.ErrNoRows {
			return domain.Event{}, domain.ErrEventNotFound
		}
		return domain.Event{}, storeErr("get event", err)
	}
	return event, nil
}

func (r *EventRepository) exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.Exec(ctx, sql, args...)
	}
	return r.pool.Exec(ctx, sql, args...)
}

func (r *EventRepository) queryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if tx := txFromContext(ctx); tx != nil {
		return tx.QueryRow(ctx, sql, args...)
	}
	return r.pool.QueryRow(ctx, sql, args...)
}

func (r *EventRepository) query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.Query(ctx, sql, args...)
	}
	return r.pool.Query(ctx, sql, args...)
}
