package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	// Admit atomically checks the booking against every existing booking
	// for the same room and inserts it when no overlap exists. Returns
	// ErrTimeConflict on overlap. Concurrent admissions for the same room
	// are serialized, so exactly one of two racing overlapping requests
	// can win.
	Admit(ctx context.Context, b *Booking) error

	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context) ([]*Booking, error)

	// Delete removes the booking and returns the owning room's ID.
	// Returns ErrNotFound if the booking does not exist.
	Delete(ctx context.Context, id string) (roomID string, err error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Admit(ctx context.Context, b *Booking) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin admit booking tx failed: %w", err)
	}
	defer tx.Rollback(ctx)

	// Serialize check-and-insert per room. Without this, two concurrent
	// requests could both pass the overlap check before either inserts.
	if _, err := tx.Exec(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", b.RoomID); err != nil {
		return fmt.Errorf("acquire room lock failed: %w", err)
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	// Half-open overlap test: existing.start < candidate.end AND existing.end > candidate.start
	subQuery := psql.Select("1").
		From("public.bookings").
		Where(squirrel.Eq{"room_id": b.RoomID}).
		Where(squirrel.Lt{"start_time": b.EndTime}).
		Where(squirrel.Gt{"end_time": b.StartTime})

	sql, args, err := subQuery.ToSql()
	if err != nil {
		return fmt.Errorf("build booking overlap query failed: %w", err)
	}

	var exists bool
	if err := tx.QueryRow(ctx, "SELECT EXISTS ("+sql+")", args...).Scan(&exists); err != nil {
		return fmt.Errorf("check booking overlap failed: %w", err)
	}
	if exists {
		return ErrTimeConflict
	}

	query, args, err := psql.Insert("public.bookings").
		Columns("room_id", "course_id", "start_time", "end_time").
		Values(b.RoomID, b.CourseID, b.StartTime, b.EndTime).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	if err := tx.QueryRow(ctx, query, args...).Scan(&b.ID, &b.CreatedAt); err != nil {
		return fmt.Errorf("create booking failed: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"b.id", "b.room_id", "r.name", "b.course_id", "c.name",
		"b.start_time", "b.end_time", "b.created_at",
	).
		From("public.bookings b").
		Join("public.classrooms r ON b.room_id = r.id").
		Join("public.courses c ON b.course_id = c.id").
		Where(squirrel.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	row := r.pool.QueryRow(ctx, query, args...)

	var b Booking
	if err := row.Scan(
		&b.ID, &b.RoomID, &b.RoomName, &b.CourseID, &b.CourseName,
		&b.StartTime, &b.EndTime, &b.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return &b, nil
}

func (r *pgxRepository) List(ctx context.Context) ([]*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"b.id", "b.room_id", "r.name", "b.course_id", "c.name",
		"b.start_time", "b.end_time", "b.created_at",
	).
		From("public.bookings b").
		Join("public.classrooms r ON b.room_id = r.id").
		Join("public.courses c ON b.course_id = c.id").
		OrderBy("b.start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		var b Booking
		if err := rows.Scan(
			&b.ID, &b.RoomID, &b.RoomName, &b.CourseID, &b.CourseName,
			&b.StartTime, &b.EndTime, &b.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, &b)
	}

	return bookings, nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) (string, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.bookings").
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING room_id").
		ToSql()
	if err != nil {
		return "", fmt.Errorf("build delete booking query failed: %w", err)
	}

	var roomID string
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&roomID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("delete booking failed: %w", err)
	}
	return roomID, nil
}
