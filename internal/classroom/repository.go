package classroom

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, room *ClassRoom) error
	GetByID(ctx context.Context, id string) (*ClassRoom, error)
	List(ctx context.Context) ([]*ClassRoom, error)
	Update(ctx context.Context, room *ClassRoom) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

// bookingAggExpr projects the room's reservation list from the bookings
// relation, ordered by start time.
const bookingAggExpr = `COALESCE(
	(
		SELECT array_agg(b.id::text ORDER BY b.start_time)
		FROM public.bookings b
		WHERE b.room_id = r.id
	),
	'{}'
) AS booking_ids`

func (r *pgxRepository) Create(ctx context.Context, room *ClassRoom) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.classrooms").
		Columns("name", "capacity", "resources").
		Values(room.Name, room.Capacity, room.Resources).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create classroom query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).
		Scan(&room.ID, &room.CreatedAt, &room.UpdatedAt); err != nil {
		return fmt.Errorf("create classroom failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*ClassRoom, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"r.id", "r.name", "r.capacity", "r.resources",
		bookingAggExpr,
		"r.created_at", "r.updated_at",
	).
		From("public.classrooms r").
		Where(squirrel.Eq{"r.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get classroom query failed: %w", err)
	}

	row := r.pool.QueryRow(ctx, query, args...)

	var room ClassRoom
	if err := row.Scan(
		&room.ID, &room.Name, &room.Capacity, &room.Resources,
		&room.BookingIDs, &room.CreatedAt, &room.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get classroom failed: %w", err)
	}
	return &room, nil
}

func (r *pgxRepository) List(ctx context.Context) ([]*ClassRoom, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"r.id", "r.name", "r.capacity", "r.resources",
		bookingAggExpr,
		"r.created_at", "r.updated_at",
	).
		From("public.classrooms r").
		OrderBy("r.name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list classrooms query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list classrooms failed: %w", err)
	}
	defer rows.Close()

	var rooms []*ClassRoom
	for rows.Next() {
		var room ClassRoom
		if err := rows.Scan(
			&room.ID, &room.Name, &room.Capacity, &room.Resources,
			&room.BookingIDs, &room.CreatedAt, &room.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan classroom failed: %w", err)
		}
		rooms = append(rooms, &room)
	}

	return rooms, nil
}

func (r *pgxRepository) Update(ctx context.Context, room *ClassRoom) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.classrooms").
		Set("name", room.Name).
		Set("capacity", room.Capacity).
		Set("resources", room.Resources).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": room.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update classroom query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update classroom failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.classrooms").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete classroom query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete classroom failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
