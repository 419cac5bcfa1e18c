package timetable

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	// Admit atomically checks the entry against existing entries sharing
	// its (course, day) scope and inserts it when clear. Returns
	// ErrTimeConflict on overlap.
	Admit(ctx context.Context, e *Entry) error

	// AdmitUpdate re-runs the overlap check for the new bounds, ignoring
	// the entry itself, then replaces the stored entry. Returns
	// ErrNotFound when the entry does not exist.
	AdmitUpdate(ctx context.Context, e *Entry) error

	GetByID(ctx context.Context, id string) (*Entry, error)
	List(ctx context.Context) ([]*Entry, error)
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

// scopeKey is the advisory-lock key for a (course, day) scope.
func scopeKey(courseID string, day DayOfWeek) string {
	return courseID + ":" + string(day)
}

func (r *pgxRepository) Admit(ctx context.Context, e *Entry) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin admit timetable tx failed: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := r.lockScope(ctx, tx, e); err != nil {
		return err
	}

	conflict, err := r.hasOverlap(ctx, tx, e, "")
	if err != nil {
		return err
	}
	if conflict {
		return ErrTimeConflict
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.timetable_entries").
		Columns("course_id", "day_of_week", "start_time", "end_time").
		Values(e.CourseID, e.DayOfWeek, e.StartTime, e.EndTime).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create timetable query failed: %w", err)
	}

	if err := tx.QueryRow(ctx, query, args...).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return fmt.Errorf("create timetable entry failed: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *pgxRepository) AdmitUpdate(ctx context.Context, e *Entry) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin update timetable tx failed: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := r.lockScope(ctx, tx, e); err != nil {
		return err
	}

	conflict, err := r.hasOverlap(ctx, tx, e, e.ID)
	if err != nil {
		return err
	}
	if conflict {
		return ErrTimeConflict
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.timetable_entries").
		Set("course_id", e.CourseID).
		Set("day_of_week", e.DayOfWeek).
		Set("start_time", e.StartTime).
		Set("end_time", e.EndTime).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": e.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update timetable query failed: %w", err)
	}

	ct, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update timetable entry failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}

	return tx.Commit(ctx)
}

func (r *pgxRepository) lockScope(ctx context.Context, tx pgx.Tx, e *Entry) error {
	if _, err := tx.Exec(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", scopeKey(e.CourseID, e.DayOfWeek)); err != nil {
		return fmt.Errorf("acquire timetable scope lock failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) hasOverlap(ctx context.Context, tx pgx.Tx, e *Entry, excludeID string) (bool, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	subQuery := psql.Select("1").
		From("public.timetable_entries").
		Where(squirrel.Eq{"course_id": e.CourseID}).
		Where(squirrel.Eq{"day_of_week": e.DayOfWeek}).
		Where(squirrel.Lt{"start_time": e.EndTime}).
		Where(squirrel.Gt{"end_time": e.StartTime})

	if excludeID != "" {
		subQuery = subQuery.Where(squirrel.NotEq{"id": excludeID})
	}

	sql, args, err := subQuery.ToSql()
	if err != nil {
		return false, fmt.Errorf("build timetable overlap query failed: %w", err)
	}

	var exists bool
	if err := tx.QueryRow(ctx, "SELECT EXISTS ("+sql+")", args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("check timetable overlap failed: %w", err)
	}
	return exists, nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Entry, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"t.id", "t.course_id", "c.name", "t.day_of_week",
		"t.start_time", "t.end_time", "t.created_at", "t.updated_at",
	).
		From("public.timetable_entries t").
		Join("public.courses c ON t.course_id = c.id").
		Where(squirrel.Eq{"t.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get timetable query failed: %w", err)
	}

	row := r.pool.QueryRow(ctx, query, args...)

	var e Entry
	if err := row.Scan(
		&e.ID, &e.CourseID, &e.CourseName, &e.DayOfWeek,
		&e.StartTime, &e.EndTime, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get timetable entry failed: %w", err)
	}
	return &e, nil
}

func (r *pgxRepository) List(ctx context.Context) ([]*Entry, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"t.id", "t.course_id", "c.name", "t.day_of_week",
		"t.start_time", "t.end_time", "t.created_at", "t.updated_at",
	).
		From("public.timetable_entries t").
		Join("public.courses c ON t.course_id = c.id").
		OrderBy("t.start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list timetable query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list timetable entries failed: %w", err)
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(
			&e.ID, &e.CourseID, &e.CourseName, &e.DayOfWeek,
			&e.StartTime, &e.EndTime, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan timetable entry failed: %w", err)
		}
		entries = append(entries, &e)
	}

	return entries, nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.timetable_entries").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete timetable query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete timetable entry failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
