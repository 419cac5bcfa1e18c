package enrollment

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, e *Enrollment) error
	List(ctx context.Context) ([]*Enrollment, error)
	Delete(ctx context.Context, id string) error

	// StudentIDsByCourse returns the IDs of students enrolled in the
	// course, in enrollment order.
	StudentIDsByCourse(ctx context.Context, courseID string) ([]string, error)

	// AllStudentIDs returns the distinct IDs of every enrolled student.
	AllStudentIDs(ctx context.Context) ([]string, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, e *Enrollment) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.enrollments").
		Columns("student_id", "course_id").
		Values(e.StudentID, e.CourseID).
		Suffix("RETURNING id, enrolled_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create enrollment query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&e.ID, &e.EnrolledAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrAlreadyEnrolled
		}
		return fmt.Errorf("create enrollment failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) List(ctx context.Context) ([]*Enrollment, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"e.id", "e.student_id", "u.username", "e.course_id", "c.name", "e.enrolled_at",
	).
		From("public.enrollments e").
		Join("public.users u ON e.student_id = u.id").
		Join("public.courses c ON e.course_id = c.id").
		OrderBy("e.enrolled_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list enrollments query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list enrollments failed: %w", err)
	}
	defer rows.Close()

	var enrollments []*Enrollment
	for rows.Next() {
		var e Enrollment
		if err := rows.Scan(
			&e.ID, &e.StudentID, &e.StudentName, &e.CourseID, &e.CourseName, &e.EnrolledAt,
		); err != nil {
			return nil, fmt.Errorf("scan enrollment failed: %w", err)
		}
		enrollments = append(enrollments, &e)
	}

	return enrollments, nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.enrollments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete enrollment query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete enrollment failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) StudentIDsByCourse(ctx context.Context, courseID string) ([]string, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("student_id").
		From("public.enrollments").
		Where(squirrel.Eq{"course_id": courseID}).
		OrderBy("enrolled_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build audience query failed: %w", err)
	}

	return r.scanIDs(ctx, query, args)
}

func (r *pgxRepository) AllStudentIDs(ctx context.Context) ([]string, error) {
	const query = `
		SELECT DISTINCT ON (student_id) student_id
		FROM public.enrollments
		ORDER BY student_id, enrolled_at ASC
	`
	return r.scanIDs(ctx, query, nil)
}

func (r *pgxRepository) scanIDs(ctx context.Context, query string, args []any) ([]string, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query student ids failed: %w", err)
	}
	defer rows.Close()

	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("collect student ids failed: %w", err)
	}
	return ids, nil
}
