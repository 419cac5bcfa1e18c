package course

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, course *Course) error
	GetByID(ctx context.Context, id string) (*Course, error)
	List(ctx context.Context) ([]*Course, error)
	Update(ctx context.Context, course *Course) error
	Delete(ctx context.Context, id string) error

	// AddFacultyMember links a faculty member to the course. Adding the
	// same member twice is a no-op.
	AddFacultyMember(ctx context.Context, courseID, facultyID string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const facultyAggExpr = `COALESCE(
	(
		SELECT array_agg(cf.faculty_member_id::text ORDER BY cf.added_at)
		FROM public.course_faculty cf
		WHERE cf.course_id = c.id
	),
	'{}'
) AS faculty_member_ids`

func (r *pgxRepository) Create(ctx context.Context, course *Course) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.courses").
		Columns("name", "code", "description", "credits").
		Values(course.Name, course.Code, course.Description, course.Credits).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create course query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).
		Scan(&course.ID, &course.CreatedAt, &course.UpdatedAt); err != nil {
		return fmt.Errorf("create course failed: %w", err)
	}

	for _, facultyID := range course.FacultyMemberIDs {
		if err := r.AddFacultyMember(ctx, course.ID, facultyID); err != nil {
			return err
		}
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Course, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"c.id", "c.name", "c.code", "c.description", "c.credits",
		facultyAggExpr,
		"c.created_at", "c.updated_at",
	).
		From("public.courses c").
		Where(squirrel.Eq{"c.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get course query failed: %w", err)
	}

	row := r.pool.QueryRow(ctx, query, args...)

	var course Course
	if err := row.Scan(
		&course.ID, &course.Name, &course.Code, &course.Description, &course.Credits,
		&course.FacultyMemberIDs, &course.CreatedAt, &course.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get course failed: %w", err)
	}
	return &course, nil
}

func (r *pgxRepository) List(ctx context.Context) ([]*Course, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"c.id", "c.name", "c.code", "c.description", "c.credits",
		facultyAggExpr,
		"c.created_at", "c.updated_at",
	).
		From("public.courses c").
		OrderBy("c.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list courses query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list courses failed: %w", err)
	}
	defer rows.Close()

	var courses []*Course
	for rows.Next() {
		var course Course
		if err := rows.Scan(
			&course.ID, &course.Name, &course.Code, &course.Description, &course.Credits,
			&course.FacultyMemberIDs, &course.CreatedAt, &course.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan course failed: %w", err)
		}
		courses = append(courses, &course)
	}

	return courses, nil
}

func (r *pgxRepository) Update(ctx context.Context, course *Course) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.courses").
		Set("name", course.Name).
		Set("code", course.Code).
		Set("description", course.Description).
		Set("credits", course.Credits).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": course.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update course query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update course failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.courses").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete course query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete course failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) AddFacultyMember(ctx context.Context, courseID, facultyID string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.course_faculty").
		Columns("course_id", "faculty_member_id").
		Values(courseID, facultyID).
		Suffix("ON CONFLICT DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("build add faculty query failed: %w", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("add faculty member failed: %w", err)
	}
	return nil
}
