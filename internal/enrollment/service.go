package enrollment

import (
	"context"
	"errors"

	"github.com/acadhub/campus-resource-backend/internal/course"
)

type Service interface {
	Enroll(ctx context.Context, studentID, courseID string) (*Enrollment, error)
	List(ctx context.Context) ([]*Enrollment, error)
	Delete(ctx context.Context, id string) error

	// StudentIDsByCourse and AllStudentIDs resolve notification
	// audiences; see the notification package.
	StudentIDsByCourse(ctx context.Context, courseID string) ([]string, error)
	AllStudentIDs(ctx context.Context) ([]string, error)
}

type service struct {
	repo          Repository
	courseService course.Service
}

func NewService(repo Repository, courseService course.Service) Service {
	return &service{
		repo:          repo,
		courseService: courseService,
	}
}

func (s *service) Enroll(ctx context.Context, studentID, courseID string) (*Enrollment, error) {
	if _, err := s.courseService.GetByID(ctx, courseID); err != nil {
		if errors.Is(err, course.ErrNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	e := &Enrollment{
		StudentID: studentID,
		CourseID:  courseID,
	}

	// Duplicate enrollments are rejected by the (student, course)
	// unique constraint, surfaced as ErrAlreadyEnrolled.
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *service) List(ctx context.Context) ([]*Enrollment, error) {
	return s.repo.List(ctx)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) StudentIDsByCourse(ctx context.Context, courseID string) ([]string, error) {
	return s.repo.StudentIDsByCourse(ctx, courseID)
}

func (s *service) AllStudentIDs(ctx context.Context) ([]string, error) {
	return s.repo.AllStudentIDs(ctx)
}
