package timetable

import (
	"context"
	"errors"
	"time"

	"github.com/acadhub/campus-resource-backend/internal/course"
	"github.com/acadhub/campus-resource-backend/internal/schedule"
)

type EntryRequest struct {
	CourseID  string
	DayOfWeek DayOfWeek
	StartTime time.Time
	EndTime   time.Time
}

// ScheduleNotifier receives fan-out work after a timetable mutation has
// been committed. Implementations must not block the caller.
type ScheduleNotifier interface {
	EnqueueScheduleChange(courseID, courseName string, dayOfWeek string)
}

type Service interface {
	Create(ctx context.Context, req EntryRequest) (*Entry, error)
	Update(ctx context.Context, id string, req EntryRequest) (*Entry, error)
	GetByID(ctx context.Context, id string) (*Entry, error)
	List(ctx context.Context) ([]*Entry, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo          Repository
	courseService course.Service
	notifier      ScheduleNotifier
}

func NewService(repo Repository, courseService course.Service, notifier ScheduleNotifier) Service {
	return &service{
		repo:          repo,
		courseService: courseService,
		notifier:      notifier,
	}
}

func (s *service) validate(ctx context.Context, req EntryRequest) (*course.Course, error) {
	if _, err := schedule.NewRange(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}
	if !req.DayOfWeek.Valid() {
		return nil, ErrInvalidDay
	}

	c, err := s.courseService.GetByID(ctx, req.CourseID)
	if err != nil {
		if errors.Is(err, course.ErrNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *service) Create(ctx context.Context, req EntryRequest) (*Entry, error) {
	c, err := s.validate(ctx, req)
	if err != nil {
		return nil, err
	}

	e := &Entry{
		CourseID:  req.CourseID,
		DayOfWeek: req.DayOfWeek,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}

	if err := s.repo.Admit(ctx, e); err != nil {
		return nil, err
	}
	e.CourseName = c.Name

	return e, nil
}

func (s *service) Update(ctx context.Context, id string, req EntryRequest) (*Entry, error) {
	c, err := s.validate(ctx, req)
	if err != nil {
		return nil, err
	}

	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	e.CourseID = req.CourseID
	e.DayOfWeek = req.DayOfWeek
	e.StartTime = req.StartTime
	e.EndTime = req.EndTime

	if err := s.repo.AdmitUpdate(ctx, e); err != nil {
		return nil, err
	}
	e.CourseName = c.Name

	// Fan-out is queued once the entry is committed; the caller's
	// response never waits for notification delivery.
	if s.notifier != nil {
		s.notifier.EnqueueScheduleChange(e.CourseID, e.CourseName, string(e.DayOfWeek))
	}

	return e, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Entry, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*Entry, error) {
	return s.repo.List(ctx)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
