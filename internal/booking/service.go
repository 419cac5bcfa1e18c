package booking

import (
	"context"
	"errors"
	"time"

	"github.com/acadhub/campus-resource-backend/internal/classroom"
	"github.com/acadhub/campus-resource-backend/internal/course"
	"github.com/acadhub/campus-resource-backend/internal/schedule"
)

type CreateRequest struct {
	RoomID    string
	CourseID  string
	StartTime time.Time
	EndTime   time.Time
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context) ([]*Booking, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo          Repository
	roomService   classroom.Service
	courseService course.Service
}

func NewService(repo Repository, roomService classroom.Service, courseService course.Service) Service {
	return &service{
		repo:          repo,
		roomService:   roomService,
		courseService: courseService,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	if _, err := schedule.NewRange(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	if _, err := s.roomService.GetByID(ctx, req.RoomID); err != nil {
		if errors.Is(err, classroom.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	if _, err := s.courseService.GetByID(ctx, req.CourseID); err != nil {
		if errors.Is(err, course.ErrNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	b := &Booking{
		RoomID:    req.RoomID,
		CourseID:  req.CourseID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}

	// Overlap check and insert happen as one atomic admission.
	if err := s.repo.Admit(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*Booking, error) {
	return s.repo.List(ctx)
}

func (s *service) Delete(ctx context.Context, id string) error {
	roomID, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}

	// The owning room is looked up after deletion so an inconsistent
	// room reference is surfaced instead of silently ignored.
	if _, err := s.roomService.GetByID(ctx, roomID); err != nil {
		if errors.Is(err, classroom.ErrNotFound) {
			return ErrRoomNotFound
		}
		return err
	}

	return nil
}
