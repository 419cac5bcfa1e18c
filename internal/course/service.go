package course

import (
	"context"

	"github.com/acadhub/campus-resource-backend/internal/user"
)

type CreateRequest struct {
	Name        string
	Code        string
	Description string
	Credits     int
	CreatorID   string // faculty member creating the course
}

type UpdateRequest struct {
	Name        string
	Code        string
	Description string
	Credits     int
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Course, error)
	GetByID(ctx context.Context, id string) (*Course, error)
	List(ctx context.Context) ([]*Course, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Course, error)
	Delete(ctx context.Context, id string) error
	AssignFaculty(ctx context.Context, courseID, facultyID string) (*Course, error)
}

type service struct {
	repo        Repository
	userService user.Service
}

func NewService(repo Repository, userService user.Service) Service {
	return &service{
		repo:        repo,
		userService: userService,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Course, error) {
	course := &Course{
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
		Credits:     req.Credits,
	}
	if req.CreatorID != "" {
		course.FacultyMemberIDs = []string{req.CreatorID}
	}

	if err := s.repo.Create(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Course, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*Course, error) {
	return s.repo.List(ctx)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Course, error) {
	course, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	course.Name = req.Name
	course.Code = req.Code
	course.Description = req.Description
	course.Credits = req.Credits

	if err := s.repo.Update(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) AssignFaculty(ctx context.Context, courseID, facultyID string) (*Course, error) {
	if _, err := s.repo.GetByID(ctx, courseID); err != nil {
		return nil, err
	}

	// Only users holding the faculty role can be assigned to a course.
	u, err := s.userService.GetByID(ctx, facultyID)
	if err != nil || u.Role != user.RoleFaculty {
		return nil, ErrInvalidFaculty
	}

	if err := s.repo.AddFacultyMember(ctx, courseID, facultyID); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, courseID)
}
