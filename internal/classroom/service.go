package classroom

import "context"

type CreateRequest struct {
	Name      string
	Capacity  int
	Resources []string
}

type UpdateRequest struct {
	Name      string
	Capacity  int
	Resources []string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*ClassRoom, error)
	GetByID(ctx context.Context, id string) (*ClassRoom, error)
	List(ctx context.Context) ([]*ClassRoom, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*ClassRoom, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*ClassRoom, error) {
	room := &ClassRoom{
		Name:      req.Name,
		Capacity:  req.Capacity,
		Resources: req.Resources,
	}
	if err := s.repo.Create(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*ClassRoom, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*ClassRoom, error) {
	return s.repo.List(ctx)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*ClassRoom, error) {
	room, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	room.Name = req.Name
	room.Capacity = req.Capacity
	room.Resources = req.Resources

	if err := s.repo.Update(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
