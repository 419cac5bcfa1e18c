package course

import (
	"context"
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acadhub/campus-resource-backend/internal/user"
)

// fakeRepository holds courses in memory.
type fakeRepository struct {
	courses map[string]*Course
	nextID  int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{courses: make(map[string]*Course)}
}

func (r *fakeRepository) Create(_ context.Context, c *Course) error {
	r.nextID++
	c.ID = fmt.Sprintf("course-%d", r.nextID)
	stored := *c
	stored.FacultyMemberIDs = slices.Clone(c.FacultyMemberIDs)
	r.courses[c.ID] = &stored
	return nil
}

func (r *fakeRepository) GetByID(_ context.Context, id string) (*Course, error) {
	c, ok := r.courses[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *c
	copied.FacultyMemberIDs = slices.Clone(c.FacultyMemberIDs)
	return &copied, nil
}

func (r *fakeRepository) List(_ context.Context) ([]*Course, error) {
	var out []*Course
	for _, c := range r.courses {
		copied := *c
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeRepository) Update(_ context.Context, c *Course) error {
	stored, ok := r.courses[c.ID]
	if !ok {
		return ErrNotFound
	}
	stored.Name = c.Name
	stored.Code = c.Code
	stored.Description = c.Description
	stored.Credits = c.Credits
	return nil
}

func (r *fakeRepository) Delete(_ context.Context, id string) error {
	if _, ok := r.courses[id]; !ok {
		return ErrNotFound
	}
	delete(r.courses, id)
	return nil
}

func (r *fakeRepository) AddFacultyMember(_ context.Context, courseID, facultyID string) error {
	c, ok := r.courses[courseID]
	if !ok {
		return ErrNotFound
	}
	if !slices.Contains(c.FacultyMemberIDs, facultyID) {
		c.FacultyMemberIDs = append(c.FacultyMemberIDs, facultyID)
	}
	return nil
}

// stubUserService serves fixed users to AssignFaculty.
type stubUserService struct {
	users map[string]*user.User
}

func (s *stubUserService) Register(context.Context, user.RegisterRequest) (*user.User, error) {
	panic("not used")
}

func (s *stubUserService) Login(context.Context, string, string) (*user.User, error) {
	panic("not used")
}

func (s *stubUserService) GetByID(_ context.Context, id string) (*user.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	return u, nil
}

func newCourseTestService() Service {
	users := &stubUserService{
		users: map[string]*user.User{
			"faculty-1": {ID: "faculty-1", Role: user.RoleFaculty},
			"faculty-2": {ID: "faculty-2", Role: user.RoleFaculty},
			"student-1": {ID: "student-1", Role: user.RoleStudent},
		},
	}
	return NewService(newFakeRepository(), users)
}

func TestCreateCourse(t *testing.T) {
	ctx := context.Background()
	svc := newCourseTestService()

	c, err := svc.Create(ctx, CreateRequest{
		Name:      "Algorithms",
		Code:      "CS301",
		Credits:   4,
		CreatorID: "faculty-1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, []string{"faculty-1"}, c.FacultyMemberIDs, "creator starts as faculty member")
}

func TestAssignFaculty(t *testing.T) {
	ctx := context.Background()
	svc := newCourseTestService()

	c, err := svc.Create(ctx, CreateRequest{Name: "Algorithms", Code: "CS301", CreatorID: "faculty-1"})
	require.NoError(t, err)

	t.Run("faculty member added", func(t *testing.T) {
		updated, err := svc.AssignFaculty(ctx, c.ID, "faculty-2")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"faculty-1", "faculty-2"}, updated.FacultyMemberIDs)
	})

	t.Run("assigning twice is a no-op", func(t *testing.T) {
		updated, err := svc.AssignFaculty(ctx, c.ID, "faculty-2")
		require.NoError(t, err)
		assert.Len(t, updated.FacultyMemberIDs, 2)
	})

	t.Run("student cannot be assigned", func(t *testing.T) {
		_, err := svc.AssignFaculty(ctx, c.ID, "student-1")
		assert.ErrorIs(t, err, ErrInvalidFaculty)
	})

	t.Run("unknown user rejected", func(t *testing.T) {
		_, err := svc.AssignFaculty(ctx, c.ID, "nobody")
		assert.ErrorIs(t, err, ErrInvalidFaculty)
	})

	t.Run("unknown course", func(t *testing.T) {
		_, err := svc.AssignFaculty(ctx, "missing", "faculty-2")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestUpdateAndDeleteCourse(t *testing.T) {
	ctx := context.Background()
	svc := newCourseTestService()

	c, err := svc.Create(ctx, CreateRequest{Name: "Algorithms", Code: "CS301", CreatorID: "faculty-1"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, c.ID, UpdateRequest{Name: "Advanced Algorithms", Code: "CS401", Credits: 5})
	require.NoError(t, err)
	assert.Equal(t, "Advanced Algorithms", updated.Name)
	assert.Equal(t, 5, updated.Credits)

	require.NoError(t, svc.Delete(ctx, c.ID))
	_, err = svc.GetByID(ctx, c.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, c.ID), ErrNotFound)
}
