package booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acadhub/campus-resource-backend/internal/classroom"
	"github.com/acadhub/campus-resource-backend/internal/course"
	"github.com/acadhub/campus-resource-backend/internal/schedule"
)

// stubRoomService serves a fixed set of rooms.
type stubRoomService struct {
	rooms map[string]*classroom.ClassRoom
}

func (s *stubRoomService) GetByID(_ context.Context, id string) (*classroom.ClassRoom, error) {
	if room, ok := s.rooms[id]; ok {
		return room, nil
	}
	return nil, classroom.ErrNotFound
}

func (s *stubRoomService) Create(context.Context, classroom.CreateRequest) (*classroom.ClassRoom, error) {
	panic("not implemented")
}
func (s *stubRoomService) List(context.Context) ([]*classroom.ClassRoom, error) {
	panic("not implemented")
}
func (s *stubRoomService) Update(context.Context, string, classroom.UpdateRequest) (*classroom.ClassRoom, error) {
	panic("not implemented")
}
func (s *stubRoomService) Delete(context.Context, string) error { panic("not implemented") }

// stubCourseService serves a fixed set of courses.
type stubCourseService struct {
	courses map[string]*course.Course
}

func (s *stubCourseService) GetByID(_ context.Context, id string) (*course.Course, error) {
	if c, ok := s.courses[id]; ok {
		return c, nil
	}
	return nil, course.ErrNotFound
}

func (s *stubCourseService) Create(context.Context, course.CreateRequest) (*course.Course, error) {
	panic("not implemented")
}
func (s *stubCourseService) List(context.Context) ([]*course.Course, error) {
	panic("not implemented")
}
func (s *stubCourseService) Update(context.Context, string, course.UpdateRequest) (*course.Course, error) {
	panic("not implemented")
}
func (s *stubCourseService) Delete(context.Context, string) error { panic("not implemented") }
func (s *stubCourseService) AssignFaculty(context.Context, string, string) (*course.Course, error) {
	panic("not implemented")
}

func newTestService() Service {
	rooms := &stubRoomService{rooms: map[string]*classroom.ClassRoom{
		"room-1": {ID: "room-1", Name: "Lecture Hall A", Capacity: 120},
		"room-2": {ID: "room-2", Name: "Lab B", Capacity: 30},
	}}
	courses := &stubCourseService{courses: map[string]*course.Course{
		"course-1": {ID: "course-1", Name: "Algorithms", Code: "CS301"},
	}}
	return NewService(NewMemoryRepository(), rooms, courses)
}

func slot(startHour, startMin, endHour, endMin int) (time.Time, time.Time) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	return day.Add(time.Duration(startHour)*time.Hour + time.Duration(startMin)*time.Minute),
		day.Add(time.Duration(endHour)*time.Hour + time.Duration(endMin)*time.Minute)
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	start, end := slot(9, 0, 10, 0)
	b, err := svc.Create(ctx, CreateRequest{
		RoomID: "room-1", CourseID: "course-1", StartTime: start, EndTime: end,
	})
	require.NoError(t, err)
	require.NotEmpty(t, b.ID)

	t.Run("overlapping booking for same room rejected", func(t *testing.T) {
		overlapStart, overlapEnd := slot(9, 30, 9, 45)
		_, err := svc.Create(ctx, CreateRequest{
			RoomID: "room-1", CourseID: "course-1", StartTime: overlapStart, EndTime: overlapEnd,
		})
		assert.ErrorIs(t, err, ErrTimeConflict)

		// The original booking stays retrievable.
		got, err := svc.GetByID(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, b.ID, got.ID)
	})

	t.Run("same slot in a different room admitted", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateRequest{
			RoomID: "room-2", CourseID: "course-1", StartTime: start, EndTime: end,
		})
		assert.NoError(t, err)
	})

	t.Run("touching boundary admitted", func(t *testing.T) {
		nextStart, nextEnd := slot(10, 0, 11, 0)
		_, err := svc.Create(ctx, CreateRequest{
			RoomID: "room-1", CourseID: "course-1", StartTime: nextStart, EndTime: nextEnd,
		})
		assert.NoError(t, err, "a booking starting exactly when another ends must not conflict")
	})
}

func TestCreateBookingValidation(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	start, end := slot(9, 0, 10, 0)

	t.Run("inverted time range rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateRequest{
			RoomID: "room-1", CourseID: "course-1", StartTime: end, EndTime: start,
		})
		assert.ErrorIs(t, err, schedule.ErrInvalidRange)
	})

	t.Run("unknown room rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateRequest{
			RoomID: "room-x", CourseID: "course-1", StartTime: start, EndTime: end,
		})
		assert.ErrorIs(t, err, ErrRoomNotFound)
	})

	t.Run("unknown course rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateRequest{
			RoomID: "room-1", CourseID: "course-x", StartTime: start, EndTime: end,
		})
		assert.ErrorIs(t, err, ErrCourseNotFound)
	})
}

func TestDeleteBooking(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	start, end := slot(9, 0, 10, 0)
	b, err := svc.Create(ctx, CreateRequest{
		RoomID: "room-1", CourseID: "course-1", StartTime: start, EndTime: end,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, b.ID))

	t.Run("second delete reports not found", func(t *testing.T) {
		assert.ErrorIs(t, svc.Delete(ctx, b.ID), ErrNotFound)
	})

	t.Run("slot is free again after delete", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateRequest{
			RoomID: "room-1", CourseID: "course-1", StartTime: start, EndTime: end,
		})
		assert.NoError(t, err)
	})
}

func TestConcurrentAdmissionsSameScope(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	start, end := slot(9, 0, 10, 0)
	const attempts = 16

	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Create(ctx, CreateRequest{
				RoomID: "room-1", CourseID: "course-1", StartTime: start, EndTime: end,
			})
		}(i)
	}
	wg.Wait()

	var successes, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		default:
			require.ErrorIs(t, err, ErrTimeConflict)
			conflicts++
		}
	}

	assert.Equal(t, 1, successes, "exactly one concurrent admission must win")
	assert.Equal(t, attempts-1, conflicts)
}
