package timetable

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acadhub/campus-resource-backend/internal/course"
	"github.com/acadhub/campus-resource-backend/internal/schedule"
)

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

// recordingNotifier captures schedule-change enqueues.
type recordingNotifier struct {
	mu    sync.Mutex
	calls []string
}

func (n *recordingNotifier) EnqueueScheduleChange(courseID, _ string, _ string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, courseID)
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.calls)
}

func newTestService() (Service, *recordingNotifier) {
	courses := &stubCourseService{courses: map[string]*course.Course{
		"course-1": {ID: "course-1", Name: "Algorithms", Code: "CS301"},
		"course-2": {ID: "course-2", Name: "Databases", Code: "CS305"},
	}}
	notifier := &recordingNotifier{}
	return NewService(NewMemoryRepository(), courses, notifier), notifier
}

func clock(hour, min int) time.Time {
	return time.Date(2026, 3, 2, hour, min, 0, 0, time.UTC)
}

func TestCreateTimetableEntry(t *testing.T) {
	ctx := context.Background()
	svc, notifier := newTestService()

	e, err := svc.Create(ctx, EntryRequest{
		CourseID: "course-1", DayOfWeek: Monday,
		StartTime: clock(9, 0), EndTime: clock(11, 0),
	})
	require.NoError(t, err)
	require.NotEmpty(t, e.ID)
	assert.Equal(t, "Algorithms", e.CourseName)
	assert.Zero(t, notifier.count(), "creation must not trigger fan-out")

	t.Run("overlap in same course and day rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, EntryRequest{
			CourseID: "course-1", DayOfWeek: Monday,
			StartTime: clock(10, 59), EndTime: clock(13, 0),
		})
		assert.ErrorIs(t, err, ErrTimeConflict)
	})

	t.Run("touching boundary admitted", func(t *testing.T) {
		_, err := svc.Create(ctx, EntryRequest{
			CourseID: "course-1", DayOfWeek: Monday,
			StartTime: clock(11, 0), EndTime: clock(13, 0),
		})
		assert.NoError(t, err)
	})

	t.Run("same time on another day admitted", func(t *testing.T) {
		_, err := svc.Create(ctx, EntryRequest{
			CourseID: "course-1", DayOfWeek: Tuesday,
			StartTime: clock(9, 0), EndTime: clock(11, 0),
		})
		assert.NoError(t, err)
	})

	t.Run("same time for another course admitted", func(t *testing.T) {
		_, err := svc.Create(ctx, EntryRequest{
			CourseID: "course-2", DayOfWeek: Monday,
			StartTime: clock(9, 0), EndTime: clock(11, 0),
		})
		assert.NoError(t, err)
	})
}

func TestCreateTimetableEntryValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	t.Run("inverted range rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, EntryRequest{
			CourseID: "course-1", DayOfWeek: Monday,
			StartTime: clock(11, 0), EndTime: clock(9, 0),
		})
		assert.ErrorIs(t, err, schedule.ErrInvalidRange)
	})

	t.Run("unknown day rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, EntryRequest{
			CourseID: "course-1", DayOfWeek: "Someday",
			StartTime: clock(9, 0), EndTime: clock(11, 0),
		})
		assert.ErrorIs(t, err, ErrInvalidDay)
	})

	t.Run("unknown course rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, EntryRequest{
			CourseID: "course-x", DayOfWeek: Monday,
			StartTime: clock(9, 0), EndTime: clock(11, 0),
		})
		assert.ErrorIs(t, err, ErrCourseNotFound)
	})
}

func TestUpdateTimetableEntry(t *testing.T) {
	ctx := context.Background()
	svc, notifier := newTestService()

	e, err := svc.Create(ctx, EntryRequest{
		CourseID: "course-1", DayOfWeek: Monday,
		StartTime: clock(9, 0), EndTime: clock(11, 0),
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, EntryRequest{
		CourseID: "course-1", DayOfWeek: Monday,
		StartTime: clock(13, 0), EndTime: clock(14, 0),
	})
	require.NoError(t, err)

	t.Run("update keeping own slot does not conflict with itself", func(t *testing.T) {
		updated, err := svc.Update(ctx, e.ID, EntryRequest{
			CourseID: "course-1", DayOfWeek: Monday,
			StartTime: clock(9, 30), EndTime: clock(10, 30),
		})
		require.NoError(t, err)
		assert.Equal(t, clock(9, 30), updated.StartTime)
	})

	t.Run("update into another entry's slot rejected", func(t *testing.T) {
		_, err := svc.Update(ctx, e.ID, EntryRequest{
			CourseID: "course-1", DayOfWeek: Monday,
			StartTime: clock(13, 30), EndTime: clock(14, 30),
		})
		assert.ErrorIs(t, err, ErrTimeConflict)
	})

	t.Run("each successful update queues exactly one fan-out", func(t *testing.T) {
		assert.Equal(t, 1, notifier.count())
	})

	t.Run("unknown entry reports not found", func(t *testing.T) {
		_, err := svc.Update(ctx, "entry-x", EntryRequest{
			CourseID: "course-1", DayOfWeek: Monday,
			StartTime: clock(15, 0), EndTime: clock(16, 0),
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDeleteTimetableEntry(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	e, err := svc.Create(ctx, EntryRequest{
		CourseID: "course-1", DayOfWeek: Monday,
		StartTime: clock(9, 0), EndTime: clock(11, 0),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, e.ID))
	assert.ErrorIs(t, svc.Delete(ctx, e.ID), ErrNotFound)
}

func TestListSortedByStartTime(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	_, err := svc.Create(ctx, EntryRequest{
		CourseID: "course-1", DayOfWeek: Monday,
		StartTime: clock(13, 0), EndTime: clock(14, 0),
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, EntryRequest{
		CourseID: "course-2", DayOfWeek: Monday,
		StartTime: clock(9, 0), EndTime: clock(11, 0),
	})
	require.NoError(t, err)

	entries, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.True(t, entries[0].StartTime.Before(entries[1].StartTime))
}
