package notification

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAudience resolves audiences from fixed data.
type stubAudience struct {
	byCourse map[string][]string
	all      []string
}

func (s *stubAudience) StudentIDsByCourse(_ context.Context, courseID string) ([]string, error) {
	return s.byCourse[courseID], nil
}

func (s *stubAudience) AllStudentIDs(_ context.Context) ([]string, error) {
	return s.all, nil
}

func TestNotifyScheduleChange(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	audience := &stubAudience{
		byCourse: map[string][]string{
			"course-1": {"student-1", "student-2", "student-3"},
		},
	}
	svc := NewService(repo, audience)

	report, err := svc.NotifyScheduleChange(ctx, "course-1", "Algorithms", "Monday")
	require.NoError(t, err)
	assert.Equal(t, 3, report.Delivered)
	assert.False(t, report.Failed())

	t.Run("exactly one notification per enrolled student", func(t *testing.T) {
		for _, studentID := range audience.byCourse["course-1"] {
			notifications, total, err := svc.ListForRecipient(ctx, studentID, 1, 20)
			require.NoError(t, err)
			require.Equal(t, 1, total)
			assert.Equal(t, "Timetable entry updated for Algorithms on Monday.", notifications[0].Message)
			assert.Equal(t, TypeTimetable, notifications[0].Type)
		}
	})

	t.Run("students of other courses receive nothing", func(t *testing.T) {
		_, total, err := svc.ListForRecipient(ctx, "student-9", 1, 20)
		require.NoError(t, err)
		assert.Zero(t, total)
	})
}

func TestNotifyScheduleChangeContinuesPastFailures(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository().(*memoryRepository)
	audience := &stubAudience{
		byCourse: map[string][]string{
			"course-1": {"student-1", "student-2", "student-3"},
		},
	}
	svc := NewService(repo, audience)

	storageErr := errors.New("insert failed")
	repo.FailFor("student-2", storageErr)

	report, err := svc.NotifyScheduleChange(ctx, "course-1", "Algorithms", "Monday")
	require.NoError(t, err)

	assert.Equal(t, 2, report.Delivered, "delivery must continue past a failing recipient")
	require.Len(t, report.Failures, 1)
	assert.Equal(t, "student-2", report.Failures[0].RecipientID)
	assert.ErrorIs(t, report.Failures[0].Err, storageErr)

	// The recipients after the failing one still got their notification.
	_, total, err := svc.ListForRecipient(ctx, "student-3", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

func TestNotifyAnnouncement(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	audience := &stubAudience{
		all: []string{"student-1", "student-2"},
	}
	svc := NewService(repo, audience)

	report, err := svc.NotifyAnnouncement(ctx, "Campus closed on Friday")
	require.NoError(t, err)
	assert.Equal(t, 2, report.Delivered)

	notifications, _, err := svc.ListForRecipient(ctx, "student-1", 1, 20)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, "Important Announcement: Campus closed on Friday", notifications[0].Message)
	assert.Equal(t, TypeAnnouncement, notifications[0].Type)
}
