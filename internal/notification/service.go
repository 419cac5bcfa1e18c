package notification

import (
	"context"
	"fmt"
)

// AudienceResolver resolves the recipients affected by a schedule
// change or announcement. Implemented by the enrollment service.
type AudienceResolver interface {
	StudentIDsByCourse(ctx context.Context, courseID string) ([]string, error)
	AllStudentIDs(ctx context.Context) ([]string, error)
}

// DispatchFailure records a single failed delivery during fan-out.
type DispatchFailure struct {
	RecipientID string
	Err         error
}

// DispatchReport summarizes a fan-out run. A failed recipient never
// aborts delivery to the rest of the audience.
type DispatchReport struct {
	Delivered int
	Failures  []DispatchFailure
}

// Failed reports whether any delivery failed.
func (r DispatchReport) Failed() bool {
	return len(r.Failures) > 0
}

type Service interface {
	// NotifyScheduleChange fans a timetable-change notification out to
	// every student enrolled in the course.
	NotifyScheduleChange(ctx context.Context, courseID, courseName, dayOfWeek string) (DispatchReport, error)

	// NotifyAnnouncement fans an announcement out to every enrolled student.
	NotifyAnnouncement(ctx context.Context, message string) (DispatchReport, error)

	ListForRecipient(ctx context.Context, recipientID string, page, pageSize int) ([]*Notification, int, error)
}

type service struct {
	repo     Repository
	audience AudienceResolver
}

func NewService(repo Repository, audience AudienceResolver) Service {
	return &service{
		repo:     repo,
		audience: audience,
	}
}

func (s *service) NotifyScheduleChange(ctx context.Context, courseID, courseName, dayOfWeek string) (DispatchReport, error) {
	recipients, err := s.audience.StudentIDsByCourse(ctx, courseID)
	if err != nil {
		return DispatchReport{}, fmt.Errorf("resolve course audience failed: %w", err)
	}

	message := fmt.Sprintf("Timetable entry updated for %s on %s.", courseName, dayOfWeek)
	return s.dispatch(ctx, recipients, message, TypeTimetable), nil
}

func (s *service) NotifyAnnouncement(ctx context.Context, message string) (DispatchReport, error) {
	recipients, err := s.audience.AllStudentIDs(ctx)
	if err != nil {
		return DispatchReport{}, fmt.Errorf("resolve announcement audience failed: %w", err)
	}

	return s.dispatch(ctx, recipients, "Important Announcement: "+message, TypeAnnouncement), nil
}

// dispatch creates one notification per recipient, sequentially in
// audience order, collecting failures instead of aborting.
func (s *service) dispatch(ctx context.Context, recipients []string, message string, typ Type) DispatchReport {
	var report DispatchReport
	for _, recipientID := range recipients {
		n := &Notification{
			RecipientID: recipientID,
			Message:     message,
			Type:        typ,
		}
		if err := s.repo.Create(ctx, n); err != nil {
			report.Failures = append(report.Failures, DispatchFailure{
				RecipientID: recipientID,
				Err:         err,
			})
			continue
		}
		report.Delivered++
	}
	return report
}

func (s *service) ListForRecipient(ctx context.Context, recipientID string, page, pageSize int) ([]*Notification, int, error) {
	return s.repo.ListByRecipient(ctx, recipientID, page, pageSize)
}
