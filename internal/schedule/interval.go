package schedule

import (
	"net/http"
	"time"

	"github.com/acadhub/campus-resource-backend/internal/pkg/apperror"
)

var ErrInvalidRange = apperror.New(http.StatusBadRequest, "start time must be before end time")

// Range is a half-open time interval [Start, End).
// Bookings and timetable entries share this representation; exclusivity
// is enforced per resource scope (room, or course+day) by the repositories.
type Range struct {
	Start time.Time
	End   time.Time
}

// NewRange builds a Range, rejecting empty or inverted bounds.
func NewRange(start, end time.Time) (Range, error) {
	if !start.Before(end) {
		return Range{}, ErrInvalidRange
	}
	return Range{Start: start, End: end}, nil
}

// Overlaps reports whether two half-open intervals intersect.
// Touching boundaries (a.End == b.Start) do not count as overlap.
// This is the single overlap definition for every scheduling path.
func Overlaps(a, b Range) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// ConflictsWithAny reports whether candidate overlaps any of existing.
func ConflictsWithAny(candidate Range, existing []Range) bool {
	for _, r := range existing {
		if Overlaps(candidate, r) {
			return true
		}
	}
	return false
}
