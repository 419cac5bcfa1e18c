package classroom

import (
	"net/http"
	"time"

	"github.com/acadhub/campus-resource-backend/internal/pkg/apperror"
)

var ErrNotFound = apperror.New(http.StatusNotFound, "room not found")

// ClassRoom represents a bookable room. BookingIDs is the room's
// reservation list, maintained together with the booking rows so a
// booking ID appears here iff the booking exists.
type ClassRoom struct {
	ID         string
	Name       string
	Capacity   int
	Resources  []string // e.g. projector, whiteboard
	BookingIDs []string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
