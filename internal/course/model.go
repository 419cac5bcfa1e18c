package course

import (
	"net/http"
	"time"

	"github.com/acadhub/campus-resource-backend/internal/pkg/apperror"
)

var (
	ErrNotFound       = apperror.New(http.StatusNotFound, "course not found")
	ErrInvalidFaculty = apperror.New(http.StatusBadRequest, "invalid faculty member ID")
)

// Course represents a taught course that students can enroll in.
type Course struct {
	ID               string
	Name             string
	Code             string
	Description      string
	Credits          int
	FacultyMemberIDs []string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
