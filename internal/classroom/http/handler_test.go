package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acadhub/campus-resource-backend/internal/classroom"
)

// stubService serves a fixed set of rooms.
type stubService struct {
	rooms map[string]*classroom.ClassRoom
}

func (s *stubService) GetByID(_ context.Context, id string) (*classroom.ClassRoom, error) {
	if room, ok := s.rooms[id]; ok {
		return room, nil
	}
	return nil, classroom.ErrNotFound
}

func (s *stubService) Create(context.Context, classroom.CreateRequest) (*classroom.ClassRoom, error) {
	panic("not implemented")
}
func (s *stubService) List(context.Context) ([]*classroom.ClassRoom, error) {
	panic("not implemented")
}
func (s *stubService) Update(context.Context, string, classroom.UpdateRequest) (*classroom.ClassRoom, error) {
	panic("not implemented")
}
func (s *stubService) Delete(_ context.Context, id string) error {
	return classroom.ErrNotFound
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := &stubService{rooms: map[string]*classroom.ClassRoom{
		"9f1b6a52-3c1d-4f2e-9a0b-0d6c2f8e4a71": {
			ID:       "9f1b6a52-3c1d-4f2e-9a0b-0d6c2f8e4a71",
			Name:     "Lecture Hall A",
			Capacity: 120,
		},
	}}

	passthrough := func(c *gin.Context) { c.Next() }

	r := gin.New()
	RegisterRoutes(r.Group("/api"), NewHandler(svc), passthrough, passthrough)
	return r
}

func TestGetClassRoomByID(t *testing.T) {
	router := newTestRouter()

	t.Run("malformed id rejected before the service is called", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/classrooms/not-a-uuid", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown room reports not found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/classrooms/00000000-0000-4000-8000-000000000000", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("known room returned", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/classrooms/9f1b6a52-3c1d-4f2e-9a0b-0d6c2f8e4a71", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Lecture Hall A")
	})
}

func TestDeleteClassRoomByID(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodDelete, "/api/classrooms/not-a-uuid", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
