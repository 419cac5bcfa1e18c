package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/acadhub/campus-resource-backend/internal/auth"
	bookingHttp "github.com/acadhub/campus-resource-backend/internal/booking/http"
	classroomHttp "github.com/acadhub/campus-resource-backend/internal/classroom/http"
	courseHttp "github.com/acadhub/campus-resource-backend/internal/course/http"
	enrollmentHttp "github.com/acadhub/campus-resource-backend/internal/enrollment/http"
	notificationHttp "github.com/acadhub/campus-resource-backend/internal/notification/http"
	timetableHttp "github.com/acadhub/campus-resource-backend/internal/timetable/http"
	userHttp "github.com/acadhub/campus-resource-backend/internal/user/http"
)

// Config holds the handlers and settings the router assembles.
type Config struct {
	IsProduction   bool
	AllowedOrigins string

	JWTManager *auth.JWTManager

	UserHandler         *userHttp.Handler
	CourseHandler       *courseHttp.Handler
	ClassRoomHandler    *classroomHttp.Handler
	BookingHandler      *bookingHttp.Handler
	TimetableHandler    *timetableHttp.Handler
	EnrollmentHandler   *enrollmentHttp.Handler
	NotificationHandler *notificationHttp.Handler
}

// NewRouter initializes the HTTP router engine.
// It assembles middleware (CORS, Logger, Auth) and registers routes for
// each module under /api.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()

	// Logger logs request information; Recovery turns panics into 500s.
	r.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.AllowedOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.AllowedOrigins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	studentMiddleware := auth.RequireRole("student")
	facultyMiddleware := auth.RequireRole("faculty", "admin")
	adminMiddleware := auth.RequireRole("admin")

	api := r.Group("/api")
	{
		userHttp.RegisterRoutes(api, cfg.UserHandler, authMiddleware)
		courseHttp.RegisterRoutes(api, cfg.CourseHandler, authMiddleware, facultyMiddleware, adminMiddleware)
		classroomHttp.RegisterRoutes(api, cfg.ClassRoomHandler, authMiddleware, adminMiddleware)
		bookingHttp.RegisterRoutes(api, cfg.BookingHandler, authMiddleware, facultyMiddleware)
		timetableHttp.RegisterRoutes(api, cfg.TimetableHandler, authMiddleware, facultyMiddleware)
		enrollmentHttp.RegisterRoutes(api, cfg.EnrollmentHandler, authMiddleware, studentMiddleware, facultyMiddleware)
		notificationHttp.RegisterRoutes(api, cfg.NotificationHandler, authMiddleware, facultyMiddleware)
	}

	return r
}
