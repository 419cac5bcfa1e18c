package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/acadhub/campus-resource-backend/internal/api"
	"github.com/acadhub/campus-resource-backend/internal/auth"
	"github.com/acadhub/campus-resource-backend/internal/booking"
	bookingHttp "github.com/acadhub/campus-resource-backend/internal/booking/http"
	"github.com/acadhub/campus-resource-backend/internal/classroom"
	classroomHttp "github.com/acadhub/campus-resource-backend/internal/classroom/http"
	"github.com/acadhub/campus-resource-backend/internal/course"
	courseHttp "github.com/acadhub/campus-resource-backend/internal/course/http"
	"github.com/acadhub/campus-resource-backend/internal/enrollment"
	enrollmentHttp "github.com/acadhub/campus-resource-backend/internal/enrollment/http"
	"github.com/acadhub/campus-resource-backend/internal/notification"
	notificationHttp "github.com/acadhub/campus-resource-backend/internal/notification/http"
	"github.com/acadhub/campus-resource-backend/internal/timetable"
	timetableHttp "github.com/acadhub/campus-resource-backend/internal/timetable/http"
	"github.com/acadhub/campus-resource-backend/internal/user"
	userHttp "github.com/acadhub/campus-resource-backend/internal/user/http"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction   bool
	AllowedOrigins string
	DBPool         *pgxpool.Pool
	JWTSecret      string
	JWTTTL         time.Duration
	BcryptCost     int
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
	Dispatcher *notification.Dispatcher
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	// User Module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo, passwordHasher)

	// Course Module
	courseRepo := course.NewPgxRepository(cfg.DBPool)
	courseService := course.NewService(courseRepo, userService)

	// ClassRoom Module
	roomRepo := classroom.NewPgxRepository(cfg.DBPool)
	roomService := classroom.NewService(roomRepo)

	// Booking Module
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(bookingRepo, roomService, courseService)

	// Enrollment Module
	enrollmentRepo := enrollment.NewPgxRepository(cfg.DBPool)
	enrollmentService := enrollment.NewService(enrollmentRepo, courseService)

	// Notification Module (enrollments resolve the audience)
	notificationRepo := notification.NewPgxRepository(cfg.DBPool)
	notificationService := notification.NewService(notificationRepo, enrollmentService)
	dispatcher := notification.NewDispatcher(notificationService)

	// Timetable Module (fan-out queued through the dispatcher)
	timetableRepo := timetable.NewPgxRepository(cfg.DBPool)
	timetableService := timetable.NewService(timetableRepo, courseService, dispatcher)

	router := api.NewRouter(api.Config{
		IsProduction:        cfg.IsProduction,
		AllowedOrigins:      cfg.AllowedOrigins,
		JWTManager:          jwtManager,
		UserHandler:         userHttp.NewHandler(userService, jwtManager),
		CourseHandler:       courseHttp.NewHandler(courseService),
		ClassRoomHandler:    classroomHttp.NewHandler(roomService),
		BookingHandler:      bookingHttp.NewHandler(bookingService),
		TimetableHandler:    timetableHttp.NewHandler(timetableService),
		EnrollmentHandler:   enrollmentHttp.NewHandler(enrollmentService, timetableService),
		NotificationHandler: notificationHttp.NewHandler(notificationService),
	})

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
		Dispatcher: dispatcher,
	}
}
