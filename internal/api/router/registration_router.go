package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"university-api/internal/api/handlers"
	"university-api/internal/api/middleware"
	"university-api/internal/config"
	"university-api/internal/infrastructure/cache"
	"university-api/internal/infrastructure/database"
	"university-api/internal/infrastructure/repository"
	interfaces "university-api/internal/interfaces/infrastructure"
	"university-api/internal/service"
	"university-api/pkg/logger"
)

// NewRegistrationRouter wires repositories, services and handlers onto a
// gin engine ready to serve
func NewRegistrationRouter(db *gorm.DB) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.Logger())
	r.Use(cors.Default())
	r.Use(gin.Recovery())

	cfg := config.Get()

	var cacheService interfaces.CacheService
	if cfg.Cache.Enabled {
		cacheService = cache.NewRedisCacheWithConfig(&cfg.Cache)
		logger.Info("Using Redis cache at %s:%d", cfg.Cache.Host, cfg.Cache.Port)
	} else {
		cacheService = cache.NewNoopCache()
		logger.Info("Cache disabled, reads go straight to the database")
	}

	studentRepo := repository.NewStudentRepository(db)
	semesterRepo := repository.NewAcademicSemesterRepository(db)
	registrationRepo := repository.NewSemesterRegistrationRepository(db)
	offeredCourseRepo := repository.NewOfferedCourseRepository(db)
	sectionRepo := repository.NewSectionRepository(db)
	studentRegRepo := repository.NewStudentRegistrationRepository(db)
	regCourseRepo := repository.NewRegistrationCourseRepository(db)
	enrolledCourseRepo := repository.NewEnrolledCourseRepository(db)
	markRepo := repository.NewMarkRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	reportRepo, err := repository.NewReportRepository(db)
	if err != nil {
		return nil, err
	}

	txManager := database.NewTransactionManager(db)

	enrollmentService := service.NewEnrollmentService(
		studentRepo,
		registrationRepo,
		offeredCourseRepo,
		sectionRepo,
		studentRegRepo,
		regCourseRepo,
		txManager,
		cacheService,
	)
	registrationService := service.NewSemesterRegistrationService(
		registrationRepo,
		semesterRepo,
		studentRepo,
		studentRegRepo,
		regCourseRepo,
		enrolledCourseRepo,
		offeredCourseRepo,
		service.NewPaymentService(paymentRepo),
		service.NewMarkService(markRepo),
		txManager,
		cacheService,
		cfg.Registration.TuitionPerCredit,
	)

	registrationHandler := handlers.NewRegistrationHandler(registrationService, enrollmentService, reportRepo)
	healthHandler := handlers.NewHealthHandler(db, cacheService)

	r.GET("/health", healthHandler.HealthCheck)
	r.GET("/ready", healthHandler.ReadinessCheck)
	r.GET("/live", healthHandler.LivenessCheck)

	v1 := r.Group("/api/v1")
	{
		registrations := v1.Group("/semester-registrations")
		{
			registrations.POST("", registrationHandler.CreateSemesterRegistration)
			registrations.GET("", registrationHandler.ListSemesterRegistrations)
			registrations.GET("/:id", registrationHandler.GetSemesterRegistration)
			registrations.PATCH("/:id", registrationHandler.UpdateSemesterRegistration)
			registrations.DELETE("/:id", registrationHandler.DeleteSemesterRegistration)
			registrations.POST("/:id/start-new-semester", registrationHandler.StartNewSemester)
			registrations.GET("/:id/summary", registrationHandler.GetRegistrationSummary)
		}

		myRegistration := v1.Group("/my-registration")
		{
			myRegistration.GET("", registrationHandler.GetMyRegistration)
			myRegistration.POST("/start", registrationHandler.StartMyRegistration)
			myRegistration.POST("/enroll", registrationHandler.EnrollIntoCourse)
			myRegistration.POST("/withdraw", registrationHandler.WithdrawFromCourse)
			myRegistration.POST("/confirm", registrationHandler.ConfirmMyRegistration)
			myRegistration.GET("/available-courses", registrationHandler.GetAvailableCourses)
		}
	}

	return r, nil
}
