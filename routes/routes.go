package routes

import (
	"MediPoint/cache"
	"MediPoint/config"
	"MediPoint/controllers"
	"MediPoint/database"
	"MediPoint/handlers"
	"MediPoint/middlewares"
	"MediPoint/repositories"
	"MediPoint/services"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes initializes the routes and middleware for the server
func SetupRoutes(cache *cache.Cache, config *config.AppConfig, db *gorm.DB) http.Handler {
	// Set Gin to release mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.Default()

	// Create and apply CORS middleware configuration
	corsConfig := &middlewares.CorsConfig{
		AllowedOrigins:   []string{"http://localhost:3000", "https://medipoint.example.com"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}
	router.Use(middlewares.CorsMiddleware(corsConfig))

	// Apply rate limiter middleware
	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: 15,
		Burst:             30,
	}))

	// Apply logging middleware
	router.Use(middlewares.LoggingMiddleware())

	// Initialize repositories
	clinicRepo := repositories.NewClinicRepository(db, cache)
	patientRepo := repositories.NewPatientRepository(db, cache)
	staffRepo := repositories.NewStaffUserRepository(db, cache)
	appointmentRepo := repositories.NewAppointmentRepository(db, cache)
	prescriptionRepo := repositories.NewPrescriptionRepository(db)
	xrayRepo := repositories.NewXRayRepository(db)

	locker := services.RedisLocker{}

	// Initialize services
	clinicService := services.NewClinicService(clinicRepo)
	patientService := services.NewPatientService(patientRepo, locker)
	staffService := services.NewStaffUserService(staffRepo)
	appointmentService := services.NewAppointmentService(appointmentRepo, patientRepo, clinicRepo, staffRepo, locker)
	prescriptionService := services.NewPrescriptionService(prescriptionRepo)
	xrayService := services.NewXRayService(xrayRepo)
	authService := services.NewAuthService(patientRepo, staffRepo)

	// Initialize handlers
	clinicHandler := handlers.NewClinicHandler(clinicService)
	patientHandler := handlers.NewPatientHandler(patientService)
	staffHandler := handlers.NewStaffUserHandler(staffService)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService, patientService)
	prescriptionHandler := handlers.NewPrescriptionHandler(prescriptionService)
	xrayHandler := handlers.NewXRayHandler(xrayService)
	authHandler := handlers.NewAuthHandler(authService)

	// Register routes
	controllers.SetupAPIRoutes(
		router,
		clinicHandler,
		staffHandler,
		patientHandler,
		appointmentHandler,
		prescriptionHandler,
		xrayHandler,
	)

	authController := controllers.NewAuthController(authHandler)
	authController.RegisterRoutes(router)

	controllers.SetupRootRoute(router)

	// Operational endpoints sit behind the static bearer token
	opsGroup := router.Group("/ops").Use(middlewares.ValidateBearerToken(config.GetBearerToken()))
	{
		opsGroup.GET("/status", func(c *gin.Context) {
			dbStatus := "ok"
			if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
				dbStatus = "unreachable"
			}
			redisStatus := "ok"
			if database.RedisClient == nil || database.RedisClient.Ping(c.Request.Context()).Err() != nil {
				redisStatus = "unreachable"
			}
			c.JSON(http.StatusOK, gin.H{"database": dbStatus, "redis": redisStatus})
		})
	}

	return router
}
