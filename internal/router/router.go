package router

import (
	"hospital-booking-api/internal/config"
	"hospital-booking-api/internal/handler"
	"hospital-booking-api/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Services are the use cases the routes dispatch to
type Services struct {
	Hospitals    handler.HospitalServicer
	Appointments handler.AppointmentServicer
	Auth         handler.AuthServicer
	Exports      handler.ExportServicer
}

// Setup builds the gin engine with global middleware and the route table.
// limiter may be nil, which disables rate limiting.
func Setup(cfg *config.Config, svc Services, limiter middleware.RateLimiter, ping func() error, logger *zap.Logger) *gin.Engine {
	gin.SetMode(cfg.Server.GinMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	hospitalHandler := handler.NewHospitalHandler(svc.Hospitals)
	appointmentHandler := handler.NewAppointmentHandler(svc.Appointments)
	authHandler := handler.NewAuthHandler(svc.Auth, cfg.JWT.RefreshTokenExpiry, cfg.Server.GinMode == gin.ReleaseMode)
	exportHandler := handler.NewExportHandler(svc.Exports)
	healthHandler := handler.NewHealthHandler("hospital-booking-api", ping)
	access := middleware.NewAccessControlMiddleware(svc.Appointments)

	r.GET("/health", healthHandler.Health)

	api := r.Group(cfg.Server.APIPrefix)

	throttle := middleware.RateLimit(limiter, cfg.RateLimit.Requests, cfg.RateLimit.Window)
	auth := api.Group("/auth")
	{
		auth.POST("/register", throttle, authHandler.Register)
		auth.POST("/login", throttle, authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
		auth.POST("/logout", authHandler.Logout)
		auth.GET("/me", middleware.AuthMiddleware(), authHandler.Me)
	}

	hospitals := api.Group("/hospitals")
	{
		hospitals.GET("", hospitalHandler.GetAllHospitals)
		hospitals.GET("/vacCenters", hospitalHandler.GetVacCenters)
		hospitals.GET("/export", middleware.AuthMiddleware(), middleware.RequireAdmin(), exportHandler.ExportHospitals)
		hospitals.GET("/:id", hospitalHandler.GetHospital)

		// Admin-only routes
		hospitals.POST("", middleware.AuthMiddleware(), middleware.RequireAdmin(), hospitalHandler.CreateHospital)
		hospitals.PUT("/:id", middleware.AuthMiddleware(), middleware.RequireAdmin(), hospitalHandler.UpdateHospital)
		hospitals.DELETE("/:id", middleware.AuthMiddleware(), middleware.RequireAdmin(), hospitalHandler.DeleteHospital)

		hospitals.GET("/:id/appointments", middleware.AuthMiddleware(), appointmentHandler.GetHospitalAppointments)
		hospitals.POST("/:id/appointments", middleware.AuthMiddleware(), appointmentHandler.BookAppointment)
	}

	appointments := api.Group("/appointments")
	appointments.Use(middleware.AuthMiddleware())
	{
		appointments.GET("", appointmentHandler.GetAppointments)
		appointments.GET("/calendar.ics", exportHandler.ExportCalendar)
		appointments.GET("/:id", access.CheckAppointmentAccess(), appointmentHandler.GetAppointment)
		appointments.DELETE("/:id", access.CheckAppointmentAccess(), appointmentHandler.CancelAppointment)
	}

	return r
}
