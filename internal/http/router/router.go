package router

import (
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"

	"github.com/ignatzorin/recruitment-backend/internal/config"
	"github.com/ignatzorin/recruitment-backend/internal/http/handlers"
	"github.com/ignatzorin/recruitment-backend/internal/http/middleware"
	"github.com/ignatzorin/recruitment-backend/internal/interface/http/handler"
)

// Handlers - все обработчики HTTP API.
type Handlers struct {
	Availability *handler.AvailabilityHandler
	Profile      *handler.ProfileHandler
	Application  *handler.ApplicationHandler
	Document     *handlers.DocumentHandler
	Health       *handlers.HealthHandler
	WS           *handlers.WSHandler
	CatalogCache *handlers.CatalogCacheHandler
}

func SetupRouter(cfg *config.Config, h Handlers, tokens middleware.AccessParser, limiterStore limiter.Store) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestLogger())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	r.GET("/health", h.Health.Health)

	api := r.Group("/api")
	if h.WS != nil {
		api.GET("/ws", h.WS.Handle)
	}

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(tokens))

	// Подача и загрузка файлов ограничены отдельно: это самые тяжёлые операции.
	submitLimit := middleware.RateLimitMiddleware(limiterStore, "submit", cfg.RateLimitLimit, cfg.RateLimitPeriod)
	uploadLimit := middleware.RateLimitMiddleware(limiterStore, "upload", cfg.RateLimitLimit, cfg.RateLimitPeriod)

	availability := protected.Group("/availability")
	{
		availability.GET("/status", h.Availability.GetStatus)
		availability.GET("/schedule", h.Availability.GetSchedule)
		availability.POST("/schedule", h.Availability.SaveSchedule)
		availability.PUT("/schedule/:day", h.Availability.SetDay)
		availability.GET("/courses", h.Availability.ListCourses)
		availability.GET("/specialties", h.Availability.ListSpecialties)
		availability.POST("/course", h.Availability.AddCourse)
		availability.DELETE("/course", h.Availability.RemoveCourse)
	}

	profile := protected.Group("/profile")
	{
		profile.GET("", h.Profile.GetProfile)
		profile.PUT("", h.Profile.SavePersonalData)
		profile.GET("/completeness", h.Profile.GetCompleteness)
		profile.POST("/academic", h.Profile.AddAcademicRecord)
		profile.DELETE("/academic/:id", middleware.UUIDValidator("id"), h.Profile.RemoveAcademicRecord)
		profile.POST("/experience", h.Profile.AddWorkExperience)
		profile.DELETE("/experience/:id", middleware.UUIDValidator("id"), h.Profile.RemoveWorkExperience)
		profile.POST("/submit", submitLimit, h.Application.Submit)
	}

	applications := protected.Group("/applications")
	{
		applications.POST("", h.Application.Create)
		applications.GET("", h.Application.List)
		applications.GET("/:id", middleware.UUIDValidator("id"), h.Application.Get)
		applications.PUT("/:id", middleware.UUIDValidator("id"), h.Application.Evaluate)
	}

	if h.Document != nil {
		protected.POST("/documents", uploadLimit, h.Document.Upload)
		protected.GET("/documents", h.Document.Download)
	}

	if h.CatalogCache != nil {
		protected.POST("/admin/catalog/cache/invalidate", h.CatalogCache.Invalidate)
	}

	return r
}
