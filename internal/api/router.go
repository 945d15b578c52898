package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/alnoor-academy/institute-api/internal/api/handler"
	"github.com/alnoor-academy/institute-api/internal/api/middleware"
	"github.com/alnoor-academy/institute-api/internal/core/ports"
	"github.com/alnoor-academy/institute-api/internal/core/service"
)

// RouterConfig carries the knobs the router needs beyond its ports.
type RouterConfig struct {
	SessionTTL   time.Duration
	SecureCookie bool
	Logger       zerolog.Logger

	// Metrics overrides the Prometheus registry; nil uses the process-wide
	// default. Tests pass a fresh registry so routers can be built
	// repeatedly without duplicate-registration panics.
	Metrics *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(storage ports.Storage, sessions ports.SessionStore, cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	registerer := prometheus.Registerer(prometheus.DefaultRegisterer)
	gatherer := prometheus.Gatherer(prometheus.DefaultGatherer)
	if cfg.Metrics != nil {
		registerer = cfg.Metrics
		gatherer = cfg.Metrics
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "institute",
		Registerer: registerer,
	}))

	// --- Dependencies ---
	authService := service.NewAuthService(storage, sessions, cfg.SessionTTL, cfg.Logger)
	catalogService := service.NewCatalogService(storage, cfg.Logger)
	workflowService := service.NewWorkflowService(storage, cfg.Logger)

	authHandler := handler.NewAuthHandler(authService, cfg.SecureCookie)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	workflowHandler := handler.NewWorkflowHandler(workflowService)

	e.Use(middleware.ResolveSession(authService))
	requireAuth := middleware.RequireAuthenticated()
	requireAdmin := middleware.RequireAdmin()

	// --- Auth ---
	e.POST("/api/register", authHandler.Register)
	e.POST("/api/login", authHandler.Login)
	e.POST("/api/logout", authHandler.Logout)
	e.GET("/api/user", authHandler.CurrentUser, requireAuth)

	// --- Public catalog ---
	e.GET("/api/categories", catalogHandler.ListCategories)
	e.GET("/api/courses", catalogHandler.ListCourses)
	e.GET("/api/courses/featured", catalogHandler.ListFeaturedCourses)
	e.GET("/api/courses/:id", catalogHandler.GetCourse)
	e.GET("/api/courses/category/:id", catalogHandler.ListCoursesByCategory)
	e.GET("/api/testimonials", catalogHandler.ListTestimonials)
	e.GET("/api/team", catalogHandler.ListTeam)
	e.GET("/api/jobs", catalogHandler.ListJobs)
	e.GET("/api/jobs/:id", catalogHandler.GetJob)

	// --- Public submissions ---
	e.POST("/api/contact", workflowHandler.SubmitContact)
	e.POST("/api/apply", workflowHandler.SubmitStudentApplication)
	e.POST("/api/careers/apply", workflowHandler.SubmitCareerApplication)

	// --- Admin catalog mutations (paths shared with public reads) ---
	e.POST("/api/categories", catalogHandler.CreateCategory, requireAdmin)
	e.PATCH("/api/categories/:id", catalogHandler.UpdateCategory, requireAdmin)
	e.DELETE("/api/categories/:id", catalogHandler.DeleteCategory, requireAdmin)

	e.POST("/api/courses", catalogHandler.CreateCourse, requireAdmin)
	e.PATCH("/api/courses/:id", catalogHandler.UpdateCourse, requireAdmin)
	e.DELETE("/api/courses/:id", catalogHandler.DeleteCourse, requireAdmin)

	e.POST("/api/testimonials", catalogHandler.CreateTestimonial, requireAdmin)
	e.PATCH("/api/testimonials/:id", catalogHandler.UpdateTestimonial, requireAdmin)
	e.DELETE("/api/testimonials/:id", catalogHandler.DeleteTestimonial, requireAdmin)

	e.POST("/api/team", catalogHandler.CreateTeamMember, requireAdmin)
	e.PATCH("/api/team/:id", catalogHandler.UpdateTeamMember, requireAdmin)
	e.DELETE("/api/team/:id", catalogHandler.DeleteTeamMember, requireAdmin)

	e.POST("/api/jobs", catalogHandler.CreateJob, requireAdmin)
	e.PATCH("/api/jobs/:id", catalogHandler.UpdateJob, requireAdmin)
	e.DELETE("/api/jobs/:id", catalogHandler.DeleteJob, requireAdmin)

	// --- Admin back office ---
	admin := e.Group("/api/admin", requireAdmin)
	admin.GET("/stats", workflowHandler.Stats)

	admin.GET("/categories", catalogHandler.AdminListCategories)
	admin.GET("/courses", catalogHandler.AdminListCourses)
	admin.GET("/testimonials", catalogHandler.AdminListTestimonials)
	admin.GET("/team", catalogHandler.AdminListTeam)
	admin.GET("/jobs", catalogHandler.AdminListJobs)

	admin.GET("/applications", workflowHandler.ListStudentApplications)
	admin.PATCH("/applications/:id", workflowHandler.SetStudentApplicationStatus)
	admin.DELETE("/applications/:id", workflowHandler.DeleteStudentApplication)

	admin.GET("/career-applications", workflowHandler.ListCareerApplications)
	admin.PATCH("/career-applications/:id", workflowHandler.SetCareerApplicationStatus)
	admin.DELETE("/career-applications/:id", workflowHandler.DeleteCareerApplication)

	admin.GET("/messages", workflowHandler.ListContactMessages)
	admin.PATCH("/messages/:id/read", workflowHandler.MarkMessageRead)
	admin.DELETE("/messages/:id", workflowHandler.DeleteContactMessage)

	// --- Ops ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(storage, sessions)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))

	return e
}
