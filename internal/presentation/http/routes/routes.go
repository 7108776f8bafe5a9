package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wanjiku/elimu-api/internal/config"
	domainRepo "github.com/wanjiku/elimu-api/internal/domain/repository"
	"github.com/wanjiku/elimu-api/internal/presentation/http/handler"
	"github.com/wanjiku/elimu-api/internal/presentation/http/middleware"
	"github.com/wanjiku/elimu-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth       *handler.AuthHandler
	User       *handler.UserHandler
	Student    *handler.StudentHandler
	Fee        *handler.FeeHandler
	LiveClass  *handler.LiveClassHandler
	Notice     *handler.NoticeHandler
	Resource   *handler.ResourceHandler
	Attendance *handler.AttendanceHandler
	Dashboard  *handler.DashboardHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.RefreshToken)
		auth.POST("/forgot-password", h.Auth.ForgotPassword)
		auth.POST("/reset-password", h.Auth.ResetPassword)
		// Google OAuth routes
		auth.GET("/google", h.Auth.GoogleAuth)
		auth.GET("/google/callback", h.Auth.GoogleCallback)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile", h.Auth.UpdateProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Dashboard
	registerDashboardRoutes(protected, h)

	// Students
	registerStudentRoutes(protected, h)

	// Fees
	registerFeeRoutes(protected, h, deps)

	// Live classes
	registerClassRoutes(protected, h)

	// Notices
	registerNoticeRoutes(protected, h)

	// Study resources
	registerResourceRoutes(protected, h)

	// Attendance
	registerAttendanceRoutes(protected, h)

	// Users (Admin)
	registerUserRoutes(protected, h)
}

func registerDashboardRoutes(protected *gin.RouterGroup, h *Handlers) {
	dashboard := protected.Group("/dashboard")
	dashboard.Use(middleware.RequirePermission("view-dashboard"))
	{
		dashboard.GET("/stats", h.Dashboard.GetStats)
	}
}

func registerStudentRoutes(protected *gin.RouterGroup, h *Handlers) {
	// A student may always look up their own record
	protected.GET("/students/me", h.Student.GetMine)

	students := protected.Group("/students")
	students.Use(middleware.RequirePermission("manage-students"))
	{
		students.GET("", h.Student.List)
		students.POST("", h.Student.Create)
		students.GET("/:id", h.Student.Get)
		students.PUT("/:id", h.Student.Update)
		students.DELETE("/:id", h.Student.Delete)
	}
}

func registerFeeRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Receipt lookup only reads the ledger, so students can print their own
	protected.POST("/fees/receipt", h.Fee.ResolveReceipt)

	fees := protected.Group("/fees")
	fees.Use(middleware.RequirePermission("manage-fees"))
	{
		// Fee and payment writes use idempotency middleware to prevent duplicates
		fees.POST("", middleware.IdempotencyRequired(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Fee.RecordFee)
		fees.POST("/payments", middleware.IdempotencyRequired(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Fee.RecordPayment)
		fees.GET("/students/:id", h.Fee.GetLedger)
		fees.GET("/stats", h.Fee.GetStats)
	}
}

func registerClassRoutes(protected *gin.RouterGroup, h *Handlers) {
	classes := protected.Group("/classes")
	{
		classes.GET("", h.LiveClass.List)
		classes.GET("/:id", h.LiveClass.Get)
	}

	manage := protected.Group("/classes")
	manage.Use(middleware.RequirePermission("manage-classes"))
	{
		manage.POST("", h.LiveClass.Schedule)
		manage.PUT("/:id", h.LiveClass.Update)
		manage.DELETE("/:id", h.LiveClass.Cancel)
	}
}

func registerNoticeRoutes(protected *gin.RouterGroup, h *Handlers) {
	notices := protected.Group("/notices")
	{
		notices.GET("", h.Notice.List)
		notices.GET("/:id", h.Notice.Get)
	}

	manage := protected.Group("/notices")
	manage.Use(middleware.RequirePermission("manage-notices"))
	{
		manage.POST("", h.Notice.Create)
		manage.PUT("/:id", h.Notice.Update)
		manage.DELETE("/:id", h.Notice.Delete)
	}
}

func registerResourceRoutes(protected *gin.RouterGroup, h *Handlers) {
	resources := protected.Group("/resources")
	{
		resources.GET("", h.Resource.List)
		resources.GET("/:id", h.Resource.Get)
	}

	manage := protected.Group("/resources")
	manage.Use(middleware.RequirePermission("manage-resources"))
	{
		manage.POST("", h.Resource.Create)
		manage.PUT("/:id", h.Resource.Update)
		manage.DELETE("/:id", h.Resource.Delete)
	}
}

func registerAttendanceRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Students can read attendance; marking needs the manage permission
	protected.GET("/attendance/students/:id", h.Attendance.GetStudent)
	protected.GET("/attendance/students/:id/summary", h.Attendance.GetMonthlySummary)

	attendance := protected.Group("/attendance")
	attendance.Use(middleware.RequirePermission("manage-attendance"))
	{
		attendance.GET("", h.Attendance.GetClass)
		attendance.POST("", h.Attendance.Mark)
		attendance.POST("/bulk", h.Attendance.MarkClass)
	}
}

func registerUserRoutes(protected *gin.RouterGroup, h *Handlers) {
	users := protected.Group("/users")
	users.Use(middleware.RequirePermission("manage-users"))
	{
		users.GET("", h.User.List)
		users.GET("/:id", h.User.Get)
		users.PUT("/:id/roles", h.User.UpdateRoles)
		users.DELETE("/:id", h.User.Delete)
	}

	roles := protected.Group("/roles")
	roles.Use(middleware.RequirePermission("manage-users"))
	{
		roles.GET("", h.User.ListRoles)
	}
}
