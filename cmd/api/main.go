package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/wanjiku/elimu-api/internal/application/service"
	"github.com/wanjiku/elimu-api/internal/config"
	"github.com/wanjiku/elimu-api/internal/infrastructure/database"
	"github.com/wanjiku/elimu-api/internal/infrastructure/repository"
	"github.com/wanjiku/elimu-api/internal/presentation/http/handler"
	"github.com/wanjiku/elimu-api/internal/presentation/http/routes"
	"github.com/wanjiku/elimu-api/pkg/email"
	"github.com/wanjiku/elimu-api/pkg/oauth"
	"github.com/wanjiku/elimu-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	passwordResetRepo := repository.NewPasswordResetTokenRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	feeRepo := repository.NewFeeRepository(db)
	liveClassRepo := repository.NewLiveClassRepository(db)
	noticeRepo := repository.NewNoticeRepository(db)
	resourceRepo := repository.NewResourceRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize email service
	emailService := email.NewEmailService(email.EmailConfig{
		SMTPHost:     cfg.Email.SMTPHost,
		SMTPPort:     cfg.Email.SMTPPort,
		SMTPUsername: cfg.Email.SMTPUsername,
		SMTPPassword: cfg.Email.SMTPPassword,
		FromName:     cfg.Email.FromName,
		FromEmail:    cfg.Email.FromEmail,
		FrontendURL:  cfg.App.FrontendURL,
	})

	// Initialize Google OAuth service
	googleOAuth := oauth.NewGoogleOAuthService(oauth.GoogleOAuthConfig{
		ClientID:     cfg.OAuth.GoogleClientID,
		ClientSecret: cfg.OAuth.GoogleClientSecret,
		RedirectURL:  cfg.OAuth.GoogleRedirectURL,
	})

	// Initialize services
	authService := service.NewAuthService(userRepo, roleRepo, passwordResetRepo, jwtManager, emailService, googleOAuth)
	userService := service.NewUserService(userRepo, roleRepo)
	studentService := service.NewStudentService(studentRepo)
	feeService := service.NewFeeService(feeRepo, studentRepo)
	receiptService := service.NewReceiptService(studentRepo, feeRepo)
	liveClassService := service.NewLiveClassService(liveClassRepo)
	noticeService := service.NewNoticeService(noticeRepo)
	resourceService := service.NewResourceService(resourceRepo)
	attendanceService := service.NewAttendanceService(attendanceRepo, studentRepo)
	dashboardService := service.NewDashboardService(studentRepo, feeRepo, attendanceRepo, liveClassRepo, noticeRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:       handler.NewAuthHandler(authService),
		User:       handler.NewUserHandler(userService),
		Student:    handler.NewStudentHandler(studentService),
		Fee:        handler.NewFeeHandler(feeService, receiptService),
		LiveClass:  handler.NewLiveClassHandler(liveClassService),
		Notice:     handler.NewNoticeHandler(noticeService),
		Resource:   handler.NewResourceHandler(resourceService),
		Attendance: handler.NewAttendanceHandler(attendanceService),
		Dashboard:  handler.NewDashboardHandler(dashboardService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	// Start the server
	port := cfg.App.Port
	if envPort := os.Getenv("PORT"); envPort != "" {
		port = envPort
	}

	log.Printf("Starting %s on port %s (%s)", cfg.App.Name, port, cfg.App.Env)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
