package database

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/wanjiku/elimu-api/internal/config"
	"github.com/wanjiku/elimu-api/internal/domain/entity"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// User-related entities
		&entity.User{},
		&entity.Role{},
		&entity.Permission{},
		&entity.PasswordResetToken{},

		// School entities
		&entity.Student{},
		&entity.FeeEntry{},
		&entity.LiveClass{},
		&entity.Notice{},
		&entity.StudyResource{},
		&entity.AttendanceRecord{},

		// System entities
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// defaultPermissions is the full permission catalog seeded at startup
var defaultPermissions = []string{
	"view-dashboard",
	"manage-students",
	"manage-fees",
	"manage-classes",
	"manage-notices",
	"manage-resources",
	"manage-attendance",
	"manage-users",
	"view-reports",
}

// defaultRolePermissions maps each seeded role to its permission names.
// Admin gets the full catalog; students only see their own dashboard.
var defaultRolePermissions = map[string][]string{
	"admin": defaultPermissions,
	"teacher": {
		"view-dashboard",
		"manage-classes",
		"manage-notices",
		"manage-resources",
		"manage-attendance",
	},
	"student": {
		"view-dashboard",
	},
}

// seedRoleOrder fixes the creation order so seeding is deterministic
var seedRoleOrder = []string{"admin", "teacher", "student"}

// SeedDefaultData seeds the database with default data (roles, permissions, admin user)
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	for _, name := range defaultPermissions {
		var existing entity.Permission
		if err := db.Where("name = ?", name).First(&existing).Error; err != nil {
			permission := entity.Permission{Name: name}
			if err := db.Create(&permission).Error; err != nil {
				log.Printf("Warning: failed to create permission %s: %v", name, err)
			}
		}
	}

	// Reload permissions with IDs
	var allPermissions []entity.Permission
	db.Find(&allPermissions)
	permsByName := make(map[string]entity.Permission, len(allPermissions))
	for _, p := range allPermissions {
		permsByName[p.Name] = p
	}

	for _, roleName := range seedRoleOrder {
		var existing entity.Role
		if err := db.Where("name = ?", roleName).First(&existing).Error; err == nil {
			continue
		}

		var perms []entity.Permission
		for _, permName := range defaultRolePermissions[roleName] {
			if p, ok := permsByName[permName]; ok {
				perms = append(perms, p)
			}
		}

		role := entity.Role{
			Name:        roleName,
			Permissions: perms,
		}
		if err := db.Create(&role).Error; err != nil {
			log.Printf("Warning: failed to create role %s: %v", roleName, err)
		}
	}

	// Create admin user if configured via environment variables
	adminEmail := viper.GetString("ADMIN_EMAIL")
	adminPassword := viper.GetString("ADMIN_PASSWORD")
	adminName := viper.GetString("ADMIN_NAME")

	if adminEmail != "" && adminPassword != "" {
		var existingAdmin entity.User
		if err := db.Where("email = ?", adminEmail).First(&existingAdmin).Error; err != nil {
			hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
			if err != nil {
				log.Printf("Warning: failed to hash admin password: %v", err)
			} else {
				var role entity.Role
				if err := db.Where("name = ?", "admin").First(&role).Error; err == nil {
					if adminName == "" {
						adminName = "School Admin"
					}
					// Split admin name into first and last name
					firstName := adminName
					lastName := ""
					for i, c := range adminName {
						if c == ' ' {
							firstName = adminName[:i]
							lastName = adminName[i+1:]
							break
						}
					}
					adminUser := entity.User{
						ID:        uuid.New(),
						FirstName: firstName,
						LastName:  lastName,
						Email:     adminEmail,
						Password:  string(hashedPassword),
						Roles:     []entity.Role{role},
					}
					if err := db.Create(&adminUser).Error; err != nil {
						log.Printf("Warning: failed to create admin user: %v", err)
					} else {
						log.Printf("Admin user created: %s", adminEmail)
					}
				}
			}
		} else {
			log.Printf("Admin user already exists: %s", adminEmail)
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
