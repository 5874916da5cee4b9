package database

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/vanshika704/gdg/config"
	"github.com/vanshika704/gdg/internal/domain/carousel"
	"github.com/vanshika704/gdg/internal/domain/contact"
	"github.com/vanshika704/gdg/internal/domain/post"
	"github.com/vanshika704/gdg/internal/domain/team"
	"github.com/vanshika704/gdg/internal/domain/users"
)

// Connect opens the Postgres database and migrates every domain model.
func Connect(cfg config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.URL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Required for gen_random_uuid() primary keys
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		return nil, fmt.Errorf("failed to enable pgcrypto extension: %w", err)
	}

	if err := db.AutoMigrate(
		&users.User{},
		&carousel.Item{},
		&post.Post{},
		&team.Member{},
		&contact.Message{},
	); err != nil {
		return nil, fmt.Errorf("automigrate: %w", err)
	}

	return db, nil
}

// SeedFirstAdmin creates the first back-office account from env credentials
// so a fresh deployment is immediately usable. A no-op when the account
// already exists or the credentials are not set.
func SeedFirstAdmin(db *gorm.DB, cfg config.AdminConfig) error {
	if cfg.Email == "" || cfg.Password == "" {
		return nil
	}

	var existing users.User
	err := db.Where("email = ?", cfg.Email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	h := string(hashed)

	admin := users.User{
		Username:     "admin",
		Email:        cfg.Email,
		Password:     &h,
		AuthProvider: "local",
		Role:         "admin",
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}
	return nil
}
