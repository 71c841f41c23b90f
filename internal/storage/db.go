// internal/storage/db.go
package storage

import (
	"fmt"
	"log"
	"os"

	"ponto_backend/internal/config"
	"ponto_backend/internal/models"
	"ponto_backend/internal/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func OpenDB(cfg *config.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		cfg.Location.String(),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect database: ", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatal("failed migrate: ", err)
	}
	if err := SeedAdmin(db); err != nil {
		log.Fatal("failed seed: ", err)
	}

	return db
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Company{},
		&models.Employee{},
		&models.Punch{},
		&models.RevokedToken{},
	)
}

// SeedAdmin inserts the bootstrap admin account when the employee table is
// empty, so a fresh deployment can be logged into.
func SeedAdmin(db *gorm.DB) error {
	var n int64
	if err := db.Model(&models.Employee{}).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	admin := models.Employee{
		NationalID:     "admin",
		Code:           "admin",
		Name:           "Administrator",
		CredentialHash: utils.HashCredential("admin123"),
		Role:           models.RoleAdmin,
	}
	return db.Create(&admin).Error
}
