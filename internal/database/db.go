package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/devjobs/backend/internal/models"
)

// Connect opens the PostgreSQL connection and runs migrations. The caller
// decides what to do on failure; in this server a failed connect drops the
// process into demo mode instead of exiting.
func Connect(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established, running migrations...")
	if err := db.AutoMigrate(
		&models.User{},
		&models.Job{},
		&models.Application{},
		&models.Favorite{},
		&models.EmailAlert{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
