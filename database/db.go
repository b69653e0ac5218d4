package database

import (
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"picstash/models"
)

// Connect opens the sqlite database at path and migrates the schema.
// Pass ":memory:" for an ephemeral database.
func Connect(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Tag{},
		&models.Image{},
		&models.Comment{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
