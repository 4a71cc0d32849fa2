package config

import (
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectDB opens the postgres connection from DB_URL. Returns false
// when DB_URL is unset, in which case the server runs on the in-memory
// booking store.
func ConnectDB() bool {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		return false
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("Failed to connect database")
	}

	DB = db
	return true
}
