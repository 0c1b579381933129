package config

import (
	"log"
	"os"

	"restaurant-api/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret used to sign tokens — read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "restaurant_backend_super_secret_2024"))

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func InitDB() {
	db, err := Open(getEnv("DB_PATH", "restaurant.db"))
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	DB = db
	log.Println("Database connected and migrated successfully")
}

// Open connects to the sqlite database at path and migrates the schema.
// TranslateError is required so unique-index violations surface as
// gorm.ErrDuplicatedKey; the booking engine relies on that to turn a
// racing slot insert into a conflict error.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Table{},
		&models.MenuItem{},
		&models.Reservation{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		return nil, err
	}
	return db, nil
}
