// database.go - Handles database connection and setup

package database // Declares the package name

import ( // Import required packages
	"quickmed-backend/models" // User and History models

	"gorm.io/driver/sqlite" // SQLite driver for GORM
	"gorm.io/gorm"          // GORM ORM
)

// Connect opens the database, runs migrations and returns the handle.
// The handle is passed down to the handlers explicitly so tests can
// run against their own isolated database.
func Connect(dbPath string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{}) // Open SQLite DB
	if err != nil {                                           // If error, return it
		return nil, err
	}

	// Auto-migrate the models (create tables if needed)
	if err := db.AutoMigrate(&models.User{}, &models.History{}); err != nil {
		return nil, err
	}

	return db, nil
}
