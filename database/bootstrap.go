// database/bootstrap.go
package database

import (
	"log"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"agricrm/entities"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	// SQLite ships with FK enforcement off; cascading deletes
	// (farmer -> leads/purchases, product -> purchases) depend on it.
	if err := db.Exec(`PRAGMA foreign_keys=ON`).Error; err != nil {
		log.Fatalf("enable foreign keys: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.Farmer{},
		&entities.Product{},
		&entities.Lead{},
		&entities.Purchase{},
	); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	return db
}
