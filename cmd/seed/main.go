package main

import (
	"log"

	"terracore/internal/config"
	"terracore/internal/db"
)

// Standalone seeder: opens the database, migrates the schema and inserts the
// initial records. Safe to run repeatedly; every block is guarded by an
// existence check.
func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	log.Printf("Connected to database at %s", cfg.DBPath)

	if err := db.Seed(gormDB); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	log.Println("Seed completed successfully!")
}
