package db

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"terracore/internal/model"
)

// Open returns a connected GORM DB over a single-file SQLite database with
// the schema migrated. The store is fully initialized before Open returns,
// so callers never observe a half-ready handle.
func Open(path string) (*gorm.DB, error) {
	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}

	if err := gdb.AutoMigrate(
		&model.User{},
		&model.Property{},
		&model.Material{},
		&model.Contact{},
		&model.Subscription{},
		&model.Testimonial{},
	); err != nil {
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	return gdb, nil
}
