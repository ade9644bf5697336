package db

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"taskpilot/internal/config"
	"taskpilot/internal/task"
	"taskpilot/internal/user"
)

var DB *gorm.DB

// Init connects to Postgres when a DSN is configured, otherwise falls back
// to a local sqlite file for DSN-less setups.
func Init(cfg *config.Config) error {
	var (
		conn *gorm.DB
		err  error
	)
	if cfg.Postgres.DSN != "" {
		conn, err = gorm.Open(postgres.Open(cfg.Postgres.DSN), &gorm.Config{})
	} else {
		path := cfg.SQLite.Path
		if path == "" {
			path = "taskpilot.db"
		}
		conn, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	}
	if err != nil {
		return err
	}

	if err := conn.AutoMigrate(&user.User{}); err != nil {
		return err
	}
	if err := conn.AutoMigrate(&task.Task{}); err != nil {
		return err
	}

	DB = conn
	log.Printf("[DB] Database connected and migrated")
	return nil
}
