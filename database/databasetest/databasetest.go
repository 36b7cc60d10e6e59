// Package databasetest opens throwaway sqlite databases for tests.
package databasetest

import (
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"gorm.io/gorm"

	"github.com/judyrop/restaurant-pos/config"
	"github.com/judyrop/restaurant-pos/database"
)

var nameReplacer = strings.NewReplacer("/", "_", " ", "_", "#", "_")

// New returns a migrated in-memory database private to t.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", nameReplacer.Replace(t.Name()))
	db, err := database.Open(config.DatabaseConfig{Driver: "sqlite", SQLitePath: dsn}, slog.New(slog.DiscardHandler))
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	// One connection keeps the in-memory database alive and serialises access.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("%v", err)
	}
	return db
}
