// database/bootstrap.go
package database

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"garden/entities"
)

const schemaVersion = 3

func OpenSQLite(path string) *gorm.DB {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("mkdir %s: %v", dir, err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	return db
}

// Migrate brings an existing plants table up to the current schema and
// then lets AutoMigrate create anything still missing. Every step is a
// guarded ALTER TABLE ... ADD COLUMN, so running it again is a no-op.
func Migrate(db *gorm.DB) error {
	// v2: bed layout, v3: plant metadata
	if err := addColumnsIfAbsent(db, "plants", map[string]string{
		"bed_row":       "INTEGER",
		"bed_col":       "INTEGER",
		"planting_area": "TEXT",
	}); err != nil {
		return err
	}
	if err := addColumnsIfAbsent(db, "plants", map[string]string{
		"scientific_name": "TEXT",
		"sunlight":        "TEXT",
		"watering_needs":  "TEXT",
		"cycle":           "TEXT",
		"hardiness_zones": "TEXT",
		"description":     "TEXT",
		"perenual_id":     "INTEGER",
	}); err != nil {
		return err
	}

	if err := db.AutoMigrate(&entities.Plant{}); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}

	return recordVersion(db, schemaVersion)
}

// addColumnsIfAbsent adds each column that PRAGMA table_info does not
// already report. A missing table is fine: AutoMigrate will create it
// with the full column set.
func addColumnsIfAbsent(db *gorm.DB, table string, cols map[string]string) error {
	var tbl string
	if err := db.Raw(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&tbl).Error; err != nil {
		return fmt.Errorf("check table exist: %w", err)
	}
	if tbl == "" {
		return nil
	}

	type colInfo struct {
		Name string
	}
	var existing []colInfo
	if err := db.Raw(fmt.Sprintf(`PRAGMA table_info(%s)`, table)).Scan(&existing).Error; err != nil {
		return fmt.Errorf("table_info: %w", err)
	}
	have := map[string]bool{}
	for _, c := range existing {
		have[strings.ToLower(c.Name)] = true
	}

	for name, typ := range cols {
		if have[name] {
			continue
		}
		if err := db.Exec(fmt.Sprintf(`ALTER TABLE %s ADD COLUMN %s %s`, table, name, typ)).Error; err != nil {
			return fmt.Errorf("add column %s: %w", name, err)
		}
	}
	return nil
}

func recordVersion(db *gorm.DB, v int) error {
	if err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_version (
		version INTEGER PRIMARY KEY,
		applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`).Error; err != nil {
		return err
	}
	var cur int
	if err := db.Raw(`SELECT COALESCE(MAX(version), 0) FROM schema_version`).Scan(&cur).Error; err != nil {
		return err
	}
	if cur >= v {
		return nil
	}
	return db.Exec(`INSERT INTO schema_version (version) VALUES (?)`, v).Error
}
