package infra

import (
	"fmt"

	"agrofield/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx with sane pool
// limits. Schema setup lives in RunMigrations so tests and the server both
// control when it happens.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	return db, nil
}

// RunMigrations applies the full schema: extension, AutoMigrate, spatial
// patches. Also used by integration tests against a fresh container.
func RunMigrations(db *gorm.DB) error {
	// PostGIS must exist before any geometry DDL runs.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS postgis`).Error; err != nil {
		return fmt.Errorf("create postgis extension: %w", err)
	}

	if err := db.AutoMigrate(
		&model.Producer{},
		&model.SoilType{},
		&model.IrrigationType{},
		&model.Product{},
		&model.Variety{},
		&model.Area{},
		&model.Harvest{},
		&model.Planting{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}

	if err := applySchemaPatches(db); err != nil {
		return fmt.Errorf("schema patches: %w", err)
	}
	return nil
}

// applySchemaPatches runs idempotent DDL that GORM AutoMigrate cannot handle:
// the geometry(Polygon,4326) column on areas and its GiST index. Each
// statement uses IF NOT EXISTS semantics so re-running on an already-patched
// DB is safe.
func applySchemaPatches(db *gorm.DB) error {
	patches := []string{
		`ALTER TABLE areas ADD COLUMN IF NOT EXISTS polygon geometry(Polygon,4326)`,
		`CREATE INDEX IF NOT EXISTS idx_areas_polygon ON areas USING GIST (polygon)`,
	}

	for _, sql := range patches {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", sql, err)
		}
	}
	return nil
}
