// Package postgres opens the optional database that mirrors the depot report.
//
// The depot itself keeps no state in the database; report entries are the
// only rows written, one per report line, through reportrepo.
//
// Example:
//
//	db, err := postgres.Open(ctx, "host=localhost user=depot dbname=depot sslmode=disable")
//	if err != nil {
//	    return err
//	}
//	repo := reportrepo.NewGormReportRepository(db)
package postgres

import (
	"context"
	"fmt"

	"depot/internal/adapters/out/postgres/reportrepo"

	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to dsn and migrates the report schema.
func Open(ctx context.Context, dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open report database: %w", err)
	}

	if err = reportrepo.Migrate(db.WithContext(ctx)); err != nil {
		return nil, fmt.Errorf("migrate report database: %w", err)
	}
	return db, nil
}

// Close releases the connection pool behind db.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
