package persistence

import (
	"context"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"roost/internal/config"
	"roost/internal/core"
)

// DB wraps the gorm handle. The driver is selected by the database URL:
// postgres DSNs go to the postgres driver, anything else is treated as a
// sqlite path (the archive cache is a local sqlite file by default).
type DB struct {
	Config *config.Config

	db *gorm.DB
}

func (d *DB) Init(_ context.Context) error {
	dialector := dialectorFor(d.Config.DatabaseURL)

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return err
	}
	d.db = gormDB

	return d.db.AutoMigrate(&core.Author{}, &core.Post{})
}

func dialectorFor(url string) gorm.Dialector {
	if strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://") {
		return postgres.Open(url)
	}
	// Concurrent author syncs share one file; let writers wait instead of
	// failing with SQLITE_BUSY.
	if !strings.Contains(url, "?") {
		url += "?_pragma=busy_timeout(10000)"
	}
	return sqlite.Open(url)
}

func (d *DB) Gorm() *gorm.DB {
	return d.db
}

func (d *DB) Model(a any) *gorm.DB {
	return d.db.Model(a)
}

// Transaction runs fn in one transactional unit, rolled back on error.
func (d *DB) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return d.db.WithContext(ctx).Transaction(fn)
}

func (d *DB) Shutdown(_ context.Context) error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return nil
	}
	return sqlDB.Close()
}
