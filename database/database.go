package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"artistpages/config"
	"artistpages/internal/domain/pages"
	"artistpages/internal/domain/users"

	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Open connects to postgres or sqlite. Duplicate-key and not-found errors
// are translated to the gorm sentinels.
func Open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, errors.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         newLogger(log.New(os.Stdout, "\r\n", log.LstdFlags)),
	})
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}

	if driver == "sqlite" {
		// cascade deletes need this per connection
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, errors.Wrap(err, "enable sqlite foreign keys")
		}
	}
	return db, nil
}

// newLogger reports slow queries and real errors. Lookups that find nothing
// are expected (onboarding checks for an existing user first) and stay quiet.
func newLogger(w logger.Writer) logger.Interface {
	return logger.New(w, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

// Migrate creates users and the page aggregate tables.
func Migrate(db *gorm.DB) error {
	models := append([]interface{}{&users.User{}}, pages.Models()...)
	if err := db.AutoMigrate(models...); err != nil {
		return errors.Wrap(err, "auto-migrate")
	}
	return nil
}

func InitDB() {
	db, err := Open(config.DB_DRIVER, config.DB_URL)
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db

	if err := Migrate(DB); err != nil {
		log.Fatal("❌ AutoMigrate error:", err)
	}

	fmt.Println("✅ Connected and migrated successfully")
}
