package database

import (
	"fmt"
	"time"

	"github.com/yeremiapane/restaurant-ordering/config"
	"github.com/yeremiapane/restaurant-ordering/models"
	"github.com/yeremiapane/restaurant-ordering/utils"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the database named by cfg and checks the connection.
// Driver errors for unique and foreign key violations are translated to
// gorm.ErrDuplicatedKey and gorm.ErrForeignKeyViolated.
func Open(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg.DBDriver, cfg.DBSource)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         newLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", cfg.DBDriver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping %s database: %w", cfg.DBDriver, err)
	}
	return db, nil
}

func dialectorFor(driver, source string) (gorm.Dialector, error) {
	switch driver {
	case "sqlite":
		return sqlite.Open(source), nil
	case "mysql":
		return mysql.Open(source), nil
	case "postgres":
		return postgres.Open(source), nil
	}
	return nil, fmt.Errorf("unsupported database driver %q", driver)
}

// Migrate creates or updates the users, restaurants, menu_items, tables,
// orders and sessions tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	if utils.InfoLogger != nil {
		utils.InfoLogger.Println("AutoMigrate completed.")
	}
	return nil
}

// newLogger routes gorm's slow query and error output through the
// application logger.
func newLogger() logger.Interface {
	if utils.InfoLogger == nil {
		return logger.Default.LogMode(logger.Warn)
	}
	return logger.New(utils.InfoLogger, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
