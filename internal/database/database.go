package database

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/yukikurage/jcp-backend-service/internal/clock"
	"github.com/yukikurage/jcp-backend-service/internal/config"
	"github.com/yukikurage/jcp-backend-service/internal/logger"
	"github.com/yukikurage/jcp-backend-service/internal/models"
)

var DB *gorm.DB

// NewDialector picks the gorm dialector for the configured driver
func NewDialector(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			cfg.Host,
			cfg.Port,
			cfg.User,
			cfg.Password,
			cfg.Name,
			cfg.SSLMode,
		)
		return postgres.Open(dsn), nil
	case config.DriverMySQL:
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			cfg.User,
			cfg.Password,
			cfg.Host,
			cfg.Port,
			cfg.Name,
		)
		return mysql.Open(dsn), nil
	case config.DriverSQLite:
		return sqlite.Open(sqliteDSN(cfg.SQLitePath)), nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownDriver, cfg.Driver)
	}
}

// sqlite leaves foreign keys off unless asked per connection
func sqliteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on"
}

// NewGormConfig builds the gorm config shared by every dialector.
// Creation timestamps come from clk.
func NewGormConfig(l gormlogger.Interface, clk clock.Clock) *gorm.Config {
	return &gorm.Config{
		Logger:         l,
		NowFunc:        clk.Now,
		TranslateError: true,
	}
}

func Connect(cfg *config.Config, log zerolog.Logger, clk clock.Clock) error {
	dialector, err := NewDialector(cfg.Database)
	if err != nil {
		return err
	}

	db, err := gorm.Open(dialector, NewGormConfig(logger.Gorm(log, cfg.Env), clk))
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	DB = db
	log.Info().
		Str("driver", cfg.Database.Driver).
		Msg("database connection established")
	return nil
}

// Migrate creates or updates the users and tasks tables, their indexes
// and the tasks.user_id foreign key
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Task{},
	); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// Close releases the pool behind DB, if any
func Close() error {
	if DB == nil {
		return nil
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func GetDB() *gorm.DB {
	return DB
}
