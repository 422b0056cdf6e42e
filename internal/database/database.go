package database

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/catalog/internal/config"
	"github.com/mrlokans/catalog/internal/entities"
	"github.com/mrlokans/catalog/internal/logging"
)

// Tables in creation order; drops run in reverse.
var catalogTables = []any{
	&entities.Author{},
	&entities.Book{},
}

type Database struct {
	DB  *gorm.DB
	cfg config.Database
}

// NewDatabase connects to the configured store. With cfg.Rebuild the
// database itself is dropped and recreated and both tables are created
// from scratch; otherwise missing tables are created and existing ones
// are left alone.
func NewDatabase(cfg config.Database) (*Database, error) {
	if cfg.Rebuild {
		if err := recreateDatabase(cfg); err != nil {
			return nil, fmt.Errorf("failed to recreate database: %w", err)
		}
	}

	db, err := open(cfg, cfg.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	database := &Database{DB: db, cfg: cfg}

	if cfg.Rebuild {
		err = database.RebuildTables()
	} else {
		err = database.DB.AutoMigrate(catalogTables...)
	}
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to prepare tables: %w", err)
	}

	log.Info().
		Str("driver", string(cfg.Driver)).
		Str("database", database.describe()).
		Bool("rebuilt", cfg.Rebuild).
		Msg("Database initialized")

	return database, nil
}

// RebuildTables drops the catalog tables and creates them empty.
func (d *Database) RebuildTables() error {
	migrator := d.DB.Migrator()
	for i := len(catalogTables) - 1; i >= 0; i-- {
		if err := migrator.DropTable(catalogTables[i]); err != nil {
			return fmt.Errorf("failed to drop table: %w", err)
		}
	}
	for _, table := range catalogTables {
		if err := migrator.CreateTable(table); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}
	return nil
}

func (d *Database) Ping() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (d *Database) describe() string {
	if d.cfg.Driver == config.DriverSQLite {
		return d.cfg.Path
	}
	return fmt.Sprintf("%s@%s:%d/%s", d.cfg.User, d.cfg.Host, d.cfg.Port, d.cfg.Name)
}

func open(cfg config.Database, dbName string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.Path + "?_foreign_keys=on")
	case config.DriverPostgres, "":
		dialector = postgres.Open(postgresDSN(cfg, dbName))
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	return gorm.Open(dialector, &gorm.Config{
		Logger:         logging.NewGormLogger(logger.Warn),
		TranslateError: true,
	})
}

func postgresDSN(cfg config.Database, dbName string) string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(cfg.User, cfg.Password),
		Host:   net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Path:   "/" + dbName,
	}
	if cfg.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": {cfg.SSLMode}}.Encode()
	}
	return u.String()
}

func recreateDatabase(cfg config.Database) error {
	if cfg.Driver == config.DriverSQLite {
		if err := os.Remove(cfg.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to remove %s: %w", cfg.Path, err)
		}
		log.Info().Str("path", cfg.Path).Msg("Removed SQLite database file")
		return nil
	}

	admin, err := open(cfg, config.MaintenanceDatabase)
	if err != nil {
		return fmt.Errorf("failed to connect to maintenance database: %w", err)
	}
	defer func() {
		if sqlDB, err := admin.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	for _, stmt := range recreateStatements(cfg.Name) {
		if err := admin.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to recreate database %s: %w", cfg.Name, err)
		}
	}

	log.Info().Str("database", cfg.Name).Msg("Recreated PostgreSQL database")
	return nil
}

// recreateStatements returns the DROP and CREATE statements for a
// PostgreSQL database, with the name quoted as an identifier.
func recreateStatements(name string) []string {
	quoted := pq.QuoteIdentifier(name)
	return []string{
		"DROP DATABASE IF EXISTS " + quoted,
		"CREATE DATABASE " + quoted,
	}
}

// MissingTables lists the catalog tables absent from the connected store.
func (d *Database) MissingTables() []string {
	migrator := d.DB.Migrator()
	var missing []string
	for _, table := range catalogTables {
		if migrator.HasTable(table) {
			continue
		}
		stmt := &gorm.Statement{DB: d.DB}
		if err := stmt.Parse(table); err != nil {
			missing = append(missing, fmt.Sprintf("%T", table))
			continue
		}
		missing = append(missing, stmt.Schema.Table)
	}
	return missing
}
