package migration

import (
	"context"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mongodb"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/registra/api/config"
	"github.com/registra/api/pkg/logger"
	"github.com/rs/zerolog"
)

//go:embed migrations/*.json
var migrationFS embed.FS

// RunMongoMigration applies every pending migration under migrations/.
func RunMongoMigration(cfg config.MongoDBConfig) error {
	m, err := newMigrate(cfg)
	if err != nil {
		return err
	}
	defer m.Close()

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Logger(context.Background()).Debug().Msg("mongodb schema is up to date")
		return nil
	}
	if err != nil {
		return fmt.Errorf("run mongodb migration: %w", err)
	}
	version, dirty, _ := m.Version()
	logger.Logger(context.Background()).Info().Uint("version", version).Bool("dirty", dirty).Msg("mongodb migration done")
	return nil
}

// Version reports the currently applied migration version.
func Version(cfg config.MongoDBConfig) (uint, bool, error) {
	m, err := newMigrate(cfg)
	if err != nil {
		return 0, false, err
	}
	defer m.Close()
	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return version, dirty, err
}

func newMigrate(cfg config.MongoDBConfig) (*migrate.Migrate, error) {
	src, err := iofs.New(migrationFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("open embedded migrations: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, cfg.URI(true))
	if err != nil {
		return nil, fmt.Errorf("init mongodb migration: %w", err)
	}
	m.Log = migrateLogger{log: logger.Logger(context.Background())}
	return m, nil
}

type migrateLogger struct {
	log *zerolog.Logger
}

func (l migrateLogger) Printf(format string, v ...interface{}) {
	l.log.Debug().Msgf(format, v...)
}

func (l migrateLogger) Verbose() bool {
	return false
}
