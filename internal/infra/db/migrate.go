package db

import (
	"embed"
	"errors"
	"log/slog"

	"timewise/internal/pkg/errs"

	"github.com/golang-migrate/migrate/v4"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// RunMigrations applies every pending migration. The settings table is not
// part of this set; it is created on demand by the settings repository.
func RunMigrations(pool *pgxpool.Pool, logger *slog.Logger) error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return errs.Wrap(err, "failed to load migrations")
	}

	// the pool stays open; only the migration connection is released
	sqlDB := stdlib.OpenDBFromPool(pool)

	driver, err := migratepgx.WithInstance(sqlDB, &migratepgx.Config{})
	if err != nil {
		return errs.Wrap(err, "failed to create migration driver")
	}

	m, err := migrate.NewWithInstance("iofs", source, "pgx5", driver)
	if err != nil {
		return errs.Wrap(err, "failed to initialize migrations")
	}
	defer func() { _, _ = m.Close() }()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errs.Wrap(err, "failed to apply migrations")
	}

	version, dirty, _ := m.Version()
	if dirty {
		logger.Warn("database migration is dirty", "version", version)
	} else {
		logger.Info("database migrations applied", "version", version)
	}

	return nil
}
