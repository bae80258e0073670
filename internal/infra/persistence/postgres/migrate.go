package postgres

import (
	"fmt"
	"log/slog"
	"net/url"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres" // migrate driver
	_ "github.com/golang-migrate/migrate/v4/source/file"       // migration files
	"noteboard/config"
	"noteboard/internal/errors"
)

// runMigrations applies the SQL files in cfg.MigrationsPath to the database.
// ErrNoChange is not an error: a fully migrated schema is the steady state.
func runMigrations(cfg *config.PostgresConfig, logger *slog.Logger) error {
	m, err := migrate.New("file://"+cfg.MigrationsPath, migrateDSN(cfg))
	if err != nil {
		return errors.Wrap(err, "failed to init migrations")
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil || dbErr != nil {
			logger.Warn("Failed to close migrator",
				slog.Any("sourceError", srcErr), slog.Any("dbError", dbErr))
		}
	}()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info("Database schema already up to date")

			return nil
		}

		return errors.Wrap(err, "failed to apply migrations")
	}

	logger.Info("Database migrations applied")

	return nil
}

func migrateDSN(cfg *config.PostgresConfig) string {
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		url.QueryEscape(cfg.UserName), url.QueryEscape(cfg.Password),
		cfg.Host, cfg.Port, cfg.DBName, sslMode)
}
