package postgres

import (
	"MiniLearn/pkg/logger"
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/jackc/tern/v2/migrate"
)

const versionTable = "schema_version"

//go:embed migrations/*.sql
var migrations embed.FS

// MigrationsFS exposes the embedded SQL files rooted at the migrations directory.
func MigrationsFS() (fs.FS, error) {
	return fs.Sub(migrations, "migrations")
}

// Migrate brings the schema to the latest embedded version on one pooled connection.
func (p *Storage) Migrate(ctx context.Context, log logger.Log) error {
	conn, err := p.Pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire migration connection: %w", err)
	}
	defer conn.Release()

	m, err := migrate.NewMigrator(ctx, conn.Conn(), versionTable)
	if err != nil {
		return fmt.Errorf("constructing database migrator: %w", err)
	}

	subtree, err := MigrationsFS()
	if err != nil {
		return fmt.Errorf("retrieving database migrations subtree: %w", err)
	}
	if err := m.LoadMigrations(subtree); err != nil {
		return fmt.Errorf("loading database migrations: %w", err)
	}

	from, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return fmt.Errorf("retrieving current database migration version: %w", err)
	}
	if err := m.Migrate(ctx); err != nil {
		return fmt.Errorf("migrating database: %w", err)
	}

	if from == int32(len(m.Migrations)) {
		log.Info("database schema up to date", "version", len(m.Migrations))
	} else {
		log.Info("migrated database schema", "from", from, "to", len(m.Migrations))
	}
	return nil
}
