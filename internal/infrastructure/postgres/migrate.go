package postgres

import (
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // driver database/sql "pgx" para goose
	"github.com/pressly/goose/v3"
)

// Migrate aplica las migraciones SQL pendientes del directorio dir (goose)
// antes de abrir el pool de la aplicación.
func Migrate(dsn, dir string) error {
	db, err := goose.OpenDBWithDriver("pgx", dsn)
	if err != nil {
		return fmt.Errorf("abrir conexión para migraciones: %w", err)
	}
	defer func() { _ = db.Close() }()
	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("aplicar migraciones: %w", err)
	}
	return nil
}
