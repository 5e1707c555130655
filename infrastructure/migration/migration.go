package migration

import (
	"database/sql"
	"embed"
	"fmt"

	migrate "github.com/rubenv/sql-migrate"
	"github.com/sirupsen/logrus"
)

const dialect = "postgres"

//go:embed sql
var files embed.FS

func source() migrate.MigrationSource {
	return &migrate.EmbedFileSystemMigrationSource{
		FileSystem: files,
		Root:       "sql",
	}
}

// Up aplica todas as migrações pendentes
func Up(db *sql.DB) (int, error) {
	n, err := migrate.Exec(db, dialect, source(), migrate.Up)
	if err != nil {
		return 0, fmt.Errorf("falha ao aplicar migrações: %w", err)
	}

	logrus.WithField("count", n).Info("Migrações aplicadas")
	return n, nil
}

// Down desfaz até steps migrações; steps <= 0 desfaz todas
func Down(db *sql.DB, steps int) (int, error) {
	if steps < 0 {
		steps = 0
	}

	n, err := migrate.ExecMax(db, dialect, source(), migrate.Down, steps)
	if err != nil {
		return 0, fmt.Errorf("falha ao reverter migrações: %w", err)
	}

	logrus.WithField("count", n).Info("Migrações revertidas")
	return n, nil
}
