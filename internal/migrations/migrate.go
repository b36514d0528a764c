package migrations

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"regexp"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	pg "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
)

// DefaultDir holds the SQL migrations, relative to the working directory.
const DefaultDir = "migrations"

const migrationsTable = "schema_migrations_api"

var versionPrefix = regexp.MustCompile(`^0*([0-9]+)_`)

// RunMigrations applies every pending migration in dir. A database that
// already has api_audit but no migrate metadata is baselined to the latest
// version first.
func RunMigrations(databaseURL, dir string) error {
	if databaseURL == "" {
		return errors.New("database URL is empty")
	}

	sqlDB, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return fmt.Errorf("failed to open DB: %w", err)
	}
	defer sqlDB.Close()

	driver, err := pg.WithInstance(sqlDB, &pg.Config{MigrationsTable: migrationsTable})
	if err != nil {
		return fmt.Errorf("failed to create migrate driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+dir, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if tableExists(sqlDB, "api_audit") && !tableExists(sqlDB, migrationsTable) {
		if latest := LatestVersion(dir); latest > 0 {
			log.Printf("[MIGRATE] Baseline DB to version %d (existing schema present)", latest)
			if ferr := m.Force(int(latest)); ferr != nil {
				log.Printf("[MIGRATE] Force to version %d failed: %v", latest, ferr)
			}
		}
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up failed: %w", err)
	}

	log.Printf("[MIGRATE] Migrations applied (no changes or up completed)")
	return nil
}

func tableExists(db *sql.DB, name string) bool {
	var exists bool
	row := db.QueryRow("SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name=$1)", name)
	return row.Scan(&exists) == nil && exists
}

// LatestVersion returns the highest numeric prefix (000001_...) among the
// files in dir, or 0.
func LatestVersion(dir string) int64 {
	files, err := os.ReadDir(dir)
	if err != nil {
		return 0
	}

	var max int64
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		m := versionPrefix.FindStringSubmatch(f.Name())
		if len(m) < 2 {
			continue
		}
		v, _ := strconv.ParseInt(m[1], 10, 64)
		if v > max {
			max = v
		}
	}
	return max
}
