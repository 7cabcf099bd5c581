package main

import (
	"context"
	"database/sql"
	"flag"
	"log"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"github.com/schoolsync/ptm-api/pkg/config"
	"github.com/schoolsync/ptm-api/pkg/database"
)

// Applies the SQL migrations in the configured migrations directory.
// Usage: migrate [-dir migrations] <up|down|status|version>
func main() {
	dir := flag.String("dir", "", "migrations directory (defaults to DB_MIGRATIONS_DIR)")
	flag.Parse()

	command := flag.Arg(0)
	if command == "" {
		command = "up"
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	migrationsDir := *dir
	if migrationsDir == "" {
		migrationsDir = cfg.Database.MigrationsDir
	}

	db, err := sql.Open("postgres", database.DSN(cfg.Database))
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("failed to set goose dialect: %v", err)
	}

	ctx := context.Background()

	switch command {
	case "up":
		err = goose.UpContext(ctx, db, migrationsDir)
	case "down":
		err = goose.DownContext(ctx, db, migrationsDir)
	case "status":
		err = goose.StatusContext(ctx, db, migrationsDir)
	case "version":
		var version int64
		version, err = goose.GetDBVersionContext(ctx, db)
		if err == nil {
			log.Printf("database version: %d", version)
		}
	default:
		log.Fatalf("unknown command %q (want up, down, status or version)", command)
	}

	if err != nil {
		log.Fatalf("migration %s failed: %v", command, err)
	}
}
