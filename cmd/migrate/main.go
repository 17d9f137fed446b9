package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/uptrace/bun/migrate"
	"github.com/whiteboardproductions/site/go/internal/config"
	"github.com/whiteboardproductions/site/go/internal/db"
	"github.com/whiteboardproductions/site/go/internal/logger"
	"github.com/whiteboardproductions/site/go/migrations"
)

func usage() {
	fmt.Println("Usage: migrate [up|down|status|create <name>]")
	fmt.Println("  up     - apply pending migrations (orders, site_content)")
	fmt.Println("  down   - roll back the last applied group")
	fmt.Println("  status - list migrations and whether they are applied")
	fmt.Println("  create - scaffold a new transactional SQL migration")
}

func main() {
	cfg := config.Load()
	logger.InitConsole(cfg.LogLevel, os.Stderr)

	if cfg.DatabaseURL == "" {
		log.Fatal().Msg("DATABASE_URL is required to run migrations")
	}

	bunDB := db.NewBunPostgresClient(cfg.DatabaseURL)
	defer bunDB.Close()

	migrator := migrate.NewMigrator(bunDB, migrations.Migrations)
	ctx := context.Background()

	if err := migrator.Init(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize migrator")
	}

	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "up":
		if err := migrator.Lock(ctx); err != nil {
			log.Fatal().Err(err).Msg("Failed to lock migrations table")
		}
		defer func() { _ = migrator.Unlock(ctx) }()

		group, err := migrator.Migrate(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("Migration failed")
		}
		if group.IsZero() {
			fmt.Println("Database is up to date")
			return
		}
		fmt.Printf("Migrated to %s\n", group)

	case "down":
		group, err := migrator.Rollback(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("Rollback failed")
		}
		if group.IsZero() {
			fmt.Println("Nothing to roll back")
			return
		}
		fmt.Printf("Rolled back %s\n", group)

	case "status":
		ms, err := migrator.MigrationsWithStatus(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to get migration status")
		}
		fmt.Println("Migrations:")
		for _, m := range ms {
			status := "pending"
			if m.IsApplied() {
				status = "applied"
			}
			fmt.Printf("  %-40s %s\n", m.Name+"_"+m.Comment, status)
		}

	case "create":
		name := "migration"
		if len(os.Args) > 2 {
			name = strings.Join(os.Args[2:], "_")
		}
		files, err := migrator.CreateTxSQLMigrations(ctx, name)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create migration")
		}
		for _, f := range files {
			fmt.Printf("Created %s\n", f.Path)
		}

	default:
		usage()
		os.Exit(1)
	}
}
