package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"time"

	"expense-insights/internal/config"
	"expense-insights/internal/database"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

const usage = "usage: migrate <up|down|status|seed>"

func main() {
	_ = godotenv.Load()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	if err := run(os.Args[1:]); err != nil {
		slog.Error("migration error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(usage)
	}

	cfg := config.Load()
	if cfg.Database.Driver != config.DriverPostgres {
		return fmt.Errorf("SQL migrations need DB_DRIVER=%s, got %q", config.DriverPostgres, cfg.Database.Driver)
	}

	db, err := sql.Open("postgres", cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	command := args[0]
	if command == "seed" {
		cfg.Database.SeedDatabase = true
	}

	runner := database.NewMigrationRunner(db, &cfg.Database)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	if err := runner.WaitForDatabase(ctx); err != nil {
		return err
	}

	switch command {
	case "up":
		if err := runner.RunMigrations(); err != nil {
			return err
		}
		slog.Info("migrations applied successfully")

	case "down":
		if err := runner.RollbackLast(); err != nil {
			return err
		}
		slog.Info("rolled back the last migration")

	case "status":
		version, dirty, err := runner.GetMigrationStatus()
		if err != nil {
			return fmt.Errorf("failed to get version: %w", err)
		}
		slog.Info("migration status", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))

	case "seed":
		if err := runner.LoadSeeds(); err != nil {
			return err
		}
		slog.Info("seed files loaded")

	default:
		return fmt.Errorf("unknown command %q, %s", command, usage)
	}

	return nil
}
