package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"expense-insights/internal/config"
	"expense-insights/internal/database"
	"expense-insights/internal/models"
	"expense-insights/internal/repositories"
	"expense-insights/internal/services"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	_ = godotenv.Load()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	usersPerLocation := flag.Int("users", services.DefaultSeedUsersPerLocation, "synthetic users per location")
	months := flag.Int("months", services.DefaultSeedMonths, "months of expense history per user")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "random seed for reproducible data")
	flag.Parse()

	opts := models.SeedOptions{
		UsersPerLocation: *usersPerLocation,
		Months:           *months,
		Now:              time.Now(),
	}

	if err := run(opts, *seed); err != nil {
		slog.Error("seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(opts models.SeedOptions, seed uint64) error {
	cfg := config.Load()
	if cfg.IsProduction() {
		return fmt.Errorf("refusing to seed synthetic data in production")
	}

	ctx := context.Background()
	db, err := database.Initialize(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	seeder := services.NewSeedService(
		repositories.NewLocationRepository(db.DB),
		repositories.NewUserRepository(db.DB),
		repositories.NewExpenseRepository(db.DB),
		services.NewExpenseGenerator(seed),
		services.NewPrometheusMetrics(prometheus.NewRegistry()),
	)

	result, err := seeder.SeedCommunity(ctx, opts)
	if err != nil {
		return err
	}

	slog.Info("community seeded",
		slog.Int("locations", result.Locations),
		slog.Int("users", result.Users),
		slog.Int("expenses", result.Expenses),
	)
	return nil
}
