package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/de-tools/astro-atlas/pkg/astro/fengshui"
	"github.com/de-tools/astro-atlas/pkg/server"
	"github.com/de-tools/astro-atlas/pkg/services/config"
	"github.com/de-tools/astro-atlas/pkg/services/profiles"
	"github.com/de-tools/astro-atlas/pkg/services/report"
	"github.com/de-tools/astro-atlas/pkg/store/archive"
	"github.com/de-tools/astro-atlas/pkg/store/duckdb"
	duckdbreports "github.com/de-tools/astro-atlas/pkg/store/duckdb/reports"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Astro Atlas",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the YAML config file (defaults and ASTRO_* environment variables when empty)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	gender, ok := fengshui.ParseGender(cfg.Report.Gender)
	if !ok {
		return fmt.Errorf("invalid report.gender %q", cfg.Report.Gender)
	}

	deps := server.Dependencies{
		Gender: gender,
		Seed:   cfg.Report.VedicSeed,
		Now:    time.Now,
	}
	deps.Reports = report.NewService(
		report.NewDefaultRegistry(report.Options{Gender: gender, Seed: cfg.Report.VedicSeed}),
		deps.Now,
	)

	if cfg.Store.Path != "" {
		db, err := duckdb.NewDB(duckdb.Settings{DbPath: cfg.Store.Path})
		if err != nil {
			return fmt.Errorf("failed to create DuckDB instance: %w", err)
		}
		defer closeDB(db, &logger)

		deps.Store, err = duckdbreports.NewStore(db)
		if err != nil {
			return fmt.Errorf("failed to create report store: %w", err)
		}
		logger.Info().Str("path", cfg.Store.Path).Msg("report storage enabled")
	}

	if cfg.Archive.Enabled() {
		deps.Archiver, err = loadArchiver(ctx, cfg.Archive)
		if err != nil {
			return err
		}
		logger.Info().Str("bucket", cfg.Archive.Bucket).Msg("report archive enabled")
	}

	if cfg.Profiles.Path != "" {
		deps.Profiles, err = profiles.NewRegistry(cfg.Profiles.Path)
		if err != nil {
			return fmt.Errorf("failed to load birth profiles: %w", err)
		}
		list, _ := deps.Profiles.GetProfiles(ctx)
		logger.Info().Msgf("Birth profiles at `%s` successfully loaded.", cfg.Profiles.Path)
		for _, p := range list {
			logger.Info().Msgf("Profile: `%s`", p)
		}
	}

	api := server.NewWebAPI(logger, server.Config{
		Addr:            cfg.Server.Addr(),
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Dependencies:    deps,
	})
	return api.Start()
}

func loadArchiver(ctx context.Context, cfg config.ArchiveConfig) (archive.Archiver, error) {
	a, err := archive.LoadS3Archiver(ctx, archive.Settings{
		Bucket:  cfg.Bucket,
		Prefix:  cfg.Prefix,
		Region:  cfg.Region,
		Profile: cfg.Profile,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create report archive: %w", err)
	}
	return a, nil
}

func closeDB(db *sql.DB, logger *zerolog.Logger) {
	if err := db.Close(); err != nil {
		logger.Error().Err(err).Msg("failed to close database")
	}
}
