package main

import (
	"fmt"
	"os"

	"github.com/de-tools/astro-atlas/pkg/astro/fengshui"
	"github.com/de-tools/astro-atlas/pkg/runtime/terminal"
	"github.com/de-tools/astro-atlas/pkg/services/config"
	"github.com/de-tools/astro-atlas/pkg/services/report"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.WarnLevel).
		With().Timestamp().Logger()

	cfg, err := config.LoadConfig(os.Getenv("ASTRO_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	gender, ok := fengshui.ParseGender(cfg.Report.Gender)
	if !ok {
		gender = fengshui.GenderMale
	}

	cli := terminal.NewCLI(terminal.Options{
		Service: report.NewService(
			report.NewDefaultRegistry(report.Options{Gender: gender, Seed: cfg.Report.VedicSeed}),
			nil,
		),
		Output:       os.Stdout,
		Logger:       &logger,
		Gender:       gender,
		ProfilesPath: cfg.Profiles.Path,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
