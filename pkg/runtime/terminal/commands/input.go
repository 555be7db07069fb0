package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/de-tools/astro-atlas/pkg/adapters"
	"github.com/de-tools/astro-atlas/pkg/models/api"
	"github.com/de-tools/astro-atlas/pkg/models/domain"
	"github.com/spf13/cobra"
)

// birthFlags selects the chart a command works on: a profile, a JSON chart
// file or a bare --date/--time.
type birthFlags struct {
	date      string
	time      string
	profile   string
	chartFile string
}

func (b *birthFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&b.date, "date", "", "Birth date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&b.time, "time", "", "Birth time (HH:MM), optional")
	cmd.Flags().StringVar(&b.profile, "profile", "", "Name of a birth profile")
	cmd.Flags().StringVar(&b.chartFile, "chart", "", "Path to a chart in the API's JSON format")
	cmd.MarkFlagsMutuallyExclusive("date", "profile", "chart")
	cmd.MarkFlagsOneRequired("date", "profile", "chart")
}

func (b *birthFlags) chart(ctx context.Context, env *Env) (domain.BirthChart, error) {
	switch {
	case b.chartFile != "":
		raw, err := os.ReadFile(b.chartFile)
		if err != nil {
			return domain.BirthChart{}, fmt.Errorf("failed to read chart: %w", err)
		}
		var c api.BirthChart
		if err := json.Unmarshal(raw, &c); err != nil {
			return domain.BirthChart{}, fmt.Errorf("failed to parse chart %s: %w", b.chartFile, err)
		}
		return adapters.MapChartApiToDomain(c)

	case b.profile != "":
		registry, err := env.profiles()
		if err != nil {
			return domain.BirthChart{}, err
		}
		return registry.GetChart(ctx, b.profile)

	default:
		birth, err := time.Parse(domain.DateLayout, b.date)
		if err != nil {
			return domain.BirthChart{}, fmt.Errorf("invalid --date %q. Expected format: YYYY-MM-DD", b.date)
		}
		chart := domain.BirthChart{BirthDate: birth}
		if b.time != "" {
			chart.BirthTime, err = domain.ParseTimeOfDay(b.time)
			if err != nil {
				return domain.BirthChart{}, fmt.Errorf("invalid --time %q. Expected format: HH:MM", b.time)
			}
		}
		return chart, nil
	}
}

func parseNow(env *Env, value string) (time.Time, error) {
	if value == "" {
		return env.now(), nil
	}
	now, err := time.Parse(domain.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --now %q. Expected format: YYYY-MM-DD", value)
	}
	return now, nil
}
