package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/de-tools/astro-atlas/pkg/models/domain"
	"github.com/de-tools/astro-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/astro-atlas/pkg/services/report"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

type ReportCmd struct {
	env         *Env
	birth       birthFlags
	reportType  string
	title       string
	contentFile string
	premium     bool
	format      string
}

func NewReportCmd(env *Env) *cobra.Command {
	rc := &ReportCmd{env: env}
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render a birth chart report",
		RunE:  rc.run,
	}

	rc.birth.register(cmd)
	cmd.Flags().StringVar(&rc.reportType, "type", "western", "Report type: western, vedic, chinese or hellenistic")
	cmd.Flags().StringVar(&rc.title, "title", "", "Report title")
	cmd.Flags().StringVar(&rc.contentFile, "content-file", "", "Written reading to append, with **Heading** lines")
	cmd.Flags().BoolVar(&rc.premium, "premium", false, "Unlock premium sections")
	cmd.Flags().StringVar(&rc.format, "format", "table", "Output format: "+strings.Join(formats(env), ", "))

	return cmd
}

func formats(env *Env) []string {
	out := make([]string, 0, len(env.Reporters))
	for k := range env.Reporters {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func (rc *ReportCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := rc.env.context(cmd.Context())

	handler, ok := rc.env.Reporters[rc.format]
	if !ok {
		return fmt.Errorf("unsupported format %q. Supported formats: %v", rc.format, formats(rc.env))
	}

	chart, err := rc.birth.chart(ctx, rc.env)
	if err != nil {
		return err
	}

	req := domain.AstrologyReport{
		ID:         uuid.NewString(),
		ChartID:    chart.ID,
		ReportType: rc.reportType,
		Title:      rc.title,
		IsPremium:  rc.premium,
	}
	if rc.contentFile != "" {
		raw, err := os.ReadFile(rc.contentFile)
		if err != nil {
			return fmt.Errorf("failed to read content: %w", err)
		}
		req.Content = string(raw)
	}

	rendered, err := rc.env.Service.Generate(ctx, chart, req)
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return handler.Handle(rendered)
}

func NewTimelineCmd(env *Env) *cobra.Command {
	var (
		birth birthFlags
		now   string
		html  string
	)
	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "List the period systems of a chart, optionally as an HTML chart",
		RunE: func(cmd *cobra.Command, _ []string) error {
			chart, err := birth.chart(env.context(cmd.Context()), env)
			if err != nil {
				return err
			}
			at, err := parseNow(env, now)
			if err != nil {
				return err
			}

			tl := report.BuildTimeline(chart, at)
			if html == "" {
				return export.WriteTimeline(cmd.OutOrStdout(), tl)
			}

			f, err := os.Create(html)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", html, err)
			}
			if err := writeTimelineHTML(f, tl); err != nil {
				return fmt.Errorf("failed to write %s: %w", html, err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Timeline written to %s\n", html)
			return err
		},
	}
	birth.register(cmd)
	cmd.Flags().StringVar(&now, "now", "", "Reference date (YYYY-MM-DD), defaults to today")
	cmd.Flags().StringVar(&html, "html", "", "Write an HTML chart to this file instead of text")
	return cmd
}

func NewProfilesCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List birth profiles",
		RunE: func(cmd *cobra.Command, _ []string) error {
			registry, err := env.profiles()
			if err != nil {
				return err
			}
			list, err := registry.GetProfiles(env.context(cmd.Context()))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, p := range list {
				fmt.Fprintln(out, p.String())
			}
			return nil
		},
	}
}

// writeTimelineHTML renders the chart into w and closes it. A close failure
// is returned since buffered output may not have reached the file.
func writeTimelineHTML(w io.WriteCloser, tl domain.Timeline) error {
	if err := export.WriteTimelineHTML(w, tl); err != nil {
		return errors.Join(err, w.Close())
	}
	return w.Close()
}
