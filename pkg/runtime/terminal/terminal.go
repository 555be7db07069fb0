package terminal

import (
	"io"
	"os"
	"time"

	"github.com/de-tools/astro-atlas/pkg/astro/fengshui"
	"github.com/de-tools/astro-atlas/pkg/runtime/terminal/commands"
	"github.com/de-tools/astro-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/astro-atlas/pkg/services/profiles"
	"github.com/de-tools/astro-atlas/pkg/services/report"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	env     *commands.Env
	rootCmd *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Service      *report.Service
	Output       io.Writer
	Logger       *zerolog.Logger
	Now          func() time.Time
	Gender       fengshui.Gender
	ProfilesPath string
	OpenProfiles func(path string) (profiles.Registry, error)
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Service == nil {
		registry := report.NewDefaultRegistry(report.Options{Gender: opts.Gender})
		opts.Service = report.NewService(registry, opts.Now)
	}
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	cli := &CLI{
		env: &commands.Env{
			Service: opts.Service,
			Reporters: map[string]commands.ReportHandler{
				"table": export.NewReporter(opts.Output),
				"text":  NewReporter(opts.Output),
			},
			Logger:       logger,
			Now:          opts.Now,
			Gender:       opts.Gender,
			ProfilesPath: opts.ProfilesPath,
			OpenProfiles: opts.OpenProfiles,
		},
	}

	cli.rootCmd = cli.newRootCmd()
	cli.rootCmd.SetOut(opts.Output)
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "astro",
		Short:         "Astrology calculators and birth chart reports",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&cli.env.ProfilesPath, "profiles", cli.env.ProfilesPath,
		"Path to the birth profiles file (default is $HOME/"+profiles.DefaultFileName+")")

	cmd.AddCommand(commands.NewSignCmd())
	cmd.AddCommand(commands.NewDignityCmd())
	cmd.AddCommand(commands.NewKuaCmd(cli.env))
	cmd.AddCommand(commands.NewPillarsCmd(cli.env))
	cmd.AddCommand(commands.NewTimeLordsCmd(cli.env))
	cmd.AddCommand(commands.NewLotCmd(cli.env))
	cmd.AddCommand(commands.NewReportCmd(cli.env))
	cmd.AddCommand(commands.NewTimelineCmd(cli.env))
	cmd.AddCommand(commands.NewProfilesCmd(cli.env))

	return cmd
}
