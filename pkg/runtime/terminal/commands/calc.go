package commands

import (
	"fmt"
	"strings"

	"github.com/de-tools/astro-atlas/pkg/astro/bazi"
	"github.com/de-tools/astro-atlas/pkg/astro/dignity"
	"github.com/de-tools/astro-atlas/pkg/astro/fengshui"
	"github.com/de-tools/astro-atlas/pkg/astro/lots"
	"github.com/de-tools/astro-atlas/pkg/astro/timelords"
	"github.com/de-tools/astro-atlas/pkg/astro/zodiac"
	"github.com/de-tools/astro-atlas/pkg/services/report"
	"github.com/spf13/cobra"
)

func NewSignCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sign <name>",
		Short: "Show the element, modality and ruler of a sign",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sign := args[0]
			if canonical, ok := zodiac.ParseSign(sign); ok {
				sign = canonical
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s: element %s, modality %s, ruler %s\n",
				sign, zodiac.ElementOf(sign), zodiac.ModalityOf(sign), zodiac.Ruler(sign))
			return err
		},
	}
}

func NewDignityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dignity <planet> <sign>",
		Short: "Show the essential dignity of a planet in a sign",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s in %s: %s\n",
				args[0], args[1], dignity.Of(args[0], args[1]))
			return err
		},
	}
}

func NewKuaCmd(env *Env) *cobra.Command {
	var (
		year   int
		gender string
	)
	cmd := &cobra.Command{
		Use:   "kua",
		Short: "Calculate the feng shui Kua number",
		RunE: func(cmd *cobra.Command, _ []string) error {
			g := env.Gender
			if gender != "" {
				parsed, ok := fengshui.ParseGender(gender)
				if !ok {
					return fmt.Errorf("invalid --gender %q. Expected 'male' or 'female'", gender)
				}
				g = parsed
			}
			if g == "" {
				g = fengshui.GenderMale
			}

			p := fengshui.ProfileFor(year, g)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Kua %d (%s, %s group)\n", p.Number, p.Element, p.Group)
			fmt.Fprintf(out, "Favorable:   %s\n", strings.Join(p.Favorable, ", "))
			fmt.Fprintf(out, "Unfavorable: %s\n", strings.Join(p.Unfavorable, ", "))
			fmt.Fprintf(out, "Colors:      %s\n", strings.Join(p.Colors, ", "))
			_, err := fmt.Fprintln(out, p.Personality)
			return err
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Birth year")
	cmd.Flags().StringVar(&gender, "gender", "", "male or female (defaults to the configured gender)")
	_ = cmd.MarkFlagRequired("year")

	return cmd
}

func NewPillarsCmd(env *Env) *cobra.Command {
	var birth birthFlags
	cmd := &cobra.Command{
		Use:   "pillars",
		Short: "Derive the Four Pillars of a birth moment",
		RunE: func(cmd *cobra.Command, _ []string) error {
			chart, err := birth.chart(env.context(cmd.Context()), env)
			if err != nil {
				return err
			}

			fp := bazi.Derive(chart.BirthDate, chart.BirthHour())
			out := cmd.OutOrStdout()
			for _, p := range fp.Ordered() {
				fmt.Fprintf(out, "%-6s %s%s  %-5s %-5s %s\n",
					p.Name, p.Stem, p.Branch, p.StemRomanized, p.BranchRomanized, p.Animal)
			}
			fmt.Fprintf(out, "Year element: %s\n", fp.YearElement)
			if !fp.HourKnown {
				fmt.Fprintf(out, "Birth time unknown, hour pillar uses %02d:00\n", bazi.DefaultHour)
			}
			return nil
		},
	}
	birth.register(cmd)
	return cmd
}

func NewTimeLordsCmd(env *Env) *cobra.Command {
	var (
		birth     birthFlags
		now       string
		ascendant string
		fortune   string
	)
	cmd := &cobra.Command{
		Use:   "timelords",
		Short: "Show the decennial, profection and zodiacal releasing lords",
		RunE: func(cmd *cobra.Command, _ []string) error {
			chart, err := birth.chart(env.context(cmd.Context()), env)
			if err != nil {
				return err
			}
			at, err := parseNow(env, now)
			if err != nil {
				return err
			}

			if ascendant == "" {
				ascendant = chart.AscendantSign()
			}
			if fortune == "" && len(chart.Planets) > 0 {
				fortune = report.FortuneSign(chart)
			}

			age := timelords.Age(chart.BirthDate, at)
			dec := timelords.Decennial(age)
			prof := timelords.Profect(age, ascendant)
			zr := timelords.Release(fortune, age)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Age %d\n", age)
			fmt.Fprintf(out, "Decennial:  %s %s\n", dec.Planet, span(dec))
			fmt.Fprintf(out, "Profection: house %d, %s (ruler %s)\n", prof.House, prof.Theme, prof.Ruler)
			if prof.Sign != "" {
				fmt.Fprintf(out, "            %s, lord of the year %s\n", prof.Sign, prof.SignRuler)
			}
			fmt.Fprintf(out, "Releasing:  %s (%s) %s\n", zr.Sign, zr.Planet, span(zr))
			return nil
		},
	}
	birth.register(cmd)
	cmd.Flags().StringVar(&now, "now", "", "Reference date (YYYY-MM-DD), defaults to today")
	cmd.Flags().StringVar(&ascendant, "ascendant", "", "Ascendant sign, defaults to the chart's")
	cmd.Flags().StringVar(&fortune, "fortune", "", "Sign of the Lot of Fortune, defaults to the chart's")
	return cmd
}

func span(c timelords.Current) string {
	if !c.InRange {
		return "(beyond cycle)"
	}
	return fmt.Sprintf("ages %d-%d, %d remaining", c.Start, c.End, c.Remaining)
}

func NewLotCmd(env *Env) *cobra.Command {
	var (
		birth birthFlags
		sect  string
	)
	cmd := &cobra.Command{
		Use:   "lot [name...]",
		Short: "Compute Hellenistic lots for a chart",
		RunE: func(cmd *cobra.Command, args []string) error {
			chart, err := birth.chart(env.context(cmd.Context()), env)
			if err != nil {
				return err
			}

			var day bool
			switch strings.ToLower(sect) {
			case "", "auto":
				day = report.IsDayChart(chart)
			case "day":
				day = true
			case "night":
				day = false
			default:
				return fmt.Errorf("invalid --sect %q. Expected auto, day or night", sect)
			}

			defs := lots.Catalogue
			if len(args) > 0 {
				defs = nil
				for _, name := range args {
					def, ok := lots.Find(name)
					if !ok {
						return fmt.Errorf("unknown lot %q", name)
					}
					defs = append(defs, def)
				}
			}

			pos := chart.Positions()
			out := cmd.OutOrStdout()
			for _, def := range defs {
				l := lots.Compute(def, pos, day)
				fmt.Fprintf(out, "Lot of %-8s %s %.2f° (house %d)  %s\n",
					l.Name, l.Sign, l.DegreeInSign, l.House, l.Formula)
				if len(l.Unresolved) > 0 {
					fmt.Fprintf(out, "  missing: %s\n", strings.Join(l.Unresolved, ", "))
				}
			}
			return nil
		},
	}
	birth.register(cmd)
	cmd.Flags().StringVar(&sect, "sect", "auto", "auto, day or night")
	return cmd
}
