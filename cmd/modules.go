package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/financelab/internal/content"
	"github.com/abhisek/financelab/internal/progress"
	"github.com/abhisek/financelab/internal/scoring"
	"github.com/abhisek/financelab/internal/ui/theme"
	"github.com/spf13/cobra"
)

var modulesCmd = &cobra.Command{
	Use:   "modules [mode]",
	Short: "List modules and skills (optionally only those with questions for a mode)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		modes := content.SessionModes()
		if len(args) == 1 {
			mode, err := content.ParseSessionMode(args[0])
			if err != nil {
				return err
			}
			modes = []content.Mode{mode}
		}

		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		out := cmd.OutOrStdout()
		st := d.states.Get()

		modules := d.catalog.Modules()
		if len(modes) == 1 {
			modules = d.catalog.ModulesForMode(modes[0])
		}

		for _, m := range modules {
			fmt.Fprintf(out, "%s  %s\n", theme.Title.Render(m.Title), theme.Subtitle.Render(m.ID))
			for _, s := range m.Skills {
				var cols []string
				for _, mode := range modes {
					p, _ := progress.SkillProgressFor(st, m.ID, s.ID, mode)
					cols = append(cols, fmt.Sprintf("%-11s %s", mode.DisplayName(), theme.Stars(int(p.Stars), int(scoring.MaxStars))))
				}
				fmt.Fprintf(out, "  %-24s %-28s %s\n", s.ID, truncate(s.Title, 28), strings.Join(cols, "   "))
			}
			fmt.Fprintln(out)
		}

		fmt.Fprintf(out, "%d modules\n", len(modules))
		return nil
	},
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
