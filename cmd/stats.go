package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/financelab/internal/content"
	"github.com/abhisek/financelab/internal/progress"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		out := cmd.OutOrStdout()
		st := d.states.Get()

		last := st.LastCompletedDate
		if last == "" {
			last = "never"
		}
		fmt.Fprintf(out, "XP total:        %d\n", st.XPTotal)
		fmt.Fprintf(out, "Streak:          %d day(s), last completed %s\n", st.StreakCount, last)
		fmt.Fprintf(out, "Weak questions:  %d/%d\n\n", len(st.WeakQuestionIDs), progress.MaxWeakQuestions)

		fmt.Fprintf(out, "%-14s  %-16s  %-11s  %5s  %5s  %8s\n",
			"Module", "Skill", "Mode", "Best", "Stars", "Sessions")
		fmt.Fprintln(out, strings.Repeat("─", 68))

		rows := 0
		for _, m := range d.catalog.Modules() {
			for _, s := range m.Skills {
				for _, mode := range content.SessionModes() {
					p, ok := progress.SkillProgressFor(st, m.ID, s.ID, mode)
					if !ok || p.SessionsCompleted == 0 {
						continue
					}
					fmt.Fprintf(out, "%-14s  %-16s  %-11s  %4d%%  %5d  %8d\n",
						truncate(m.ID, 14), truncate(s.ID, 16), mode.DisplayName(),
						int(p.BestScore*100+0.5), p.Stars, p.SessionsCompleted)
					rows++
				}
			}
		}
		if rows == 0 {
			fmt.Fprintln(out, "No sessions completed yet.")
		}
		return nil
	},
}
