package cmd

import (
	"fmt"

	"github.com/abhisek/financelab/internal/ui/theme"
	"github.com/spf13/cobra"
)

// runHome prints the learner's headline numbers and how to start.
func runHome(cmd *cobra.Command) error {
	d, err := openDeps(cmd)
	if err != nil {
		return err
	}
	defer d.Close()

	out := cmd.OutOrStdout()
	st := d.states.Get()

	fmt.Fprintln(out, theme.Title.Render("financelab"))
	fmt.Fprintln(out, theme.Subtitle.Render("Finance fundamentals, one short session at a time."))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s %d   %s %d day(s)   %s %d\n",
		theme.Label.Render("XP"), st.XPTotal,
		theme.Label.Render("Streak"), st.StreakCount,
		theme.Label.Render("Weak questions"), len(st.WeakQuestionIDs))

	if ls := st.LastSession; ls != nil {
		fmt.Fprintf(out, "%s %s / %s (%s), %d missed\n",
			theme.Label.Render("Last session"), ls.ModuleID, ls.SkillID, ls.Mode.DisplayName(), len(ls.Missed()))
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, theme.Hint.Render("List skills:      financelab modules [learn|practice]"))
	fmt.Fprintln(out, theme.Hint.Render("Start a session:  financelab play <mode> <module> <skill>"))
	return nil
}
