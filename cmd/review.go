package cmd

import (
	"fmt"

	"github.com/abhisek/financelab/internal/ui/components"
	"github.com/abhisek/financelab/internal/ui/theme"
	"github.com/spf13/cobra"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Review the questions missed in the last session",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		out := cmd.OutOrStdout()
		st := d.states.Get()

		if weak, _ := cmd.Flags().GetBool("weak"); weak {
			if len(st.WeakQuestionIDs) == 0 {
				fmt.Fprintln(out, "No weak questions.")
				return nil
			}
			for _, id := range st.WeakQuestionIDs {
				q, ok := d.catalog.Question(id)
				if !ok {
					fmt.Fprintf(out, "  %s %s\n", id, theme.Hint.Render("(no longer in content)"))
					continue
				}
				fmt.Fprintf(out, "  %-10s %s\n", id, q.Prompt)
			}
			return nil
		}

		ls := st.LastSession
		if ls == nil {
			fmt.Fprintln(out, "No completed sessions yet.")
			return nil
		}

		fmt.Fprintf(out, "%s  %s / %s (%s)\n",
			theme.Title.Render("Last session"), ls.ModuleID, ls.SkillID, ls.Mode.DisplayName())
		if !ls.CompletedAt.IsZero() {
			fmt.Fprintf(out, "%s\n", theme.Subtitle.Render("completed "+ls.CompletedAt.Local().Format("2006-01-02 15:04")))
		}

		missed := ls.Missed()
		fmt.Fprintf(out, "%d of %d answered correctly\n\n", len(ls.QuestionResults)-len(missed), len(ls.QuestionResults))
		if len(missed) == 0 {
			fmt.Fprintln(out, "Nothing to review.")
			return nil
		}

		for _, r := range missed {
			q, ok := d.catalog.Question(r.QuestionID)
			if !ok {
				fmt.Fprintf(out, "%s %s\n\n", r.QuestionID, theme.Hint.Render("(no longer in content)"))
				continue
			}
			fmt.Fprintln(out, theme.Body.Bold(true).Render(q.Prompt))
			fmt.Fprintln(out, components.Feedback(q, r))
			fmt.Fprintln(out)
		}
		return nil
	},
}

func init() {
	reviewCmd.Flags().Bool("weak", false, "List the weak-question set instead of the last session")
}
