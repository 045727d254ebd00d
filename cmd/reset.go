package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset learner data",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			fmt.Fprint(out, "This erases all XP, stars, streak and history. Type yes to confirm: ")
			sc := bufio.NewScanner(cmd.InOrStdin())
			if !sc.Scan() || strings.TrimSpace(strings.ToLower(sc.Text())) != "yes" {
				fmt.Fprintln(out, "Cancelled.")
				return nil
			}
		}

		d, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		if err := d.states.Reset(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(out, "Learner data reset.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
}
