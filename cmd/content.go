package cmd

import (
	"fmt"

	"github.com/abhisek/financelab/internal/content"
	"github.com/spf13/cobra"
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Inspect question content",
}

var contentValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a content file (defaults to --content, then the built-in catalog)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfg.ContentPath
		if len(args) == 1 {
			path = args[0]
		}

		catalog, err := content.Load(path)
		if err != nil {
			return err
		}

		var skills, questions int
		for _, m := range catalog.Modules() {
			skills += len(m.Skills)
			for _, s := range m.Skills {
				questions += len(s.Questions)
			}
		}

		name := path
		if name == "" {
			name = "built-in content"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d modules, %d skills, %d questions)\n",
			name, len(catalog.Modules()), skills, questions)
		return nil
	},
}

func init() {
	contentCmd.AddCommand(contentValidateCmd)
}
