package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openkraft/docguard/internal/adapters/outbound/tui"
)

func newValidateCmd() *cobra.Command {
	var (
		path       string
		name       string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Check a markdown document against a checklist",
		Long:  "Verify that a document has the required sections and mentions the required keywords. Exits non-zero when the checklist is not passed.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := projectRoot([]string{path})
			if err != nil {
				return err
			}

			result, err := newChecklistService(cmd).Check(root, args[0], name)
			if err != nil {
				return fmt.Errorf("check failed: %w", err)
			}

			if jsonOutput {
				if err := writeJSON(cmd, result); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderChecklistResult(result))
			}
			if !result.Passed {
				return fmt.Errorf("%s did not pass checklist %s (score %.2f, minimum %d)",
					result.File, result.Checklist, result.Score, result.MinScore)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", ".", "Project root")
	cmd.Flags().StringVar(&name, "checklist", "evaluation", "Checklist name")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}
