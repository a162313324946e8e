package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openkraft/docguard/internal/adapters/outbound/history"
	"github.com/openkraft/docguard/internal/adapters/outbound/tui"
	"github.com/openkraft/docguard/internal/domain"
)

func newCheckCmd() *cobra.Command {
	var flags reportFlags

	cmd := &cobra.Command{
		Use:   "check [root]",
		Short: "Report files that break the naming conventions",
		Long:  "Scan the project (default: current directory) and report every filename that does not follow its category's convention. Exits non-zero when violations are found.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := projectRoot(args)
			if err != nil {
				return err
			}

			rep, err := newNamingService(cmd).Check(root, flags.file)
			if err != nil {
				return fmt.Errorf("check failed: %w", err)
			}

			if flags.jsonOutput {
				if err := writeJSON(cmd, rep); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderNamingReport(rep))
			}

			if !flags.noReport {
				paths, err := flags.writer().SaveNaming(root, rep)
				if err != nil {
					return fmt.Errorf("saving report: %w", err)
				}
				flags.announce(cmd, paths)
				if flags.file == "" {
					recordHistory(cmd, root, rep, flags.jsonOutput)
				}
			}

			if !rep.Passed() {
				return fmt.Errorf("%d naming violations found", rep.Summary.ViolationsFound)
			}
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

// recordHistory appends the run to the project history and prints the
// trend against the previous run. History problems only warn.
func recordHistory(cmd *cobra.Command, root string, rep *domain.NamingReport, quiet bool) {
	logger := newLogger(cmd)
	h := history.New()
	entries, err := h.Load(root)
	if err != nil {
		logger.Warn("reading history", "err", err)
	}
	cur := rep.Entry()
	if prev, ok := history.Last(entries); ok && !quiet {
		fmt.Fprint(cmd.OutOrStdout(), tui.RenderTrend(prev, cur))
	}
	if err := h.Save(root, cur); err != nil {
		logger.Warn("saving history", "err", err)
	}
}
