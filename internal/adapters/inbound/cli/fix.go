package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openkraft/docguard/internal/adapters/outbound/prompt"
	"github.com/openkraft/docguard/internal/adapters/outbound/tui"
	"github.com/openkraft/docguard/internal/application"
	"github.com/openkraft/docguard/internal/domain"
)

func newFixCmd() *cobra.Command {
	var (
		flags   reportFlags
		execute bool
		yes     bool
	)

	cmd := &cobra.Command{
		Use:   "fix [root]",
		Short: "Rename files that break the naming conventions",
		Long: "Plan the renames that bring every filename in line with its convention. Nothing changes on disk " +
			"unless --execute is given; critical files are backed up to backups/ before the first rename. " +
			"Existing files are never overwritten.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := projectRoot(args)
			if err != nil {
				return err
			}
			svc := newFixService(cmd)

			if !execute {
				plan, err := svc.Plan(root, flags.file)
				if err != nil {
					return fmt.Errorf("fix failed: %w", err)
				}
				return finishFix(cmd, &flags, root, plan)
			}

			return withLock(root, func() error {
				plan, err := svc.Plan(root, flags.file)
				if err != nil {
					return fmt.Errorf("fix failed: %w", err)
				}
				if err := confirmFix(cmd, svc, plan, yes || flags.jsonOutput); err != nil {
					return err
				}
				if plan.Status == domain.FixPlanned {
					if err := svc.Apply(plan); err != nil {
						return fmt.Errorf("fix failed: %w", err)
					}
				}
				return finishFix(cmd, &flags, root, plan)
			})
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&execute, "execute", false, "Perform the renames instead of only planning them")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation before renaming")
	return cmd
}

// confirmFix asks before renaming. A declined prompt cancels the plan.
// JSON output implies --yes so the prompt never interleaves with it.
func confirmFix(cmd *cobra.Command, svc *application.FixService, plan *domain.FixReport, skip bool) error {
	pending := plan.TotalChanges - plan.Conflicts()
	if skip || pending == 0 {
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), tui.RenderFixReport(plan))
	ok, err := prompt.New(cmd.InOrStdin(), cmd.ErrOrStderr()).
		Confirm(fmt.Sprintf("Rename %d files?", pending))
	if err != nil {
		return fmt.Errorf("reading confirmation: %w", err)
	}
	if !ok {
		svc.Cancel(plan)
	}
	return nil
}

func finishFix(cmd *cobra.Command, flags *reportFlags, root string, plan *domain.FixReport) error {
	if flags.jsonOutput {
		if err := writeJSON(cmd, plan); err != nil {
			return err
		}
	} else {
		fmt.Fprint(cmd.OutOrStdout(), tui.RenderFixReport(plan))
	}

	if !flags.noReport && plan.Status != domain.FixCancelled {
		paths, err := flags.writer().SaveFix(root, plan)
		if err != nil {
			return fmt.Errorf("saving report: %w", err)
		}
		flags.announce(cmd, paths)
	}

	if failed := plan.CountOutcomes(domain.OutcomeFailed); failed > 0 {
		return fmt.Errorf("%d renames failed", failed)
	}
	return nil
}
