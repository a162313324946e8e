package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openkraft/docguard/internal/adapters/outbound/tui"
	"github.com/openkraft/docguard/internal/application"
	"github.com/openkraft/docguard/internal/domain"
)

func newSignaturesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "signatures",
		Short: "Fill in team signature placeholders",
	}
	cmd.AddCommand(newSignaturesUpdateCmd())
	return cmd
}

func newSignaturesUpdateCmd() *cobra.Command {
	var (
		opts       application.SignatureOptions
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "update [root]",
		Short: "Replace {{FIRMA_*}} and {{SIGNATURE_*}} placeholders",
		Long:  "Read the signature profiles from profiles_file and replace every known placeholder in the project's text files.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := projectRoot(args)
			if err != nil {
				return err
			}
			svc := newSignatureService(cmd)

			var rep *domain.SignatureReport
			run := func() error {
				rep, err = svc.Update(root, opts)
				return err
			}
			if opts.DryRun {
				err = run()
			} else {
				err = withLock(root, run)
			}
			if err != nil {
				return fmt.Errorf("signature update failed: %w", err)
			}

			if jsonOutput {
				if err := writeJSON(cmd, rep); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderSignatureReport(rep))
			}
			if len(rep.Errors) > 0 {
				return fmt.Errorf("%d files could not be processed", len(rep.Errors))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Count placeholders without writing")
	cmd.Flags().StringVar(&opts.Only, "file", "", "Only process this file (relative to the project root)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}
