package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/openkraft/docguard/internal/adapters/outbound/tui"
	"github.com/openkraft/docguard/internal/application"
	"github.com/openkraft/docguard/internal/domain"
)

func newDocsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Version and validate markdown documents",
	}
	cmd.AddCommand(newBumpCmd())
	cmd.AddCommand(newValidateCmd())
	return cmd
}

func newBumpCmd() *cobra.Command {
	var (
		path       string
		opts       application.BumpOptions
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "bump <MAJOR|MINOR|PATCH>",
		Short: "Bump the version stamp of every versioned document",
		Long: "Find the markdown files under docs_dir that carry a version stamp, move each to its next version, " +
			"refresh their date stamps and record the release in the changelog.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			opts.Change = args[0]
			svc := newVersionService(cmd)

			var rep *domain.VersionReport
			run := func() error {
				rep, err = svc.Bump(root, opts)
				return err
			}
			if opts.DryRun {
				err = run()
			} else {
				err = withLock(root, run)
			}
			if err != nil {
				return fmt.Errorf("bump failed: %w", err)
			}

			if jsonOutput {
				if err := writeJSON(cmd, rep); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderVersionReport(rep))
			}
			if len(rep.Errors) > 0 {
				return fmt.Errorf("%d documents could not be bumped", len(rep.Errors))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", ".", "Project root")
	cmd.Flags().StringVarP(&opts.Description, "description", "d", "", "Release description (default: the existing one, else one per change kind)")
	cmd.Flags().StringVar(&opts.Match, "match", "", "Only bump documents whose file name contains this text")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Show the new versions without writing anything")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}
