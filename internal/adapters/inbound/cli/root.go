package cli

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docguard",
		Short: "Keep project filenames and documents in line with team conventions",
		Long: "docguard validates filenames against per-category naming conventions, renames offenders safely, " +
			"versions markdown documents, fills in team signatures and checks documents against checklists.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().Bool("verbose", false, "Log debug details to stderr")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newNamingCmd())
	cmd.AddCommand(newDocsCmd())
	cmd.AddCommand(newSignaturesCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}

// newLogger writes text logs to the command's stderr, at debug level
// when --verbose is set.
func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}
