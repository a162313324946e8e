package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openkraft/docguard/internal/adapters/outbound/report"
)

func newNamingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "naming",
		Short: "Validate and fix filename conventions",
		Long:  "Check every tracked file against its category's naming convention, and rename the ones that break it.",
	}
	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newFixCmd())
	return cmd
}

// reportFlags are shared by the naming subcommands.
type reportFlags struct {
	file       string
	jsonOutput bool
	markdown   bool
	noReport   bool
}

func (f *reportFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.file, "file", "", "Only process this file (relative to the project root)")
	cmd.Flags().BoolVar(&f.jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&f.markdown, "markdown", false, "Also write a markdown rendering of the report")
	cmd.Flags().BoolVar(&f.noReport, "no-report", false, "Do not write report files")
}

func (f *reportFlags) writer() report.Writer {
	return report.Writer{Markdown: f.markdown}
}

// announce prints the written report paths unless the output is JSON.
func (f *reportFlags) announce(cmd *cobra.Command, paths []string) {
	if f.jsonOutput {
		return
	}
	for _, p := range paths {
		fmt.Fprintf(cmd.OutOrStdout(), "Report saved to %s\n", p)
	}
}
