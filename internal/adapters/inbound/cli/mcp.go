package cli

import (
	"path/filepath"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/openkraft/docguard/internal/adapters/inbound/mcp"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the docguard MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var projectPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start docguard MCP server (stdio)",
		Long:  "Start the docguard MCP server using stdio transport. AI coding assistants can then check naming, preview rename plans, validate documents and compute versions. The server never modifies the project.",
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := filepath.Abs(projectPath)
			if err != nil {
				return err
			}
			if err := requireDir(root); err != nil {
				return err
			}
			s := mcpadapter.NewDocguardMCPServer(root, newLogger(cmd))
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&projectPath, "path", ".", "Project path (defaults to current working directory)")

	return cmd
}
