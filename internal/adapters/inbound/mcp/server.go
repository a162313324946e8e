package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/openkraft/docguard/internal/application"
)

// NewDocguardMCPServer creates an MCP server with every docguard tool and
// resource registered for the project rooted at projectPath. Nothing it
// exposes mutates the project.
func NewDocguardMCPServer(projectPath string, logger *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer(
		"docguard",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	svc := newServices(application.Env{Logger: logger})
	registerTools(s, projectPath, svc)
	registerResources(s, projectPath, svc)

	return s
}
