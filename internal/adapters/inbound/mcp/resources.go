package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const catalogURI = "docguard://catalog"

// registerResources registers all docguard MCP resources on the given server.
func registerResources(s *server.MCPServer, projectPath string, svc services) {
	s.AddResource(
		mcplib.NewResource(
			catalogURI,
			"Naming Catalog",
			mcplib.WithResourceDescription("Naming convention of every file category in effect for the project"),
			mcplib.WithMIMEType("application/json"),
		),
		handleCatalogResource(projectPath, svc),
	)
}

func handleCatalogResource(projectPath string, svc services) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		patterns, err := svc.naming.Patterns(projectPath)
		if err != nil {
			return nil, fmt.Errorf("loading catalog: %w", err)
		}

		data, err := json.MarshalIndent(patterns, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling catalog: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      catalogURI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
