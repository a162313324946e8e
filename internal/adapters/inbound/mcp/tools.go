package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/openkraft/docguard/internal/adapters/outbound/backup"
	"github.com/openkraft/docguard/internal/adapters/outbound/config"
	"github.com/openkraft/docguard/internal/adapters/outbound/gitinfo"
	"github.com/openkraft/docguard/internal/adapters/outbound/markdown"
	"github.com/openkraft/docguard/internal/adapters/outbound/scanner"
	"github.com/openkraft/docguard/internal/adapters/outbound/textfile"
	"github.com/openkraft/docguard/internal/application"
)

type services struct {
	naming    *application.NamingService
	fix       *application.FixService
	checklist *application.ChecklistService
}

func newServices(env application.Env) services {
	sc := scanner.New()
	cfg := config.New()
	git := gitinfo.New()
	return services{
		naming:    application.NewNamingService(env, sc, cfg, git),
		fix:       application.NewFixService(env, sc, cfg, git, backup.New()),
		checklist: application.NewChecklistService(env, cfg, markdown.New(), textfile.New()),
	}
}

// registerTools registers all docguard MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string, svc services) {
	// 1. docguard_naming_check
	s.AddTool(
		mcplib.NewTool("docguard_naming_check",
			mcplib.WithDescription("Validate project filenames against the naming conventions and return the report as JSON"),
			mcplib.WithString("file", mcplib.Description("Only check this file, relative to the project root")),
		),
		handleNamingCheck(projectPath, svc),
	)

	// 2. docguard_naming_plan
	s.AddTool(
		mcplib.NewTool("docguard_naming_plan",
			mcplib.WithDescription("Return the rename plan that would fix naming violations. Never renames anything."),
			mcplib.WithString("file", mcplib.Description("Only plan for this file, relative to the project root")),
		),
		handleNamingPlan(projectPath, svc),
	)

	// 3. docguard_docs_check
	s.AddTool(
		mcplib.NewTool("docguard_docs_check",
			mcplib.WithDescription("Check a markdown document against a checklist of required sections and keywords"),
			mcplib.WithString("file",
				mcplib.Required(),
				mcplib.Description("Path of the document, relative to the project root"),
			),
			mcplib.WithString("checklist", mcplib.Description("Checklist name (default: evaluation)")),
		),
		handleDocsCheck(projectPath, svc),
	)

	// 4. docguard_version_next
	s.AddTool(
		mcplib.NewTool("docguard_version_next",
			mcplib.WithDescription("Compute the semantic version that follows a version for a change kind"),
			mcplib.WithString("version", mcplib.Required(), mcplib.Description("Current version, e.g. 1.2.3")),
			mcplib.WithString("change", mcplib.Required(), mcplib.Description("MAJOR, MINOR or PATCH")),
		),
		handleVersionNext(),
	)
}

func handleNamingCheck(projectPath string, svc services) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		file, _ := request.GetArguments()["file"].(string)
		report, err := svc.naming.Check(projectPath, file)
		if err != nil {
			return errorResult(fmt.Sprintf("check failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleNamingPlan(projectPath string, svc services) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		file, _ := request.GetArguments()["file"].(string)
		plan, err := svc.fix.Plan(projectPath, file)
		if err != nil {
			return errorResult(fmt.Sprintf("plan failed: %v", err)), nil
		}
		return jsonResult(plan)
	}
}

func handleDocsCheck(projectPath string, svc services) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		file, err := request.RequireString("file")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		file, err = application.ProjectFile(projectPath, file)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		name, _ := request.GetArguments()["checklist"].(string)
		if name == "" {
			name = "evaluation"
		}
		result, err := svc.checklist.Check(projectPath, file, name)
		if err != nil {
			return errorResult(fmt.Sprintf("check failed: %v", err)), nil
		}
		return jsonResult(result)
	}
}

func handleVersionNext() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		version, err := request.RequireString("version")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		change, err := request.RequireString("change")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		next, err := application.NextVersion(version, change)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(map[string]string{"version": version, "change": change, "next": next})
	}
}

// jsonResult marshals v to JSON and wraps it in a CallToolResult.
func jsonResult(v any) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns an error content result.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
