package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	appconfig "github.com/gdnkit/gdnkit/internal/adapters/outbound/config"
	"github.com/gdnkit/gdnkit/internal/adapters/outbound/parser"
	"github.com/gdnkit/gdnkit/internal/adapters/outbound/store"
	"github.com/gdnkit/gdnkit/internal/adapters/outbound/walker"
	"github.com/gdnkit/gdnkit/internal/application"
	"github.com/gdnkit/gdnkit/internal/domain"
)

// registerTools registers the gdnkit MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string) {
	s.AddTool(
		mcplib.NewTool("gdnkit_scan",
			mcplib.WithDescription("Scan the crate for types deriving NativeClass and return their names as JSON"),
		),
		handleScan(projectPath),
	)

	s.AddTool(
		mcplib.NewTool("gdnkit_generate",
			mcplib.WithDescription("Generate .gdnlib and .gdns descriptor files for the crate and return the written/kept report as JSON"),
			mcplib.WithString("lib_name", mcplib.Description("Library name (default: CARGO_PKG_NAME)")),
			mcplib.WithString("target_dir", mcplib.Description("Build artifact directory (default: CARGO_TARGET_DIR)")),
			mcplib.WithString("output_dir", mcplib.Description("Resource output directory (default: <project>/native)")),
			mcplib.WithString("profile", mcplib.Description("Build profile: debug or release (default: PROFILE)")),
		),
		handleGenerate(projectPath),
	)
}

func newScanService(projectPath string) (*application.ScanService, domain.FileConfig, error) {
	fileCfg, err := appconfig.New().Load(projectPath)
	if err != nil {
		return nil, domain.FileConfig{}, err
	}
	svc := application.NewScanService(
		walker.New(fileCfg.ExcludePaths...),
		parser.New(),
	)
	return svc, fileCfg, nil
}

func handleScan(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		svc, _, err := newScanService(projectPath)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		classes, err := svc.ScanProject(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("scanning failed: %v", err)), nil
		}

		names := make([]string, 0, len(classes))
		for name := range classes {
			names = append(names, name)
		}
		sort.Strings(names)

		return jsonResult(names)
	}
}

func handleGenerate(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		svc, fileCfg, err := newScanService(projectPath)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		classes, err := svc.ScanProject(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("scanning failed: %v", err)), nil
		}

		cfg := domain.Config{
			ProjectRoot:  projectPath,
			LibName:      argOr(request, "lib_name", fileCfg.LibName),
			ArtifactRoot: argOr(request, "target_dir", fileCfg.TargetDir),
			OutputDir:    argOr(request, "output_dir", fileCfg.OutputDir),
			Profile:      argOr(request, "profile", fileCfg.Profile),
		}

		genSvc := application.NewGenerateService(store.New(), nil)
		layout, err := genSvc.ResolveLayout(cfg)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		report, err := genSvc.Generate(layout, classes)
		if err != nil {
			return errorResult(fmt.Sprintf("generation failed: %v", err)), nil
		}

		return jsonResult(report)
	}
}

func argOr(request mcplib.CallToolRequest, key, fallback string) string {
	if v := request.GetString(key, ""); v != "" {
		return v
	}
	return fallback
}

func jsonResult(v any) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult(fmt.Sprintf("encoding result: %v", err)), nil
	}
	return mcplib.NewToolResultText(string(data)), nil
}

func errorResult(msg string) *mcplib.CallToolResult {
	return mcplib.NewToolResultError(msg)
}
