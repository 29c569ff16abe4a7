// Package bridge registers the operation catalog as MCP tools and wires each
// tool invocation through the transport client. The bridge holds no graph
// state and performs no validation: every call is an independent pass-through
// exchange with the controlled Gephi instance.
package bridge

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/graphbridge/gephi-mcp/internal/catalog"
	"github.com/graphbridge/gephi-mcp/internal/gephi"
	"github.com/graphbridge/gephi-mcp/internal/render"
)

// ServerName identifies the bridge to MCP clients.
const ServerName = "gephi_mcp"

// NewServer builds an MCP server with one tool per catalog entry.
func NewServer(client *gephi.Client, logger *zap.Logger, version string) *server.MCPServer {
	srv := server.NewMCPServer(ServerName, version)

	for _, desc := range catalog.Operations() {
		tool := mcp.NewTool(desc.Name, mcp.WithDescription(desc.Description))
		srv.AddTool(tool, Handler(client, desc, logger))
	}

	return srv
}

// Handler returns the tool handler for one catalog entry. Transport failures
// never surface as handler errors: they are already normalized into the
// rendered result, so the caller branches on the success flag in the text
// rather than on protocol-level errors.
func Handler(client *gephi.Client, desc catalog.Descriptor, logger *zap.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.GetArguments()

		logger.Debug("tool invoked",
			zap.String("operation", desc.Name),
			zap.Int("params", len(args)),
		)

		call := catalog.BuildRequest(desc, args)
		outcome := client.Execute(ctx, call.Method, call.Path, call.Query, call.Body)

		return mcp.NewToolResultText(render.Render(outcome)), nil
	}
}
