package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/ports"
	"github.com/aretw0/turing/pkg/runner"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// TableURI is the resource exposing the transition rules.
const TableURI = "turing://table"

// Server wraps a Simulator and exposes it as an MCP Server.
type Server struct {
	engine    ports.Simulator
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(engine ports.Simulator) *Server {
	s := &Server{
		engine:    engine,
		mcpServer: server.NewMCPServer("turing-mcp", strings.TrimSpace(turing.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	// TOOL: unary_add
	addTool := mcp.NewTool("unary_add",
		mcp.WithDescription("Add two unary numbers on a Turing machine and return the full execution trace."),
		mcp.WithString("a", mcp.Required(), mcp.Description(operandDescription("First"))),
		mcp.WithString("b", mcp.Required(), mcp.Description(operandDescription("Second"))),
		mcp.WithOutputSchema[domain.Result](),
	)
	s.mcpServer.AddTool(addTool, mcp.NewStructuredToolHandler(s.handleUnaryAdd))
}

func operandDescription(position string) string {
	return position + " operand: a run of '1' characters (empty is zero), or a non-negative integer count such as 3"
}

func (s *Server) handleUnaryAdd(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (domain.Result, error) {
	// Round-trip through the wire request so counts and unary strings are both accepted.
	raw, err := json.Marshal(args)
	if err != nil {
		return domain.Result{}, fmt.Errorf("invalid arguments: %w", err)
	}
	var req runner.Request
	if err := json.Unmarshal(raw, &req); err != nil {
		return domain.Result{}, fmt.Errorf("invalid arguments: %w", err)
	}

	a, b, err := req.Operands()
	if err != nil {
		return domain.Result{}, err
	}

	res, err := s.engine.Run(ctx, a, b)
	if err != nil {
		return domain.Result{}, fmt.Errorf("run failed: %w", err)
	}
	if err := res.Err(); err != nil {
		return domain.Result{}, err
	}
	return *res, nil
}

func (s *Server) registerResources() {
	// EXPOSE: turing://table
	s.mcpServer.AddResource(mcp.NewResource(TableURI, "Transition Table",
		mcp.WithMIMEType("application/json"),
	), s.readTable)
}

func (s *Server) readTable(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	jsonBytes, err := json.Marshal(s.engine.Table())
	if err != nil {
		return nil, fmt.Errorf("failed to encode table: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      TableURI,
			MIMEType: "application/json",
			Text:     string(jsonBytes),
		},
	}, nil
}
