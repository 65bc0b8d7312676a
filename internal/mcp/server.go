// Package mcp exposes the example registry over the Model Context Protocol so
// notebook launchers and assistants can read it without scraping CLI output.
package mcp

import (
	"bytes"
	"context"
	"fmt"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/isopro-labs/isopro-examples/internal/ctxlog"
	"github.com/isopro-labs/isopro-examples/internal/examples"
)

// Server wraps the MCP SDK server with the example registry tools.
type Server struct {
	server *sdk.Server
}

// Config holds server configuration.
type Config struct {
	Name    string // Server name (e.g., "isopro-examples")
	Version string
}

// ListExamplesInput takes no arguments.
type ListExamplesInput struct{}

// ListExamplesOutput is the result of the list_examples tool.
type ListExamplesOutput struct {
	Names   []string `json:"names" jsonschema:"registered example notebook names in display order"`
	Listing string   `json:"listing" jsonschema:"the human-readable listing as printed by the CLI"`
}

// ShowExampleInput selects one example.
type ShowExampleInput struct {
	Name string `json:"name" jsonschema:"example notebook name, e.g. custom_environment_example"`
}

// ShowExampleOutput is the result of the show_example tool.
type ShowExampleOutput struct {
	Example examples.Example `json:"example"`
}

// NewServer creates an MCP server with the registry tools registered.
func NewServer(cfg *Config) *Server {
	s := &Server{
		server: sdk.NewServer(&sdk.Implementation{
			Name:    cfg.Name,
			Version: cfg.Version,
		}, nil),
	}

	sdk.AddTool(s.server, &sdk.Tool{
		Name:        "list_examples",
		Description: "List the available ISOPRO example notebooks",
	}, s.handleListExamples)

	sdk.AddTool(s.server, &sdk.Tool{
		Name:        "show_example",
		Description: "Describe one ISOPRO example notebook",
	}, s.handleShowExample)

	return s
}

// Run serves over stdio until the client disconnects or ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &sdk.StdioTransport{})
}

// Connect serves a single session over t. Used with in-memory transports.
func (s *Server) Connect(ctx context.Context, t sdk.Transport) (*sdk.ServerSession, error) {
	return s.server.Connect(ctx, t, nil)
}

func (s *Server) handleListExamples(ctx context.Context, req *sdk.CallToolRequest, args ListExamplesInput) (*sdk.CallToolResult, ListExamplesOutput, error) {
	var buf bytes.Buffer
	if err := examples.List(&buf); err != nil {
		return nil, ListExamplesOutput{}, err
	}

	available := examples.Available()
	names := make([]string, len(available))
	for i, n := range available {
		names[i] = string(n)
	}

	ctxlog.FromContext(ctx).Debug("served list_examples", "count", len(names))
	return nil, ListExamplesOutput{Names: names, Listing: buf.String()}, nil
}

func (s *Server) handleShowExample(ctx context.Context, req *sdk.CallToolRequest, args ShowExampleInput) (*sdk.CallToolResult, ShowExampleOutput, error) {
	e, err := examples.Lookup(args.Name)
	if err != nil {
		return nil, ShowExampleOutput{}, fmt.Errorf("show_example: %w", err)
	}
	return nil, ShowExampleOutput{Example: e}, nil
}
