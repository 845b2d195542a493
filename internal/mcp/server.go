// ABOUTME: MCP server setup for the hoops roster store.
// ABOUTME: Wraps the MCP server with a Store-backed in-memory roster.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/harperreed/hoops/internal/roster"
	"github.com/harperreed/hoops/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with storage access. The roster loads
// once at startup and every mutating tool saves it back, so the store
// always holds the last completed operation.
type Server struct {
	mcpServer *mcp.Server
	store     storage.Store
	roster    *roster.Roster
}

// NewServer creates a new MCP server over the given store. A store
// that has never been saved starts the session with an empty roster.
func NewServer(st storage.Store) (*Server, error) {
	r, err := st.Load()
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load roster: %w", err)
		}
		r = roster.New()
	}

	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "hoops",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		store:     st,
		roster:    r,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// save persists the roster after a mutating tool call.
func (s *Server) save() error {
	if err := s.store.Save(s.roster); err != nil {
		return fmt.Errorf("save roster: %w", err)
	}
	return nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
