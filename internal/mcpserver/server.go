// Package mcpserver exposes C extraction as an MCP tool over stdio.
package mcpserver

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"

	"github.com/mvp-joe/csift/internal/extract"
)

// Server manages the MCP server lifecycle.
type Server struct {
	extractor *extract.Extractor
	cache     *resultCache
	mcp       *server.MCPServer
}

// NewServer creates an MCP server around the given extractor. cacheSize is
// the capacity of the in-memory result cache.
func NewServer(extractor *extract.Extractor, cacheSize int) (*Server, error) {
	if extractor == nil {
		return nil, fmt.Errorf("extractor is required")
	}

	cache, err := newResultCache(cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create result cache: %w", err)
	}

	mcpServer := server.NewMCPServer(
		"csift-mcp",
		"1.0.0",
		server.WithToolCapabilities(true),
	)
	AddExtractTool(mcpServer, extractor, cache)

	return &Server{
		extractor: extractor,
		cache:     cache,
		mcp:       mcpServer,
	}, nil
}

// Serve starts the MCP server on stdio and blocks until shutdown.
func (s *Server) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Starting MCP server on stdio...")
		if err := server.ServeStdio(s.mcp); err != nil {
			errCh <- fmt.Errorf("MCP server error: %w", err)
		}
	}()

	select {
	case <-sigCh:
		log.Printf("Received shutdown signal, stopping gracefully...")
		return nil
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close releases server resources.
func (s *Server) Close() {
	if s.cache != nil {
		s.cache.close()
	}
}
