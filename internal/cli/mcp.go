package cli

import (
	"github.com/spf13/cobra"

	"github.com/mvp-joe/csift/internal/mcpserver"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve C extraction as an MCP tool over stdio",
	Args:  cobra.NoArgs,
	RunE:  runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	srv, err := mcpserver.NewServer(newExtractor(), cfg.Scan.CacheSize)
	if err != nil {
		return err
	}
	defer srv.Close()

	return srv.Serve(cmd.Context())
}
