package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/isopro-labs/isopro-examples/internal/branding"
	"github.com/isopro-labs/isopro-examples/internal/ctxlog"
	"github.com/isopro-labs/isopro-examples/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the example registry over MCP (stdio)",
	Long: `Run a Model Context Protocol server on stdin/stdout exposing the
list_examples and show_example tools.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logger := ctxlog.FromContext(ctx)
		logger.Debug("starting MCP server", "version", buildVersion)

		server := mcp.NewServer(&mcp.Config{
			Name:    branding.CLIName(),
			Version: buildVersion,
		})
		err := server.Run(ctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
