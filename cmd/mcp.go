package cmd

import (
	"github.com/spf13/cobra"

	"github.com/drchandima/youtube-summarizer/internal"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start an MCP server exposing the pipeline as tools",
	Long: `Start a Model Context Protocol server exposing summarize_video,
get_video_transcript, and get_video_metadata tools over stdio or HTTP.`,
	Example: `  # Serve over stdio (for MCP clients)
  youtube-summarizer mcp

  # Serve over HTTP on port 8333
  youtube-summarizer mcp --transport http --port 8333`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := internal.ValidateGroqAPIKey(config.GroqAPIKey); err != nil {
			return err
		}

		internal.EnsureYTDLP(cmd.Context())
		summarizer := internal.NewDefaultSummarizer(config, log.WithField("component", "pipeline"))

		transport, _ := cmd.Flags().GetString("transport")
		port, _ := cmd.Flags().GetInt("port")

		server := internal.NewMCPServer(summarizer)
		return server.Start(cmd.Context(), transport, port)
	},
}

func init() {
	mcpCmd.Flags().String("transport", "stdio", "Transport to use (stdio or http)")
	mcpCmd.Flags().Int("port", 8333, "Port for the http transport")
	rootCmd.AddCommand(mcpCmd)
}
