package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/drchandima/youtube-summarizer/internal"
)

// metadataCmd represents the metadata command
var metadataCmd = &cobra.Command{
	Use:   "metadata [YouTube URL or ID]",
	Short: "Get metadata from a YouTube video",
	Example: `  # Get metadata from YouTube video
  youtube-summarizer metadata "https://www.youtube.com/watch?v=tAP1eZYEuKA"
  youtube-summarizer metadata tAP1eZYEuKA

  # Save metadata to file
  youtube-summarizer metadata tAP1eZYEuKA -o metadata.json

  # Format output as pretty JSON
  youtube-summarizer metadata tAP1eZYEuKA --pretty`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		internal.EnsureYTDLP(cmd.Context())
		summarizer := internal.NewDefaultSummarizer(config, log.WithField("component", "pipeline"))

		metadata, err := summarizer.Metadata(cmd.Context(), internal.NormalizeArg(args[0]))
		if err != nil {
			return err
		}

		var jsonData []byte
		pretty, _ := cmd.Flags().GetBool("pretty")
		if pretty {
			jsonData, err = json.MarshalIndent(metadata, "", "  ")
		} else {
			jsonData, err = json.Marshal(metadata)
		}
		if err != nil {
			return fmt.Errorf("error converting metadata to JSON: %w", err)
		}

		outputFile, _ := cmd.Flags().GetString("output")
		if outputFile != "" {
			return os.WriteFile(outputFile, jsonData, 0o644)
		}

		fmt.Println(string(jsonData))

		return nil
	},
}

func init() {
	metadataCmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
	metadataCmd.Flags().Bool("pretty", false, "Format output as pretty JSON")
	rootCmd.AddCommand(metadataCmd)
}
