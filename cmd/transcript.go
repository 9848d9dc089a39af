package cmd

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/drchandima/youtube-summarizer/internal"
)

// transcriptCmd represents the transcript command
var transcriptCmd = &cobra.Command{
	Use:   "transcript [YouTube URL or ID]",
	Short: "Fetch the transcript of a YouTube video",
	Example: `  # Print the transcript
  youtube-summarizer transcript "https://www.youtube.com/watch?v=tAP1eZYEuKA"
  youtube-summarizer transcript tAP1eZYEuKA

  # Copy the transcript to the clipboard
  youtube-summarizer transcript tAP1eZYEuKA --copy`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		internal.EnsureYTDLP(cmd.Context())
		summarizer := internal.NewDefaultSummarizer(config, log.WithField("component", "pipeline"))

		transcript, err := summarizer.Transcript(cmd.Context(), internal.NormalizeArg(args[0]))
		if err != nil {
			return err
		}

		if copyFlag, _ := cmd.Flags().GetBool("copy"); copyFlag {
			if err := clipboard.WriteAll(transcript); err != nil {
				return fmt.Errorf("copying transcript to clipboard: %w", err)
			}
			fmt.Println("Transcript copied to clipboard")
			return nil
		}

		fmt.Println(transcript)
		return nil
	},
}

func init() {
	transcriptCmd.Flags().Bool("copy", false, "Copy the transcript to the clipboard")
	rootCmd.AddCommand(transcriptCmd)
}
