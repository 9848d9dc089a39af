package cmd

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/drchandima/youtube-summarizer/internal"
)

// summarizeCmd represents the summarize command
var summarizeCmd = &cobra.Command{
	Use:   "summarize [YouTube URL or ID]",
	Short: "Generate a structured summary for a YouTube video",
	Example: `  # Generate summary from YouTube video
  youtube-summarizer summarize "https://www.youtube.com/watch?v=tAP1eZYEuKA"
  youtube-summarizer summarize tAP1eZYEuKA

  # Print raw markdown instead of rendering
  youtube-summarizer summarize tAP1eZYEuKA --plain

  # Copy the summary to the clipboard
  youtube-summarizer summarize tAP1eZYEuKA --copy`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSummarize(cmd, args[0])
	},
}

// addSummarizeFlags registers the flags shared by the root and summarize
// commands.
func addSummarizeFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("plain", false, "Print raw markdown without terminal rendering")
	cmd.Flags().Bool("copy", false, "Copy the summary to the clipboard")
}

// runSummarize executes the full pipeline for one video and prints the
// result.
func runSummarize(cmd *cobra.Command, arg string) error {
	if err := internal.ValidateGroqAPIKey(config.GroqAPIKey); err != nil {
		return err
	}

	internal.EnsureYTDLP(cmd.Context())
	summarizer := internal.NewDefaultSummarizer(config, log.WithField("component", "pipeline"))

	var spinner interface{ Finish() error }
	if internal.IsTerminal() && !config.Verbose {
		spinner = internal.NewSpinner("Summarizing video...")
	}

	result, err := summarizer.Summarize(cmd.Context(), internal.NormalizeArg(arg))
	if spinner != nil {
		_ = spinner.Finish()
	}
	if err != nil {
		return err
	}

	if copyFlag, _ := cmd.Flags().GetBool("copy"); copyFlag {
		if err := clipboard.WriteAll(result.Summary); err != nil {
			return fmt.Errorf("copying summary to clipboard: %w", err)
		}
		fmt.Println("Summary copied to clipboard")
		return nil
	}

	fmt.Printf("Detected content type: %s\n\n", result.Classification)

	plain, _ := cmd.Flags().GetBool("plain")
	if plain || !internal.IsTerminal() {
		fmt.Println(result.Summary)
		return nil
	}

	rendered, err := internal.RenderMarkdown(result.Summary)
	if err != nil {
		// Rendering is cosmetic; fall back to raw markdown.
		fmt.Println(result.Summary)
		return nil
	}
	fmt.Println(rendered)

	return nil
}

func init() {
	addSummarizeFlags(summarizeCmd)
	rootCmd.AddCommand(summarizeCmd)
}
