package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/drchandima/youtube-summarizer/internal"
)

var (
	config *internal.Config
	log    *logrus.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "youtube-summarizer [YouTube URL or ID]",
	Short: "Category-aware YouTube video summarizer",
	Long: `youtube-summarizer turns a YouTube video into a structured summary.

It resolves the video ID, acquires a transcript through a chain of fallback
sources (transcript service, captions, description), classifies the content
into one of four categories, and generates a category-specific markdown
summary using Groq's language models.

Run it with a URL for a one-shot summary, or start the HTTP API with the
serve command.`,
	Example: `  # Summarize a YouTube video (default behavior)
  youtube-summarizer "https://www.youtube.com/watch?v=tAP1eZYEuKA"
  youtube-summarizer tAP1eZYEuKA

  # Start the HTTP API
  youtube-summarizer serve

  # Copy the summary to the clipboard
  youtube-summarizer summarize tAP1eZYEuKA --copy`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return runSummarize(cmd, args[0])
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	// Create a cancellable context for the entire application
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load a local .env before viper reads the environment
	_ = godotenv.Load()

	config = internal.InitConfig()
	log = internal.NewLogger(config.Verbose)

	if err := internal.EnsureDirs(config.ConfigDir, config.CacheDir); err != nil {
		log.WithError(err).Error("creating XDG directories")
		os.Exit(1)
	}

	if err := internal.EnsureDefaultConfig(config.ConfigDir); err != nil {
		log.WithError(err).Warn("failed to ensure default config")
	}

	// Set up signal handling for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		log.Info("received interrupt signal, shutting down")
		cancel()
	}()

	rootCmd.SetContext(ctx)

	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for debugging")
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		verbose, err := cmd.Flags().GetBool("verbose")
		if err != nil {
			return err
		}
		if verbose {
			config.Verbose = true
			log.SetLevel(logrus.DebugLevel)
		}
		return nil
	}

	addSummarizeFlags(rootCmd)
}
