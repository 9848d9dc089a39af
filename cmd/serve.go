package cmd

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/drchandima/youtube-summarizer/internal"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP summarization API",
	Long: `Start an HTTP server exposing the summarization pipeline.

POST /api/summarize with a JSON body {"videoUrl": "..."} returns the
classification, the structured summary, and best-effort video metadata.`,
	Example: `  # Start the API on the configured address (default :8080)
  youtube-summarizer serve

  # Listen on a different address
  youtube-summarizer serve --addr :9090`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := internal.ValidateGroqAPIKey(config.GroqAPIKey); err != nil {
			return err
		}

		internal.EnsureYTDLP(cmd.Context())

		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			config.ListenAddr = addr
		}

		summarizer := internal.NewDefaultSummarizer(config, log.WithField("component", "pipeline"))
		router := internal.NewRouter(summarizer, log)

		srv := &http.Server{
			Addr:              config.ListenAddr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		}

		// Shut the server down when the root context is cancelled.
		go func() {
			<-cmd.Context().Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.WithError(err).Error("server shutdown error")
			}
		}()

		log.WithField("addr", config.ListenAddr).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
