package internal

import (
	"context"
	"net/http"
	"sync"

	"github.com/sirupsen/logrus"
)

// PipelineResult is the terminal object returned to the caller. It is
// constructed per request and never persisted.
type PipelineResult struct {
	Classification Category       `json:"classification"`
	Summary        string         `json:"summary"`
	VideoMetadata  *VideoMetadata `json:"videoMetadata,omitempty"`
	VideoURL       string         `json:"videoUrl"`
}

// Summarizer runs the full pipeline: resolve the video reference, acquire a
// transcript through the fallback chain, classify it, and format a
// category-specific summary. Metadata is fetched concurrently since nothing
// downstream depends on it.
type Summarizer struct {
	transcripts *TranscriptFetcher
	metadata    *MetadataFetcher
	classifier  *Classifier
	formatter   *Formatter
	log         *logrus.Entry
}

// NewSummarizer wires the pipeline components into a Summarizer.
func NewSummarizer(transcripts *TranscriptFetcher, metadata *MetadataFetcher, classifier *Classifier, formatter *Formatter, log *logrus.Entry) *Summarizer {
	return &Summarizer{
		transcripts: transcripts,
		metadata:    metadata,
		classifier:  classifier,
		formatter:   formatter,
		log:         log,
	}
}

// NewDefaultSummarizer builds a Summarizer with the production adapters:
// TranscriptAPI, yt-dlp captions, and the description fallback, in that
// order.
func NewDefaultSummarizer(config *Config, log *logrus.Entry) *Summarizer {
	runner := &DefaultCommandRunner{}
	httpClient := &http.Client{}
	completer := NewGroqClient(config.GroqAPIKey, config.GroqBaseURL, config.Model, config.LLMTimeout)

	sources := []TranscriptSource{
		NewTranscriptAPISource(httpClient, config.TranscriptAPIURL, config.TranscriptAPIKey, config.TranscriptTimeout, log),
		NewCaptionSource(config.CacheDir, config.TranscriptTimeout, log),
		NewDescriptionSource(runner, config.SubprocessTimeout, log),
	}

	return NewSummarizer(
		NewTranscriptFetcher(log, sources...),
		NewMetadataFetcher(httpClient, config.OEmbedURL, runner, config.MetadataTimeout, config.SubprocessTimeout, log),
		NewClassifier(completer, log),
		NewFormatter(completer, log),
		log,
	)
}

// Summarize processes one video URL end to end. It returns
// ErrInvalidVideoURL or ErrTranscriptUnavailable for caller mistakes; all
// other degradations are absorbed into the result.
func (s *Summarizer) Summarize(ctx context.Context, videoURL string) (*PipelineResult, error) {
	id, err := ExtractVideoID(videoURL)
	if err != nil {
		return nil, err
	}

	// Metadata has no data dependency on the rest of the pipeline and is
	// joined before assembly.
	var metadata *VideoMetadata
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		metadata = s.metadata.Fetch(ctx, videoURL, id)
	}()

	transcript, err := s.transcripts.Fetch(ctx, id)
	if err != nil {
		wg.Wait()
		return nil, err
	}

	category := s.classifier.Classify(ctx, transcript)
	summary := s.formatter.Format(ctx, category, transcript)

	wg.Wait()

	return &PipelineResult{
		Classification: category,
		Summary:        summary,
		VideoMetadata:  metadata,
		VideoURL:       videoURL,
	}, nil
}

// Transcript exposes the transcript acquisition stage on its own, for the
// CLI and MCP surfaces.
func (s *Summarizer) Transcript(ctx context.Context, videoURL string) (string, error) {
	id, err := ExtractVideoID(videoURL)
	if err != nil {
		return "", err
	}
	return s.transcripts.Fetch(ctx, id)
}

// Metadata exposes the metadata stage on its own.
func (s *Summarizer) Metadata(ctx context.Context, videoURL string) (*VideoMetadata, error) {
	id, err := ExtractVideoID(videoURL)
	if err != nil {
		return nil, err
	}
	return s.metadata.Fetch(ctx, videoURL, id), nil
}
