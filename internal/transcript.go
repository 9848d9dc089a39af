package internal

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// ErrTranscriptUnavailable indicates every transcript source failed or
// returned an empty transcript.
var ErrTranscriptUnavailable = errors.New("transcript unavailable")

// TranscriptSource retrieves a transcript for a video from one external
// provider. Implementations return the raw text in whatever shape the
// provider supplies; the fetcher normalizes it.
type TranscriptSource interface {
	Name() string
	Fetch(ctx context.Context, id VideoID) (string, error)
}

// TranscriptFetcher tries an ordered chain of sources. Each source gets
// exactly one attempt; the first non-empty transcript wins and later sources
// are skipped.
type TranscriptFetcher struct {
	sources []TranscriptSource
	log     *logrus.Entry
}

// NewTranscriptFetcher creates a fetcher over the given sources, tried in
// the order provided.
func NewTranscriptFetcher(log *logrus.Entry, sources ...TranscriptSource) *TranscriptFetcher {
	return &TranscriptFetcher{sources: sources, log: log}
}

// Fetch returns the full transcript text for the video, or
// ErrTranscriptUnavailable once every source has been exhausted.
func (f *TranscriptFetcher) Fetch(ctx context.Context, id VideoID) (string, error) {
	var errs []error
	for _, source := range f.sources {
		text, err := source.Fetch(ctx, id)
		if err != nil {
			f.log.WithError(err).WithFields(logrus.Fields{
				"source":   source.Name(),
				"video_id": id,
			}).Debug("transcript source failed")
			errs = append(errs, fmt.Errorf("%s: %w", source.Name(), err))
			continue
		}

		text = NormalizeTranscript(text)
		if text == "" {
			f.log.WithFields(logrus.Fields{
				"source":   source.Name(),
				"video_id": id,
			}).Debug("transcript source returned empty transcript")
			errs = append(errs, fmt.Errorf("%s: empty transcript", source.Name()))
			continue
		}

		f.log.WithFields(logrus.Fields{
			"source":   source.Name(),
			"video_id": id,
			"length":   len(text),
		}).Info("transcript acquired")
		return text, nil
	}

	return "", fmt.Errorf("%w: %w", ErrTranscriptUnavailable, errors.Join(errs...))
}

// NormalizeTranscript collapses all whitespace runs to single spaces so every
// source yields the same flat-text representation.
func NormalizeTranscript(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
