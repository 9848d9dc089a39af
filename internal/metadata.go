package internal

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultOEmbedURL is YouTube's public oEmbed endpoint.
const DefaultOEmbedURL = "https://www.youtube.com/oembed"

// NoDescriptionPlaceholder replaces the description when it cannot be
// fetched.
const NoDescriptionPlaceholder = "No description available"

// VideoMetadata holds best-effort descriptive information about a video.
// Any field may be empty without failing the pipeline.
type VideoMetadata struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Thumbnail   string `json:"thumbnail"`
	Description string `json:"description"`
}

// MetadataFetcher retrieves title/author/thumbnail from the oEmbed endpoint
// and the full description via yt-dlp. It never fails: every lookup error
// degrades to placeholder values.
type MetadataFetcher struct {
	client     *http.Client
	oembedURL  string
	runner     CommandRunner
	timeout    time.Duration
	cmdTimeout time.Duration
	log        *logrus.Entry
}

// NewMetadataFetcher creates a metadata fetcher. The client may be nil, in
// which case http.DefaultClient is used.
func NewMetadataFetcher(client *http.Client, oembedURL string, runner CommandRunner, timeout, cmdTimeout time.Duration, log *logrus.Entry) *MetadataFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	if oembedURL == "" {
		oembedURL = DefaultOEmbedURL
	}
	if runner == nil {
		runner = &DefaultCommandRunner{}
	}
	return &MetadataFetcher{
		client:     client,
		oembedURL:  oembedURL,
		runner:     runner,
		timeout:    timeout,
		cmdTimeout: cmdTimeout,
		log:        log,
	}
}

type oembedResponse struct {
	Title        string `json:"title"`
	AuthorName   string `json:"author_name"`
	ThumbnailURL string `json:"thumbnail_url"`
}

// Fetch returns metadata for the video. Lookup failures are logged and the
// affected fields left at their defaults; the returned value is never nil.
func (f *MetadataFetcher) Fetch(ctx context.Context, videoURL string, id VideoID) *VideoMetadata {
	metadata := &VideoMetadata{Description: NoDescriptionPlaceholder}

	if oembed, err := f.fetchOEmbed(ctx, videoURL); err != nil {
		f.log.WithError(err).WithField("video_id", id).Warn("oEmbed lookup failed")
	} else {
		metadata.Title = oembed.Title
		metadata.Author = oembed.AuthorName
		metadata.Thumbnail = oembed.ThumbnailURL
	}

	if description, err := fetchDescription(ctx, f.runner, id, f.cmdTimeout); err != nil {
		f.log.WithError(err).WithField("video_id", id).Warn("description fetch failed")
	} else if description != "" {
		metadata.Description = description
	}

	return metadata
}

func (f *MetadataFetcher) fetchOEmbed(ctx context.Context, videoURL string) (*oembedResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	lookupURL := f.oembedURL + "?url=" + url.QueryEscape(videoURL) + "&format=json"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building oEmbed request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling oEmbed endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("oEmbed endpoint returned status %d", resp.StatusCode)
	}

	var parsed oembedResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decoding oEmbed response: %w", err)
	}

	return &parsed, nil
}
