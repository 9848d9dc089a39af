package internal

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidVideoURL indicates the input did not contain a recognizable
// YouTube video reference.
var ErrInvalidVideoURL = errors.New("invalid YouTube URL")

// VideoID is a canonical 11-character YouTube video identifier.
type VideoID string

var videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// Valid reports whether the ID has the canonical 11-character shape.
func (id VideoID) Valid() bool {
	return videoIDPattern.MatchString(string(id))
}

func (id VideoID) String() string { return string(id) }

// WatchURL returns the canonical watch URL for the ID.
func (id VideoID) WatchURL() string {
	return "https://www.youtube.com/watch?v=" + string(id)
}

// videoURLPattern matches the supported YouTube URL shapes: canonical watch
// URLs with a v parameter, youtu.be short links, and embed/v/e paths.
var videoURLPattern = regexp.MustCompile(
	`(?:youtube\.com/(?:[^/\s]+/\S+/|(?:v|e(?:mbed)?)/|\S*?[?&]v=)|youtu\.be/)([A-Za-z0-9_-]{11})`)

// ExtractVideoID resolves a raw URL string to a VideoID. It matches against
// the supported URL shapes only; unrecognized input fails rather than
// guessing.
func ExtractVideoID(rawURL string) (VideoID, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return "", ErrInvalidVideoURL
	}

	matches := videoURLPattern.FindStringSubmatch(rawURL)
	if matches == nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidVideoURL, rawURL)
	}

	id := VideoID(matches[1])
	if !id.Valid() {
		return "", fmt.Errorf("%w: %s", ErrInvalidVideoURL, rawURL)
	}
	return id, nil
}

// NormalizeArg accepts either a URL or a bare video ID from the command line
// and returns a URL the pipeline can consume.
func NormalizeArg(arg string) string {
	arg = strings.TrimSpace(arg)
	if VideoID(arg).Valid() {
		return VideoID(arg).WatchURL()
	}
	return arg
}
