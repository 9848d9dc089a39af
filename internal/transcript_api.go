package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultTranscriptAPIURL is the endpoint of the hosted transcript service.
const DefaultTranscriptAPIURL = "https://api.transcriptapi.com/v1/transcript"

// TranscriptAPISource fetches transcripts from the hosted TranscriptAPI
// service. It is the highest-priority source because the service returns
// clean, pre-segmented transcripts.
type TranscriptAPISource struct {
	client  *http.Client
	url     string
	apiKey  string
	timeout time.Duration
	log     *logrus.Entry
}

// NewTranscriptAPISource creates the TranscriptAPI adapter. The client may be
// nil, in which case http.DefaultClient is used.
func NewTranscriptAPISource(client *http.Client, url, apiKey string, timeout time.Duration, log *logrus.Entry) *TranscriptAPISource {
	if client == nil {
		client = http.DefaultClient
	}
	if url == "" {
		url = DefaultTranscriptAPIURL
	}
	return &TranscriptAPISource{client: client, url: url, apiKey: apiKey, timeout: timeout, log: log}
}

func (s *TranscriptAPISource) Name() string { return "transcriptapi" }

type transcriptAPIRequest struct {
	VideoID string `json:"video_id"`
	Wait    bool   `json:"wait"`
}

type transcriptAPIResponse struct {
	Transcript []transcriptAPISegment `json:"transcript"`
}

type transcriptAPISegment struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// Fetch posts the video ID to the service and joins the returned segments in
// order with single spaces.
func (s *TranscriptAPISource) Fetch(ctx context.Context, id VideoID) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("no API key configured")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	body, err := json.Marshal(transcriptAPIRequest{VideoID: id.String(), Wait: true})
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling transcript service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("transcript service returned status %d", resp.StatusCode)
	}

	var parsed transcriptAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decoding transcript response: %w", err)
	}

	var sb strings.Builder
	for i, segment := range parsed.Transcript {
		if segment.Text == "" {
			continue
		}
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(segment.Text)
	}

	return sb.String(), nil
}
