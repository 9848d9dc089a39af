package internal

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lrstanley/go-ytdlp"
	"github.com/sirupsen/logrus"
)

// EnsureYTDLP makes sure a yt-dlp binary is available, downloading one if
// necessary.
func EnsureYTDLP(ctx context.Context) {
	ytdlp.MustInstall(ctx, nil)
}

// CaptionSource scrapes YouTube captions (manual or auto-generated) using
// yt-dlp and converts them to flat transcript text.
type CaptionSource struct {
	cacheDir string
	timeout  time.Duration
	log      *logrus.Entry
}

// NewCaptionSource creates the caption-scraping adapter. Subtitle files are
// written to a per-request directory under cacheDir and removed afterwards.
func NewCaptionSource(cacheDir string, timeout time.Duration, log *logrus.Entry) *CaptionSource {
	return &CaptionSource{cacheDir: cacheDir, timeout: timeout, log: log}
}

func (s *CaptionSource) Name() string { return "captions" }

// Fetch downloads English subtitles for the video and extracts their text.
func (s *CaptionSource) Fetch(ctx context.Context, id VideoID) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := os.MkdirAll(s.cacheDir, 0o755); err != nil {
		return "", fmt.Errorf("creating cache directory: %w", err)
	}
	workDir, err := os.MkdirTemp(s.cacheDir, id.String()+"-*")
	if err != nil {
		return "", fmt.Errorf("creating subtitle directory: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(workDir); err != nil {
			s.log.WithError(err).Warn("failed to remove subtitle directory")
		}
	}()

	dl := ytdlp.New().
		WriteSubs().
		WriteAutoSubs().
		SubLangs("en").
		ConvertSubs("srt").
		SkipDownload().
		Output(filepath.Join(workDir, "%(id)s"))

	result, err := dl.Run(ctx, id.WatchURL())
	if err != nil {
		if result != nil {
			s.log.WithField("stderr", result.Stderr).Debug("subtitle download failed")
		}
		return "", fmt.Errorf("downloading subtitles: %w", err)
	}

	pattern := filepath.Join(workDir, id.String()+"*.srt")
	files, err := filepath.Glob(pattern)
	if err != nil || len(files) == 0 {
		return "", fmt.Errorf("no subtitle files found after download")
	}

	content, err := os.ReadFile(files[0])
	if err != nil {
		return "", fmt.Errorf("reading subtitle file: %w", err)
	}

	return SubtitleText(string(content)), nil
}

// SubtitleText converts SRT content to flat transcript text, dropping
// sequence numbers and timestamps and collapsing the repeated lines that
// auto-generated captions produce.
func SubtitleText(srt string) string {
	lines := parseSRT(srt)
	return strings.Join(removeDuplicateLines(lines), " ")
}

// parseSRT extracts text content from SRT format.
func parseSRT(content string) []string {
	var lines []string

	for block := range strings.SplitSeq(content, "\n\n") {
		blockLines := strings.Split(block, "\n")
		if len(blockLines) >= 3 {
			// Skip sequence number and timestamp, keep text lines.
			for i := 2; i < len(blockLines); i++ {
				if strings.TrimSpace(blockLines[i]) != "" {
					lines = append(lines, strings.TrimSpace(blockLines[i]))
				}
			}
		}
	}

	return lines
}

// removeDuplicateLines eliminates consecutive repeated lines.
func removeDuplicateLines(lines []string) []string {
	result := make([]string, 0, len(lines))
	prevLine := ""

	for _, line := range lines {
		isDuplicate := prevLine != "" && (strings.Contains(line, prevLine) || strings.Contains(prevLine, line))
		if !isDuplicate {
			result = append(result, line)
		}
		prevLine = line
	}

	return result
}
