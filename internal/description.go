package internal

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// CommandRunner executes external commands.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// DefaultCommandRunner implements CommandRunner with os/exec. The command is
// killed when the context expires, so a stalled subprocess cannot hang a
// request.
type DefaultCommandRunner struct{}

func (r *DefaultCommandRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	return cmd.Output()
}

// DescriptionSource is the last-resort transcript source: when no captions
// exist anywhere, the video description is often the only text available.
type DescriptionSource struct {
	runner  CommandRunner
	timeout time.Duration
	log     *logrus.Entry
}

// NewDescriptionSource creates the description fallback adapter.
func NewDescriptionSource(runner CommandRunner, timeout time.Duration, log *logrus.Entry) *DescriptionSource {
	if runner == nil {
		runner = &DefaultCommandRunner{}
	}
	return &DescriptionSource{runner: runner, timeout: timeout, log: log}
}

func (s *DescriptionSource) Name() string { return "description" }

// Fetch returns the video description via yt-dlp.
func (s *DescriptionSource) Fetch(ctx context.Context, id VideoID) (string, error) {
	return fetchDescription(ctx, s.runner, id, s.timeout)
}

// fetchDescription runs yt-dlp --get-description with a bounded timeout.
// Shared by the transcript fallback and the metadata fetcher.
func fetchDescription(ctx context.Context, runner CommandRunner, id VideoID, timeout time.Duration) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	output, err := runner.Run(ctx, "yt-dlp", "--skip-download", "--get-description", id.WatchURL())
	if err != nil {
		return "", fmt.Errorf("running yt-dlp: %w", err)
	}

	return strings.TrimSpace(string(output)), nil
}
