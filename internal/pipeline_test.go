package internal

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestSummarizer wires a Summarizer from fakes plus an httptest oEmbed
// endpoint.
func newTestSummarizer(t *testing.T, completer ChatCompleter, oembedHandler http.HandlerFunc, sources ...TranscriptSource) *Summarizer {
	t.Helper()

	if oembedHandler == nil {
		oembedHandler = func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"title":"Test Video","author_name":"Test Channel","thumbnail_url":"https://img.example/t.jpg"}`))
		}
	}
	srv := httptest.NewServer(oembedHandler)
	t.Cleanup(srv.Close)

	runner := &fakeRunner{output: []byte("a description")}
	entry := testLogEntry()

	return NewSummarizer(
		NewTranscriptFetcher(entry, sources...),
		NewMetadataFetcher(srv.Client(), srv.URL, runner, time.Second, time.Second, entry),
		NewClassifier(completer, entry),
		NewFormatter(completer, entry),
		entry,
	)
}

func TestSummarizeRecipeEndToEnd(t *testing.T) {
	transcript := "Preheat oven to 350F. Mix flour and sugar. Bake 20 minutes."
	completer := &fakeCompleter{replies: []string{
		"Recipe / Cooking",
		"🍳 **Recipe Summary**\n\n**📋 Ingredients:**\n- flour\n- sugar\n\n**👨‍🍳 Cooking Steps:**\n1. Preheat oven to 350F\n2. Mix flour and sugar\n3. Bake 20 minutes",
	}}
	source := &fakeSource{name: "captions", text: transcript}
	summarizer := newTestSummarizer(t, completer, nil, source)

	result, err := summarizer.Summarize(context.Background(), "https://www.youtube.com/watch?v=dQw4w9WgXcQ")
	require.NoError(t, err)

	assert.Equal(t, CategoryRecipe, result.Classification)
	assert.Contains(t, result.Summary, "Ingredients")
	assert.Contains(t, result.Summary, "1. Preheat oven")
	assert.NotContains(t, result.Summary, "Difficulty", "no difficulty was stated in the source")
	assert.Equal(t, "https://www.youtube.com/watch?v=dQw4w9WgXcQ", result.VideoURL)

	require.NotNil(t, result.VideoMetadata)
	assert.Equal(t, "Test Video", result.VideoMetadata.Title)

	// Classify then format: exactly two generative calls.
	require.Equal(t, 2, completer.callCount())
	assert.Equal(t, 0.0, completer.requests[0].Temperature)
	assert.Equal(t, 0.5, completer.requests[1].Temperature)
}

func TestSummarizeInvalidURLMakesNoExternalCalls(t *testing.T) {
	completer := &fakeCompleter{replies: []string{"Miscellaneous"}}
	source := &fakeSource{name: "captions", text: "whatever"}
	summarizer := newTestSummarizer(t, completer, nil, source)

	_, err := summarizer.Summarize(context.Background(), "https://example.com/not-a-video")
	assert.ErrorIs(t, err, ErrInvalidVideoURL)
	assert.Equal(t, 0, source.calls)
	assert.Equal(t, 0, completer.callCount())
}

func TestSummarizeNoTranscriptMakesNoGenerativeCalls(t *testing.T) {
	completer := &fakeCompleter{replies: []string{"Miscellaneous"}}
	empty := &fakeSource{name: "empty", text: ""}
	failing := &fakeSource{name: "failing", err: context.DeadlineExceeded}
	summarizer := newTestSummarizer(t, completer, nil, empty, failing)

	_, err := summarizer.Summarize(context.Background(), "https://youtu.be/dQw4w9WgXcQ")
	assert.ErrorIs(t, err, ErrTranscriptUnavailable)
	assert.Equal(t, 0, completer.callCount(), "generative calls must not happen without a transcript")
}

func TestSummarizeSucceedsWhenMetadataFails(t *testing.T) {
	completer := &fakeCompleter{replies: []string{
		"Lecture / Educational",
		"📚 **Lecture Notes Summary**",
	}}
	source := &fakeSource{name: "captions", text: "today we discuss photosynthesis"}
	failingOEmbed := func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}
	summarizer := newTestSummarizer(t, completer, failingOEmbed, source)

	result, err := summarizer.Summarize(context.Background(), "https://youtu.be/dQw4w9WgXcQ")
	require.NoError(t, err, "metadata failure must not abort the pipeline")

	assert.Equal(t, CategoryLecture, result.Classification)
	assert.NotEmpty(t, result.Summary)
	require.NotNil(t, result.VideoMetadata)
	assert.Empty(t, result.VideoMetadata.Title)
}

func TestSummarizeFormatterFailureDegrades(t *testing.T) {
	completer := &fakeCompleter{replies: []string{"Tutorial / How-to", ""}}
	source := &fakeSource{name: "captions", text: "step one do the thing"}
	summarizer := newTestSummarizer(t, completer, nil, source)

	result, err := summarizer.Summarize(context.Background(), "https://youtu.be/dQw4w9WgXcQ")
	require.NoError(t, err, "formatting failure degrades, it does not abort")
	assert.Equal(t, CategoryTutorial, result.Classification)
	assert.Equal(t, "Could not generate summary.", result.Summary)
}
