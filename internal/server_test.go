package internal

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, summarizer *Summarizer) http.Handler {
	t.Helper()
	return NewRouter(summarizer, testLogger())
}

func postSummarize(t *testing.T, handler http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/summarize", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestHandleSummarizeSuccess(t *testing.T) {
	completer := &fakeCompleter{replies: []string{
		"Recipe / Cooking",
		"🍳 **Recipe Summary**",
	}}
	source := &fakeSource{name: "captions", text: "mix flour and sugar"}
	summarizer := newTestSummarizer(t, completer, nil, source)
	handler := newTestRouter(t, summarizer)

	w := postSummarize(t, handler, `{"videoUrl":"https://www.youtube.com/watch?v=dQw4w9WgXcQ"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Classification string `json:"classification"`
		Summary        string `json:"summary"`
		VideoMetadata  *struct {
			Title string `json:"title"`
		} `json:"videoMetadata"`
		VideoURL string `json:"videoUrl"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "Recipe / Cooking", resp.Classification)
	assert.Equal(t, "🍳 **Recipe Summary**", resp.Summary)
	require.NotNil(t, resp.VideoMetadata)
	assert.Equal(t, "Test Video", resp.VideoMetadata.Title)
	assert.Equal(t, "https://www.youtube.com/watch?v=dQw4w9WgXcQ", resp.VideoURL)
}

func TestHandleSummarizeMissingURL(t *testing.T) {
	summarizer := newTestSummarizer(t, &fakeCompleter{}, nil, &fakeSource{name: "unused"})
	handler := newTestRouter(t, summarizer)

	for _, body := range []string{"", "{}", `{"videoUrl":""}`, "not json"} {
		w := postSummarize(t, handler, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %q", body)
		assert.Contains(t, w.Body.String(), "YouTube URL is required")
	}
}

func TestHandleSummarizeInvalidURL(t *testing.T) {
	completer := &fakeCompleter{}
	source := &fakeSource{name: "captions", text: "text"}
	summarizer := newTestSummarizer(t, completer, nil, source)
	handler := newTestRouter(t, summarizer)

	w := postSummarize(t, handler, `{"videoUrl":"https://example.com/nope"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid YouTube URL")
	assert.Equal(t, 0, source.calls)
	assert.Equal(t, 0, completer.callCount())
}

func TestHandleSummarizeTranscriptUnavailable(t *testing.T) {
	completer := &fakeCompleter{}
	source := &fakeSource{name: "captions", text: ""}
	summarizer := newTestSummarizer(t, completer, nil, source)
	handler := newTestRouter(t, summarizer)

	w := postSummarize(t, handler, `{"videoUrl":"https://youtu.be/dQw4w9WgXcQ"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Could not fetch a transcript")
	assert.Equal(t, 0, completer.callCount())
}

func TestHandleSummarizeMethodNotAllowed(t *testing.T) {
	summarizer := newTestSummarizer(t, &fakeCompleter{}, nil, &fakeSource{name: "unused"})
	handler := newTestRouter(t, summarizer)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		req := httptest.NewRequest(method, "/api/summarize", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code, "method %s", method)
		assert.Contains(t, w.Body.String(), "Method Not Allowed")
	}
}

func TestHealthEndpoint(t *testing.T) {
	summarizer := newTestSummarizer(t, &fakeCompleter{}, nil, &fakeSource{name: "unused"})
	handler := newTestRouter(t, summarizer)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
