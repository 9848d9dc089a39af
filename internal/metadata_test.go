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

func TestMetadataFetcherSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "json", r.URL.Query().Get("format"))
		require.NotEmpty(t, r.URL.Query().Get("url"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"title":"Bread Baking 101","author_name":"The Baker","thumbnail_url":"https://img.example/t.jpg"}`))
	}))
	defer srv.Close()

	runner := &fakeRunner{output: []byte("full description text\n")}
	fetcher := NewMetadataFetcher(srv.Client(), srv.URL, runner, time.Second, time.Second, testLogEntry())

	metadata := fetcher.Fetch(context.Background(), "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ")
	require.NotNil(t, metadata)
	assert.Equal(t, "Bread Baking 101", metadata.Title)
	assert.Equal(t, "The Baker", metadata.Author)
	assert.Equal(t, "https://img.example/t.jpg", metadata.Thumbnail)
	assert.Equal(t, "full description text", metadata.Description)
}

func TestMetadataFetcherDegradesOnFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	runner := &fakeRunner{err: context.DeadlineExceeded}
	fetcher := NewMetadataFetcher(srv.Client(), srv.URL, runner, time.Second, time.Second, testLogEntry())

	metadata := fetcher.Fetch(context.Background(), "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ")
	require.NotNil(t, metadata, "metadata fetch must never fail the pipeline")
	assert.Empty(t, metadata.Title)
	assert.Empty(t, metadata.Author)
	assert.Equal(t, NoDescriptionPlaceholder, metadata.Description)
}

func TestMetadataFetcherPartialDegradation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"title":"Known Title","author_name":"Known Author"}`))
	}))
	defer srv.Close()

	runner := &fakeRunner{err: context.DeadlineExceeded}
	fetcher := NewMetadataFetcher(srv.Client(), srv.URL, runner, time.Second, time.Second, testLogEntry())

	metadata := fetcher.Fetch(context.Background(), "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ")
	assert.Equal(t, "Known Title", metadata.Title)
	assert.Equal(t, NoDescriptionPlaceholder, metadata.Description)
}
