package handler

import (
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/airesearchhub/site/content"
	"github.com/airesearchhub/site/pkg/markdown"
)

type testEnvelope[T any] struct {
	Version string `json:"version"`
	Data    T      `json:"data"`
}

func makePostsRepo(t *testing.T, files map[string]string) *content.Posts {
	t.Helper()

	dir := t.TempDir()

	for name, text := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(text), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	return &content.Posts{
		Store:          content.NewStore(dir, ".mdx"),
		WordsPerMinute: 200,
	}
}

func makePostsHandler(t *testing.T, files map[string]string) PostsHandler {
	t.Helper()

	return NewPostsHandler(makePostsRepo(t, files), markdown.NewRenderer())
}

func decodeEnvelope[T any](t *testing.T, rec *httptest.ResponseRecorder) testEnvelope[T] {
	t.Helper()

	var envelope testEnvelope[T]

	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}

	return envelope
}
