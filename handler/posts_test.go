package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/airesearchhub/site/handler/payload"
)

var blog = map[string]string{
	"hello.mdx": "---\ntitle: Hello\ndate: \"2024-01-01\"\ntags: [go]\n---\n# Hello\n\nSee [docs](https://go.dev).",
	"later.mdx": "---\ntitle: Later\ndate: \"2024-06-01\"\ntags: [ai]\n---\nbody",
}

func TestPostsHandlerIndex(t *testing.T) {
	h := makePostsHandler(t, blog)

	rec := httptest.NewRecorder()

	if err := h.Index(rec, httptest.NewRequest("GET", "/posts", nil)); err != nil {
		t.Fatalf("index err: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}

	envelope := decodeEnvelope[[]payload.PostResponse](t, rec)

	if len(envelope.Data) != 2 || envelope.Data[0].Slug != "later" || envelope.Data[1].Slug != "hello" {
		t.Fatalf("unexpected listing %#v", envelope.Data)
	}

	if rec.Header().Get("ETag") != `"`+envelope.Version+`"` {
		t.Fatalf("expected etag to carry the version, got %s", rec.Header().Get("ETag"))
	}
}

func TestPostsHandlerIndexFiltersByTag(t *testing.T) {
	h := makePostsHandler(t, blog)

	rec := httptest.NewRecorder()

	if err := h.Index(rec, httptest.NewRequest("GET", "/posts?tag=GO", nil)); err != nil {
		t.Fatalf("index err: %v", err)
	}

	envelope := decodeEnvelope[[]payload.PostResponse](t, rec)

	if len(envelope.Data) != 1 || envelope.Data[0].Slug != "hello" {
		t.Fatalf("unexpected filtered listing %#v", envelope.Data)
	}
}

func TestPostsHandlerIndexEmptyStore(t *testing.T) {
	h := makePostsHandler(t, nil)

	rec := httptest.NewRecorder()

	if err := h.Index(rec, httptest.NewRequest("GET", "/posts", nil)); err != nil {
		t.Fatalf("index err: %v", err)
	}

	if !strings.Contains(rec.Body.String(), `"data":[]`) {
		t.Fatalf("expected an empty list, got %s", rec.Body.String())
	}
}

func TestPostsHandlerIndexNotModified(t *testing.T) {
	h := makePostsHandler(t, blog)

	first := httptest.NewRecorder()
	h.Index(first, httptest.NewRequest("GET", "/posts", nil))

	req := httptest.NewRequest("GET", "/posts", nil)
	req.Header.Set("If-None-Match", first.Header().Get("ETag"))

	rec := httptest.NewRecorder()

	if err := h.Index(rec, req); err != nil {
		t.Fatalf("index err: %v", err)
	}

	if rec.Code != http.StatusNotModified {
		t.Fatalf("status %d", rec.Code)
	}
}

func TestPostsHandlerShow(t *testing.T) {
	h := makePostsHandler(t, blog)

	req := httptest.NewRequest("GET", "/posts/hello", nil)
	req.SetPathValue("slug", "hello")

	rec := httptest.NewRecorder()

	if err := h.Show(rec, req); err != nil {
		t.Fatalf("show err: %v", err)
	}

	envelope := decodeEnvelope[payload.PostDetailResponse](t, rec)

	if envelope.Data.Title != "Hello" || envelope.Data.Date != "2024-01-01" {
		t.Fatalf("unexpected post %#v", envelope.Data)
	}

	if !strings.Contains(envelope.Data.HTML, `target="_blank"`) || !strings.Contains(envelope.Data.HTML, `class="heading-1"`) {
		t.Fatalf("expected rendered html, got %s", envelope.Data.HTML)
	}
}

func TestPostsHandlerShowMissing(t *testing.T) {
	h := makePostsHandler(t, blog)

	req := httptest.NewRequest("GET", "/posts/missing", nil)
	req.SetPathValue("slug", "missing")

	err := h.Show(httptest.NewRecorder(), req)

	if err == nil || err.Status != http.StatusNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestPostsHandlerShowMissingSlug(t *testing.T) {
	h := makePostsHandler(t, blog)

	err := h.Show(httptest.NewRecorder(), httptest.NewRequest("GET", "/posts/", nil))

	if err == nil || err.Status != http.StatusBadRequest {
		t.Fatalf("expected bad request, got %v", err)
	}
}

func TestPostsHandlerShowMalformed(t *testing.T) {
	h := makePostsHandler(t, map[string]string{"broken.mdx": "---\ntitle: [unclosed\n---\nbody"})

	req := httptest.NewRequest("GET", "/posts/broken", nil)
	req.SetPathValue("slug", "broken")

	err := h.Show(httptest.NewRecorder(), req)

	if err == nil || err.Status != http.StatusInternalServerError {
		t.Fatalf("expected internal error, got %v", err)
	}
}
