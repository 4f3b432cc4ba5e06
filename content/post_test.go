package content

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/airesearchhub/site/pkg/markdown"
	"github.com/stretchr/testify/require"
)

func TestFromDocumentDefaults(t *testing.T) {
	post, err := FromDocument("empty", markdown.Document{Meta: map[string]any{}, Body: ""}, 200)

	require.NoError(t, err)
	require.Equal(t, "empty", post.Slug)
	require.Equal(t, "", post.Title)
	require.Equal(t, "", post.Description)
	require.Equal(t, "", post.Date)
	require.NotNil(t, post.Tags)
	require.Empty(t, post.Tags)
	require.Equal(t, "0 min read", post.ReadingTime)
}

func TestFromDocumentValues(t *testing.T) {
	meta := map[string]any{
		"title":       "Hello",
		"description": "A first post",
		"date":        time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
		"tags":        []any{"ai", nil, 42},
		"draft":       true,
	}

	post, err := FromDocument("hello", markdown.Document{Meta: meta, Body: strings.Repeat("word ", 300)}, 200)

	require.NoError(t, err)
	require.Equal(t, "Hello", post.Title)
	require.Equal(t, "A first post", post.Description)
	require.Equal(t, "2024-03-05", post.Date)
	require.Equal(t, []string{"ai", "42"}, post.Tags)
	require.Equal(t, "2 min read", post.ReadingTime)
}

func TestFromDocumentScalarTags(t *testing.T) {
	post, err := FromDocument("x", markdown.Document{Meta: map[string]any{"tags": "ai, ml"}}, 200)

	require.NoError(t, err)
	require.Equal(t, []string{"ai", "ml"}, post.Tags)
}

func TestFromDocumentDropsBlankTags(t *testing.T) {
	post, err := FromDocument("x", markdown.Document{Meta: map[string]any{"tags": []any{"", "a", "  "}}}, 200)

	require.NoError(t, err)
	require.Equal(t, []string{"a"}, post.Tags)
	require.Equal(t, []string{"a"}, post.FrontMatter().Tags)
}

func TestFromDocumentRejectsWrongShapes(t *testing.T) {
	cases := []map[string]any{
		{"title": map[string]any{"nested": "value"}},
		{"date": []any{"2024-01-01"}},
		{"tags": []any{map[string]any{"a": 1}}},
		{"tags": map[string]any{"a": 1}},
	}

	for _, meta := range cases {
		_, err := FromDocument("bad", markdown.Document{Meta: meta}, 200)

		require.Error(t, err)
		require.True(t, errors.Is(err, markdown.ErrMalformedFrontMatter))
	}
}

func TestPostSourceRoundTrip(t *testing.T) {
	original := Post{
		Slug:        "round-trip",
		Title:       "Round: trip",
		Description: "Checks that metadata survives",
		Date:        "2024-02-29",
		Tags:        []string{"yaml", "go"},
		Content:     "Some body.\n",
	}

	source, err := original.Source()
	require.NoError(t, err)

	doc, err := markdown.Parse(source)
	require.NoError(t, err)

	parsed, err := FromDocument(original.Slug, doc, 200)
	require.NoError(t, err)

	require.Equal(t, original.FrontMatter(), parsed.FrontMatter())
	require.Equal(t, strings.TrimSpace(original.Content), strings.TrimSpace(parsed.Content))
}

func TestPostHasTag(t *testing.T) {
	post := Post{Tags: []string{"Machine Learning"}}

	require.True(t, post.HasTag("machine learning"))
	require.False(t, post.HasTag("nlp"))
}
