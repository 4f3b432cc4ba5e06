package content

import (
	"cmp"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/airesearchhub/site/metal/env"
	"github.com/airesearchhub/site/pkg/markdown"
	"github.com/airesearchhub/site/pkg/portal"
)

// Posts reads blog posts straight from the store. Nothing is cached: every
// call scans and parses the files again.
type Posts struct {
	Store          Store
	WordsPerMinute int
}

type TagCount struct {
	Name  string
	Count int
}

func MakePosts(environment env.ContentEnvironment) *Posts {
	return &Posts{
		Store:          NewStore(environment.Dir, environment.Extensions...),
		WordsPerMinute: environment.WordsPerMinute,
	}
}

// All returns every readable post, newest first. Dates are compared as
// strings, so they must be zero padded ISO-8601 to sort chronologically.
func (p *Posts) All() ([]Post, error) {
	entries, err := p.Store.Scan()

	if err != nil {
		return nil, err
	}

	posts := make([]Post, 0, len(entries))

	for _, entry := range entries {
		post, err := p.load(entry)

		if err != nil {
			slog.Warn("skipping post", "slug", entry.Slug, "path", entry.Path, "error", err)

			continue
		}

		posts = append(posts, post)
	}

	SortByDate(posts)

	return posts, nil
}

// FindBy returns nil without an error when no file matches the slug.
func (p *Posts) FindBy(slug string) (*Post, error) {
	entry, found, err := p.Store.Locate(slug)

	if err != nil {
		return nil, err
	}

	if !found {
		return nil, nil
	}

	post, err := p.load(entry)

	if err != nil {
		return nil, err
	}

	return &post, nil
}

// Tags counts the distinct tags across all posts. Tags differing only in
// case are merged under the first spelling seen.
func (p *Posts) Tags() ([]TagCount, error) {
	posts, err := p.All()

	if err != nil {
		return nil, err
	}

	return CountTags(posts), nil
}

func (p *Posts) load(entry Entry) (Post, error) {
	raw, err := os.ReadFile(entry.Path)

	if err != nil {
		return Post{}, fmt.Errorf("could not read post %s: %w", entry.Path, err)
	}

	doc, err := markdown.Parse(string(raw))

	if err != nil {
		return Post{}, fmt.Errorf("could not parse post %s: %w", entry.Path, err)
	}

	post, err := FromDocument(entry.Slug, doc, p.WordsPerMinute)

	if err != nil {
		return Post{}, fmt.Errorf("could not parse post %s: %w", entry.Path, err)
	}

	return post, nil
}

func SortByDate(posts []Post) {
	slices.SortStableFunc(posts, func(a, b Post) int {
		return strings.Compare(b.Date, a.Date)
	})
}

func FilterByTag(posts []Post, tag string) []Post {
	if strings.TrimSpace(tag) == "" {
		return posts
	}

	filtered := []Post{}

	for _, post := range posts {
		if post.HasTag(tag) {
			filtered = append(filtered, post)
		}
	}

	return filtered
}

func CountTags(posts []Post) []TagCount {
	counts := []TagCount{}
	index := make(map[string]int)

	for _, post := range posts {
		seen := make(map[string]bool)

		for _, tag := range post.Tags {
			key := portal.NewStringable(tag).ToFold()

			if key == "" || seen[key] {
				continue
			}

			seen[key] = true

			if position, ok := index[key]; ok {
				counts[position].Count++

				continue
			}

			index[key] = len(counts)
			counts = append(counts, TagCount{Name: tag, Count: 1})
		}
	}

	slices.SortStableFunc(counts, func(a, b TagCount) int {
		if a.Count != b.Count {
			return cmp.Compare(b.Count, a.Count)
		}

		return strings.Compare(
			portal.NewStringable(a.Name).ToFold(),
			portal.NewStringable(b.Name).ToFold(),
		)
	})

	return counts
}
