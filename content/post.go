package content

import (
	"fmt"
	"time"

	"github.com/airesearchhub/site/pkg/markdown"
	"github.com/airesearchhub/site/pkg/portal"
)

type Post struct {
	Slug        string
	Title       string
	Description string
	Date        string
	Tags        []string
	ReadingTime string
	Content     string
}

// FromDocument builds a fully populated post. Missing keys resolve to their
// defaults: "" for title, description and date, an empty slice for tags.
func FromDocument(slug string, doc markdown.Document, wordsPerMinute int) (Post, error) {
	title, err := scalar(doc.Meta, "title")
	if err != nil {
		return Post{}, err
	}

	description, err := scalar(doc.Meta, "description")
	if err != nil {
		return Post{}, err
	}

	date, err := scalar(doc.Meta, "date")
	if err != nil {
		return Post{}, err
	}

	tags, err := sequence(doc.Meta, "tags")
	if err != nil {
		return Post{}, err
	}

	return Post{
		Slug:        slug,
		Title:       title,
		Description: description,
		Date:        date,
		Tags:        tags,
		ReadingTime: markdown.EstimateReadingTime(doc.Body, wordsPerMinute).Text,
		Content:     doc.Body,
	}, nil
}

func (p Post) FrontMatter() markdown.FrontMatter {
	return markdown.FrontMatter{
		Title:       p.Title,
		Description: p.Description,
		Date:        p.Date,
		Tags:        p.Tags,
	}
}

// Source renders the post back into its file form.
func (p Post) Source() (string, error) {
	return markdown.Marshal(p.FrontMatter(), p.Content)
}

func (p Post) HasTag(tag string) bool {
	needle := portal.NewStringable(tag).ToFold()

	for _, current := range p.Tags {
		if portal.NewStringable(current).ToFold() == needle {
			return true
		}
	}

	return false
}

func scalar(meta map[string]any, key string) (string, error) {
	value, ok := meta[key]

	if !ok || value == nil {
		return "", nil
	}

	text, ok := scalarValue(value)
	if !ok {
		return "", fmt.Errorf("%w: [%s] must be a single value, got %T", markdown.ErrMalformedFrontMatter, key, value)
	}

	return text, nil
}

func sequence(meta map[string]any, key string) ([]string, error) {
	value, ok := meta[key]

	if !ok || value == nil {
		return []string{}, nil
	}

	switch items := value.(type) {
	case string:
		return portal.NewStringable(items).SplitList(), nil
	case []string:
		return portal.FilterNonEmpty(items), nil
	case []any:
		out := make([]string, 0, len(items))

		for _, item := range items {
			if item == nil {
				continue
			}

			text, ok := scalarValue(item)
			if !ok {
				return nil, fmt.Errorf("%w: [%s] items must be single values, got %T", markdown.ErrMalformedFrontMatter, key, item)
			}

			out = append(out, text)
		}

		return portal.FilterNonEmpty(out), nil
	}

	if text, ok := scalarValue(value); ok {
		return portal.FilterNonEmpty([]string{text}), nil
	}

	return nil, fmt.Errorf("%w: [%s] must be a list, got %T", markdown.ErrMalformedFrontMatter, key, value)
}

func scalarValue(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case time.Time:
		return formatDate(v), true
	case bool, int, int64, uint64, float64:
		return fmt.Sprint(v), true
	default:
		return "", false
	}
}

// formatDate keeps calendar dates in their authored YYYY-MM-DD form so they
// sort the same way as quoted ones.
func formatDate(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Format(portal.DatesLayout)
	}

	return t.Format(time.RFC3339)
}
