package markdown

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"
)

const Delimiter = "---"

var ErrMalformedFrontMatter = errors.New("malformed front matter")

var formats = []*frontmatter.Format{
	frontmatter.NewFormat(Delimiter, Delimiter, yaml.Unmarshal),
}

// Document is a content file split into its metadata block and body.
type Document struct {
	Meta map[string]any
	Body string
}

// FrontMatter is the set of keys the blog understands. Unknown keys are
// kept in Document.Meta but never written back.
type FrontMatter struct {
	Title       string   `yaml:"title,omitempty"`
	Description string   `yaml:"description,omitempty"`
	Date        string   `yaml:"date,omitempty"`
	Tags        []string `yaml:"tags,omitempty"`
}

// Parse splits text into metadata and body. Text without a front matter
// block is returned whole as the body; an opening delimiter that is never
// closed is an error.
func Parse(text string) (Document, error) {
	if unclosed(text) {
		return Document{}, fmt.Errorf("%w: missing closing %s", ErrMalformedFrontMatter, Delimiter)
	}

	meta := map[string]any{}

	body, err := frontmatter.Parse(strings.NewReader(text), &meta, formats...)

	if err != nil {
		return Document{}, fmt.Errorf("%w: %w", ErrMalformedFrontMatter, err)
	}

	return Document{
		Meta: meta,
		Body: string(body),
	}, nil
}

func unclosed(text string) bool {
	lines := strings.Split(strings.TrimPrefix(text, "\ufeff"), "\n")
	opened := false

	for _, line := range lines {
		line = strings.TrimSpace(line)

		if !opened {
			if line == "" {
				continue
			}

			if line != Delimiter {
				return false
			}

			opened = true

			continue
		}

		if line == Delimiter {
			return false
		}
	}

	return opened
}

// Marshal writes the front matter block followed by the body.
func Marshal(matter FrontMatter, body string) (string, error) {
	var buf bytes.Buffer

	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(matter); err != nil {
		return "", fmt.Errorf("error encoding front matter: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return "", fmt.Errorf("error flushing front matter: %w", err)
	}

	return Delimiter + "\n" + buf.String() + Delimiter + "\n" + body, nil
}
