package env

import "strings"

const DefaultContentDir = "content/blog"
const DefaultContentExtension = ".mdx"
const DefaultWordsPerMinute = 200

// ContentEnvironment points the blog reader at the directory holding the
// authored post files.
type ContentEnvironment struct {
	Dir            string   `validate:"required"`
	Extensions     []string `validate:"required,min=1,dive,startswith=."`
	WordsPerMinute int      `validate:"required,min=50,max=1000"`
}

// ParseExtensions reads a comma separated list such as ".mdx,.md". Order is
// significant: it decides which file wins when two share a stem.
func ParseExtensions(raw string) []string {
	var out []string

	for _, item := range strings.Split(raw, ",") {
		ext := strings.ToLower(strings.TrimSpace(item))

		if ext == "" {
			continue
		}

		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}

		out = append(out, ext)
	}

	if len(out) == 0 {
		return []string{DefaultContentExtension}
	}

	return out
}
