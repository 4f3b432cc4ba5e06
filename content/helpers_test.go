package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writePost(t *testing.T, dir, name, text string) {
	t.Helper()

	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(text), 0o644))
}

func newPosts(dir string) *Posts {
	return &Posts{
		Store:          NewStore(dir, ".mdx"),
		WordsPerMinute: 200,
	}
}
