package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStoreScanMissingDirectory(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "nope"), ".mdx")

	entries, err := store.Scan()

	require.NoError(t, err)
	require.NotNil(t, entries)
	require.Empty(t, entries)
}

func TestStoreScanFiltersByExtension(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "b.mdx", "b")
	writePost(t, dir, "a.mdx", "a")
	writePost(t, dir, "notes.txt", "x")
	writePost(t, dir, ".mdx", "x")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "drafts.mdx"), 0o755))

	entries, err := NewStore(dir, ".mdx").Scan()

	require.NoError(t, err)
	require.Equal(t, []Entry{
		{Slug: "a", Path: filepath.Join(dir, "a.mdx")},
		{Slug: "b", Path: filepath.Join(dir, "b.mdx")},
	}, entries)
}

func TestStoreScanPrefersFirstExtension(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "hello.md", "md")
	writePost(t, dir, "hello.mdx", "mdx")
	writePost(t, dir, "other.md", "md")

	entries, err := NewStore(dir, ".mdx", ".md").Scan()

	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, filepath.Join(dir, "hello.mdx"), entries[0].Path)
	require.Equal(t, "other", entries[1].Slug)
}

func TestStoreLocate(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "hello.mdx", "hello")

	store := NewStore(dir, ".mdx")

	entry, found, err := store.Locate("hello")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, filepath.Join(dir, "hello.mdx"), entry.Path)

	_, found, err = store.Locate("missing")
	require.NoError(t, err)
	require.False(t, found)

	_, found, err = store.Locate("../hello")
	require.NoError(t, err)
	require.False(t, found)
}

func TestIsValidSlug(t *testing.T) {
	valid := []string{"hello", "hello-world", "2024_notes", ".draft"}
	invalid := []string{"", " ", ".", "..", "a/b", `a\b`, "../etc/passwd"}

	for _, slug := range valid {
		require.Truef(t, IsValidSlug(slug), "expected %q to be valid", slug)
	}

	for _, slug := range invalid {
		require.Falsef(t, IsValidSlug(slug), "expected %q to be invalid", slug)
	}
}
