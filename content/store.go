package content

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Store is the directory holding the authored post files.
type Store struct {
	Dir        string
	Extensions []string
}

// Entry is a content file found in the store.
type Entry struct {
	Slug string
	Path string
}

func NewStore(dir string, extensions ...string) Store {
	return Store{
		Dir:        dir,
		Extensions: extensions,
	}
}

// Scan lists the content files of the store in directory order. A missing
// directory is an empty store. When several files share a stem, the one
// whose extension comes first in Extensions wins.
func (s Store) Scan() ([]Entry, error) {
	items, err := os.ReadDir(s.Dir)

	if errors.Is(err, fs.ErrNotExist) {
		return []Entry{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("could not read content directory %s: %w", s.Dir, err)
	}

	entries := []Entry{}
	ranks := make(map[string]int)
	positions := make(map[string]int)

	for _, item := range items {
		if item.IsDir() {
			continue
		}

		slug, rank, ok := s.match(item.Name())
		if !ok {
			continue
		}

		entry := Entry{
			Slug: slug,
			Path: filepath.Join(s.Dir, item.Name()),
		}

		if position, seen := positions[slug]; seen {
			if rank < ranks[slug] {
				entries[position] = entry
				ranks[slug] = rank
			}

			continue
		}

		positions[slug] = len(entries)
		ranks[slug] = rank
		entries = append(entries, entry)
	}

	return entries, nil
}

// Locate resolves slug to its file without listing the directory.
func (s Store) Locate(slug string) (Entry, bool, error) {
	if !IsValidSlug(slug) {
		return Entry{}, false, nil
	}

	for _, ext := range s.Extensions {
		path := filepath.Join(s.Dir, slug+ext)
		info, err := os.Stat(path)

		if errors.Is(err, fs.ErrNotExist) {
			continue
		}

		if err != nil {
			return Entry{}, false, fmt.Errorf("could not stat %s: %w", path, err)
		}

		if info.Mode().IsRegular() {
			return Entry{Slug: slug, Path: path}, true, nil
		}
	}

	return Entry{}, false, nil
}

func (s Store) match(name string) (string, int, bool) {
	for rank, ext := range s.Extensions {
		if ext == "" || !strings.HasSuffix(name, ext) {
			continue
		}

		slug := strings.TrimSuffix(name, ext)
		if !IsValidSlug(slug) {
			continue
		}

		return slug, rank, true
	}

	return "", 0, false
}

// IsValidSlug rejects anything that could escape the content directory.
func IsValidSlug(slug string) bool {
	if strings.TrimSpace(slug) == "" || slug == "." || slug == ".." {
		return false
	}

	if strings.ContainsAny(slug, `/\`) || strings.ContainsRune(slug, 0) {
		return false
	}

	return filepath.Base(slug) == slug
}
