package mwmap

import (
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pkg/errors"
)

// DefaultExtensions are the file extensions recognized as map files.
// Matching ignores case.
var DefaultExtensions = []string{".map"}

// Source is the content of one map file, opened for classification.
//
// On unix systems the file is memory mapped and Text shares the mapping.
// Strings taken from Text, including those held by records classified from
// it, are valid only until Close.
type Source struct {
	name  string
	data  []byte
	unmap func([]byte) error
}

// Open opens the map file at path.
func Open(path string) (*Source, error) {
	data, unmap, err := mapFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open map file %q", path)
	}
	return &Source{name: path, data: data, unmap: unmap}, nil
}

// Name returns the path the source was opened from.
func (s *Source) Name() string {
	return s.name
}

// Len returns the size of the content in bytes.
func (s *Source) Len() int {
	return len(s.data)
}

// Text returns the file content.
func (s *Source) Text() string {
	return bytesToString(s.data)
}

// Close releases the file content. Close is idempotent.
func (s *Source) Close() error {
	data := s.data
	s.data = nil
	if data == nil || s.unmap == nil {
		return nil
	}
	if err := s.unmap(data); err != nil {
		return errors.Wrapf(err, "unable to release map file %q", s.name)
	}
	return nil
}

// FindMaps walks the directory tree rooted at root and returns the paths of
// files whose extension is one of exts, sorted. With no exts,
// DefaultExtensions is used. Unreadable subdirectories are skipped.
func FindMaps(root string, exts ...string) ([]string, error) {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	extSet := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		extSet[strings.ToLower(ext)] = struct{}{}
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if _, ok := extSet[strings.ToLower(filepath.Ext(path))]; ok {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "unable to search %q for map files", root)
	}
	slices.Sort(files)
	return files, nil
}
