package content

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// File is a candidate for the file finder.
type File struct {
	Rel string
	Abs string
}

var skippedDirs = map[string]struct{}{
	".git":         {},
	"node_modules": {},
	"vendor":       {},
}

// ListFiles walks root and returns regular files sorted by relative path,
// skipping hidden and vendored directories. At most limit entries are
// returned when limit is positive.
func ListFiles(root string, limit int) ([]File, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	var files []File
	walkErr := filepath.WalkDir(abs, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == abs {
				return err
			}
			return nil
		}
		name := d.Name()
		if d.IsDir() {
			if path == abs {
				return nil
			}
			if _, skip := skippedDirs[name]; skip || strings.HasPrefix(name, ".") {
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(abs, path)
		if err != nil {
			rel = path
		}
		files = append(files, File{Rel: filepath.ToSlash(rel), Abs: path})
		if limit > 0 && len(files) >= limit {
			return fs.SkipAll
		}
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Rel < files[j].Rel })
	return files, nil
}
