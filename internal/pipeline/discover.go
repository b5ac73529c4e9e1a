package pipeline

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// Asset file extensions the sorter handles (lowercase, with leading dot).
var assetExtensions = map[string]bool{
	".png":   true,
	".jpg":   true,
	".jpeg":  true,
	".webp":  true,
	".skel":  true,
	".atlas": true,
	".json":  true,
}

// Folders holding reference images; the original tool ignores these.
var ignoredFolders = map[string]bool{
	"refs":   true,
	"unused": true,
}

// Discover walks inputDir, collects files with asset extensions, prunes
// reference-image folders, and returns the paths sorted lexicographically
// for deterministic processing order.
func Discover(inputDir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(inputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if ignoredFolders[strings.ToLower(d.Name())] {
				return filepath.SkipDir
			}
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if assetExtensions[ext] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
