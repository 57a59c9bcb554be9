package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/leapstack-labs/dupcheck/internal/cli/config"
)

// resolveFiles returns the files to check. Arguments are relative to the
// working directory; configured files are relative to the project root.
// Glob patterns (including **) are expanded and must match at least one file.
func resolveFiles(cfg *config.Config, args []string) ([]string, error) {
	var patterns []string
	if len(args) > 0 {
		for _, a := range args {
			abs, err := filepath.Abs(a)
			if err != nil {
				return nil, fmt.Errorf("invalid path %s: %w", a, err)
			}
			patterns = append(patterns, abs)
		}
	} else {
		patterns = cfg.ResolvedFiles()
	}

	seen := make(map[string]bool)
	var files []string
	for _, p := range patterns {
		matches, err := expandPattern(p)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				files = append(files, m)
			}
		}
	}
	return files, nil
}

func expandPattern(pattern string) ([]string, error) {
	if !containsGlob(pattern) {
		info, err := os.Stat(pattern)
		if err != nil {
			return nil, fmt.Errorf("cannot access %s: %w", pattern, err)
		}
		if info.IsDir() {
			return nil, fmt.Errorf("%s is a directory\nHint: use a glob such as %s", pattern, filepath.Join(pattern, "*.vim"))
		}
		return []string{pattern}, nil
	}

	// Use doublestar for ** support
	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("glob error: %w", err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no files match pattern: %s", pattern)
	}
	sort.Strings(matches)
	return matches, nil
}

// containsGlob checks if a pattern contains glob characters.
func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

// displayPath shortens path relative to root when it lies inside it.
func displayPath(path, root string) string {
	if root == "" {
		return path
	}
	rel, err := filepath.Rel(root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}
