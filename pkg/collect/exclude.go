package collect

import (
	"path/filepath"
	"strings"
)

// matchesExclude reports whether a relative name matches any pattern.
// Patterns support:
//   - basename globs: *.tmp, Thumbs.db
//   - directory patterns: .git/, node_modules/ (the directory and its content)
//   - any-depth patterns: **/cache, **/*.bak
//   - path globs: build/*
func matchesExclude(relativePath string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}

	normalizedPath := filepath.ToSlash(relativePath)
	baseName := filepath.Base(relativePath)

	for _, pattern := range patterns {
		if pattern == "" {
			continue
		}
		normalizedPattern := filepath.ToSlash(pattern)

		if dir, ok := strings.CutSuffix(normalizedPattern, "/"); ok {
			if normalizedPath == dir ||
				strings.HasPrefix(normalizedPath, dir+"/") ||
				strings.HasSuffix(normalizedPath, "/"+dir) ||
				strings.Contains(normalizedPath, "/"+dir+"/") {
				return true
			}
			continue
		}

		if suffix, ok := strings.CutPrefix(normalizedPattern, "**/"); ok {
			if globMatch(suffix, baseName) || globMatch(suffix, normalizedPath) {
				return true
			}
			if strings.HasSuffix(normalizedPath, "/"+suffix) || anyComponentMatches(normalizedPath, suffix) {
				return true
			}
			continue
		}

		if strings.Contains(normalizedPattern, "/") {
			if globMatch(normalizedPattern, normalizedPath) || strings.HasSuffix(normalizedPath, "/"+normalizedPattern) {
				return true
			}
			continue
		}

		if globMatch(normalizedPattern, baseName) {
			return true
		}
	}

	return false
}

// validatePatterns reports the first malformed glob pattern
func validatePatterns(patterns []string) error {
	for _, p := range patterns {
		p = strings.TrimPrefix(strings.TrimSuffix(filepath.ToSlash(p), "/"), "**/")
		if _, err := filepath.Match(p, ""); err != nil {
			return err
		}
	}
	return nil
}

func globMatch(pattern, name string) bool {
	matched, _ := filepath.Match(pattern, name)
	return matched
}

// anyComponentMatches checks if any component of the path matches the pattern
func anyComponentMatches(path, pattern string) bool {
	for _, part := range strings.Split(path, "/") {
		if globMatch(pattern, part) {
			return true
		}
	}
	return false
}
