// Package textio resolves document arguments into file paths and reads
// their plain-text content. Markdown files are reduced to prose before
// analysis; anything else is treated as plain UTF-8 text.
package textio

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/gobwas/glob"

	"github.com/jeduden/prosemeter/internal/mdtext"
)

// isSupported returns true for the document extensions discovery collects
// when walking a directory.
func isSupported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".text", ".md", ".markdown":
		return true
	}
	return false
}

// isMarkdown returns true if the file extension is .md or .markdown.
func isMarkdown(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".md" || ext == ".markdown"
}

// hasGlobChars returns true if the string contains glob meta-characters.
func hasGlobChars(s string) bool {
	return strings.ContainsAny(s, "*?[{")
}

// Resolve takes positional arguments and returns deduplicated, sorted
// document paths. It supports individual files, directories (recursive walk
// for supported extensions), and doublestar glob patterns. Paths matching
// any ignore pattern are dropped, except files named explicitly.
func Resolve(args []string, ignore []string) ([]string, error) {
	matcher := newIgnoreMatcher(ignore)
	seen := make(map[string]bool)
	var result []string

	add := func(path string) {
		path = filepath.Clean(path)
		if seen[path] {
			return
		}
		seen[path] = true
		result = append(result, path)
	}

	for _, arg := range args {
		info, err := os.Stat(arg)
		switch {
		case err == nil && info.IsDir():
			walkErr := filepath.Walk(arg, func(path string, fi os.FileInfo, err error) error {
				if err != nil {
					return err
				}
				if fi.IsDir() {
					if matcher.matches(path) && path != filepath.Clean(arg) {
						return filepath.SkipDir
					}
					return nil
				}
				if isSupported(path) && !matcher.matches(path) {
					add(path)
				}
				return nil
			})
			if walkErr != nil {
				return nil, fmt.Errorf("walking %q: %w", arg, walkErr)
			}

		case err == nil:
			// Explicitly named files bypass ignore filtering.
			add(arg)

		case hasGlobChars(arg):
			if !doublestar.ValidatePattern(arg) {
				return nil, fmt.Errorf("invalid glob pattern %q", arg)
			}
			matches, globErr := doublestar.FilepathGlob(arg)
			if globErr != nil {
				return nil, fmt.Errorf("expanding %q: %w", arg, globErr)
			}
			for _, m := range matches {
				fi, statErr := os.Stat(m)
				if statErr != nil || fi.IsDir() {
					continue
				}
				if !matcher.matches(m) {
					add(m)
				}
			}

		default:
			return nil, fmt.Errorf("no such file: %s", arg)
		}
	}

	sort.Strings(result)
	return result, nil
}

// ReadDocument reads a document and returns its plain text. Markdown is
// reduced to prose; other files pass through unchanged.
func ReadDocument(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %q: %w", path, err)
	}
	if isMarkdown(path) {
		return mdtext.ExtractFromSource(data), nil
	}
	return string(data), nil
}

// ignoreMatcher filters paths against compiled ignore globs.
type ignoreMatcher struct {
	globs []glob.Glob
}

func newIgnoreMatcher(patterns []string) *ignoreMatcher {
	m := &ignoreMatcher{}
	for _, p := range patterns {
		g, err := glob.Compile(p, '/')
		if err != nil {
			continue
		}
		m.globs = append(m.globs, g)
	}
	return m
}

func (m *ignoreMatcher) matches(path string) bool {
	clean := filepath.ToSlash(filepath.Clean(path))
	base := filepath.Base(path)
	for _, g := range m.globs {
		if g.Match(clean) || g.Match(base) {
			return true
		}
	}
	return false
}
