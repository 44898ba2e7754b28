// Package wordlist loads the fixed linguistic reference tables the analysis
// engine depends on: stopwords, familiar words, weak words, irregular
// participles, abbreviations, and the smaller exception lists. The tables are
// data, not code: each list is an embedded plain-text file (one word per
// line, # starts a comment) and any of them can be swapped via a config
// override without touching engine logic.
package wordlist

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
)

//go:embed data/*.txt
var dataFS embed.FS

// Set is a case-folded word set.
type Set map[string]struct{}

// Has reports whether the set contains the case-folded form of w.
func (s Set) Has(w string) bool {
	_, ok := s[strings.ToLower(w)]
	return ok
}

// Len returns the number of entries.
func (s Set) Len() int { return len(s) }

// List names accepted by Load overrides.
const (
	ListStopwords         = "stopwords"
	ListFamiliar          = "familiar"
	ListWeakWords         = "weakwords"
	ListParticiples       = "participles"
	ListAbbreviations     = "abbreviations"
	ListComplexExceptions = "complex-exceptions"
	ListLyExceptions      = "ly-exceptions"
)

// Tables holds every reference list used by the engine. A Tables value is
// built once and read concurrently; it is never mutated after Load returns.
type Tables struct {
	// Stopwords are function words excluded from content-word and
	// frequency analysis.
	Stopwords Set
	// Familiar is the Dale-Chall familiar-word reference list. Words
	// absent from it count as difficult.
	Familiar Set
	// WeakWords are hedges and intensifiers counted by the style analyzer.
	WeakWords Set
	// Participles are irregular past participles that do not end in -ed.
	Participles Set
	// Abbreviations suppress sentence breaks after a trailing period.
	Abbreviations Set
	// ComplexExceptions are common 3+ syllable words excluded from the
	// complex-word count.
	ComplexExceptions Set
	// LyExceptions are words ending in -ly that are not adverbs.
	LyExceptions Set
}

var (
	defaultOnce   sync.Once
	defaultTables *Tables
	defaultErr    error
)

// Default returns the tables built from the embedded lists. The result is
// built once per process and shared; callers must not modify it.
func Default() (*Tables, error) {
	defaultOnce.Do(func() {
		defaultTables, defaultErr = Load(nil)
	})
	return defaultTables, defaultErr
}

// Load builds tables from the embedded lists, replacing any list for which
// overrides maps its name to a readable file path.
func Load(overrides map[string]string) (*Tables, error) {
	for name := range overrides {
		if !validListName(name) {
			return nil, fmt.Errorf("unknown wordlist %q (available: %s)",
				name, strings.Join(listNames(), ", "))
		}
	}

	t := &Tables{}
	fields := []struct {
		name string
		dst  *Set
	}{
		{ListStopwords, &t.Stopwords},
		{ListFamiliar, &t.Familiar},
		{ListWeakWords, &t.WeakWords},
		{ListParticiples, &t.Participles},
		{ListAbbreviations, &t.Abbreviations},
		{ListComplexExceptions, &t.ComplexExceptions},
		{ListLyExceptions, &t.LyExceptions},
	}

	for _, f := range fields {
		set, err := loadList(f.name, overrides[f.name])
		if err != nil {
			return nil, err
		}
		*f.dst = set
	}
	return t, nil
}

// loadList reads one list, from the override path when given, otherwise
// from the embedded data file.
func loadList(name, overridePath string) (Set, error) {
	if overridePath != "" {
		f, err := os.Open(overridePath)
		if err != nil {
			return nil, fmt.Errorf("opening %s override: %w", name, err)
		}
		defer func() { _ = f.Close() }()
		return parseList(f)
	}

	f, err := dataFS.Open("data/" + name + ".txt")
	if err != nil {
		return nil, fmt.Errorf("opening embedded list %s: %w", name, err)
	}
	defer func() { _ = f.Close() }()
	return parseList(f)
}

// parseList reads one word per line, case-folding entries and skipping
// blank lines and # comments.
func parseList(r io.Reader) (Set, error) {
	set := make(Set)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		set[strings.ToLower(line)] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading wordlist: %w", err)
	}
	return set, nil
}

func validListName(name string) bool {
	for _, n := range listNames() {
		if n == name {
			return true
		}
	}
	return false
}

func listNames() []string {
	names := []string{
		ListStopwords, ListFamiliar, ListWeakWords, ListParticiples,
		ListAbbreviations, ListComplexExceptions, ListLyExceptions,
	}
	sort.Strings(names)
	return names
}
