// Package metrics names every statistic the analyzer produces and knows how
// to select, format, and serialize them. The registry is the single source
// of metric IDs, display names, and rendering precision for the text and
// JSON outputs and for the compare step.
package metrics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jeduden/prosemeter/internal/analyze"
)

var registry = []Definition{
	{
		ID:          "PRM001",
		Name:        "words",
		Description: "Total word count.",
		Kind:        KindInteger,
		Direction:   Neutral,
		Default:     true,
		Compute: func(r *analyze.Result) Value {
			return AvailableValue(float64(r.WordCount))
		},
	},
	{
		ID:          "PRM002",
		Name:        "sentences",
		Description: "Total sentence count.",
		Kind:        KindInteger,
		Direction:   Neutral,
		Default:     true,
		Compute: func(r *analyze.Result) Value {
			return AvailableValue(float64(r.SentenceCount))
		},
	},
	{
		ID:          "PRM003",
		Name:        "paragraphs",
		Description: "Total paragraph count.",
		Kind:        KindInteger,
		Direction:   Neutral,
		Default:     true,
		Compute: func(r *analyze.Result) Value {
			return AvailableValue(float64(r.ParagraphCount))
		},
	},
	{
		ID:          "PRM004",
		Name:        "avg-sentence-length",
		Description: "Average words per sentence.",
		Kind:        KindFloat,
		Precision:   1,
		Direction:   HigherIsHarder,
		Default:     true,
		Compute: func(r *analyze.Result) Value {
			return AvailableValue(r.AvgSentenceLength)
		},
	},
	{
		ID:          "PRM005",
		Name:        "flesch-reading-ease",
		Description: "Flesch Reading Ease score (higher is easier).",
		Kind:        KindFloat,
		Precision:   1,
		Direction:   HigherIsEasier,
		Default:     true,
		Compute: func(r *analyze.Result) Value {
			return AvailableValue(r.FleschReadingEase)
		},
	},
	{
		ID:          "PRM006",
		Name:        "flesch-kincaid-grade",
		Description: "Flesch-Kincaid grade level.",
		Kind:        KindFloat,
		Precision:   1,
		Direction:   HigherIsHarder,
		Default:     true,
		Compute: func(r *analyze.Result) Value {
			return AvailableValue(r.FleschKincaidGrade)
		},
	},
	{
		ID:          "PRM007",
		Name:        "gunning-fog",
		Description: "Gunning Fog index.",
		Kind:        KindFloat,
		Precision:   1,
		Direction:   HigherIsHarder,
		Default:     true,
		Compute: func(r *analyze.Result) Value {
			return AvailableValue(r.GunningFog)
		},
	},
	{
		ID:          "PRM008",
		Name:        "smog",
		Description: "SMOG grade estimate.",
		Kind:        KindFloat,
		Precision:   1,
		Direction:   HigherIsHarder,
		Default:     true,
		Compute: func(r *analyze.Result) Value {
			return AvailableValue(r.SMOGIndex)
		},
	},
	{
		ID:          "PRM009",
		Name:        "dale-chall",
		Description: "Dale-Chall readability score.",
		Kind:        KindFloat,
		Precision:   2,
		Direction:   HigherIsHarder,
		Default:     true,
		Compute: func(r *analyze.Result) Value {
			return AvailableValue(r.DaleChall)
		},
	},
	{
		ID:          "PRM010",
		Name:        "lexical-density",
		Description: "Content words as a percentage of all words.",
		Kind:        KindFloat,
		Precision:   1,
		Direction:   Neutral,
		Default:     true,
		Compute: func(r *analyze.Result) Value {
			return AvailableValue(r.LexicalDensity)
		},
	},
	{
		ID:          "PRM011",
		Name:        "lexical-diversity",
		Description: "Corrected type-token ratio.",
		Kind:        KindFloat,
		Precision:   2,
		Direction:   Neutral,
		Default:     true,
		Compute: func(r *analyze.Result) Value {
			return AvailableValue(r.LexicalDiversity)
		},
	},
	{
		ID:          "PRM012",
		Name:        "passive-sentences",
		Description: "Sentences flagged passive by the voice heuristic.",
		Kind:        KindInteger,
		Direction:   Neutral,
		Default:     true,
		Compute: func(r *analyze.Result) Value {
			return AvailableValue(float64(r.PassiveVoiceCount))
		},
	},
	{
		ID:          "PRM013",
		Name:        "weak-words",
		Description: "Weak-word and -ly adverb hits.",
		Kind:        KindInteger,
		Direction:   Neutral,
		Default:     true,
		Compute: func(r *analyze.Result) Value {
			return AvailableValue(float64(r.WeakWordCount))
		},
	},
	{
		ID:          "PRM014",
		Name:        "simple-sentences",
		Description: "Sentences with one independent clause.",
		Kind:        KindInteger,
		Direction:   Neutral,
		Default:     false,
		Compute: func(r *analyze.Result) Value {
			return AvailableValue(float64(r.SentenceStructure.Simple))
		},
	},
	{
		ID:          "PRM015",
		Name:        "compound-sentences",
		Description: "Sentences with two or more independent clauses.",
		Kind:        KindInteger,
		Direction:   Neutral,
		Default:     false,
		Compute: func(r *analyze.Result) Value {
			return AvailableValue(float64(r.SentenceStructure.Compound))
		},
	},
	{
		ID:          "PRM016",
		Name:        "complex-sentences",
		Description: "Sentences with a dependent clause.",
		Kind:        KindInteger,
		Direction:   Neutral,
		Default:     false,
		Compute: func(r *analyze.Result) Value {
			return AvailableValue(float64(r.SentenceStructure.Complex))
		},
	},
	{
		ID:          "PRM017",
		Name:        "compound-complex-sentences",
		Description: "Sentences with multiple independent and a dependent clause.",
		Kind:        KindInteger,
		Direction:   Neutral,
		Default:     false,
		Compute: func(r *analyze.Result) Value {
			return AvailableValue(float64(r.SentenceStructure.CompoundComplex))
		},
	},
}

// All returns all metrics sorted by ID.
func All() []Definition {
	defs := append([]Definition(nil), registry...)
	sort.Slice(defs, func(i, j int) bool {
		return defs[i].ID < defs[j].ID
	})
	return defs
}

// Defaults returns the default-selected metrics.
func Defaults() []Definition {
	all := All()
	out := make([]Definition, 0, len(all))
	for _, def := range all {
		if def.Default {
			out = append(out, def)
		}
	}
	return out
}

// Lookup searches by metric ID (case-insensitive) or by name.
func Lookup(query string) (Definition, bool) {
	for _, def := range All() {
		if matches(def, query) {
			return def, true
		}
	}
	return Definition{}, false
}

// Resolve resolves user-selected metric names/IDs. Empty names returns the
// default metrics. Duplicates collapse; unknown names error.
func Resolve(names []string) ([]Definition, error) {
	if len(names) == 0 {
		return Defaults(), nil
	}

	seen := make(map[string]struct{}, len(names))
	defs := make([]Definition, 0, len(names))
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}

		def, ok := Lookup(name)
		if !ok {
			return nil, unknownMetricErr(name)
		}

		if _, exists := seen[def.ID]; exists {
			continue
		}
		seen[def.ID] = struct{}{}
		defs = append(defs, def)
	}

	if len(defs) == 0 {
		return nil, fmt.Errorf("no metrics selected")
	}
	return defs, nil
}

func matches(def Definition, query string) bool {
	q := strings.TrimSpace(query)
	if q == "" {
		return false
	}
	return strings.EqualFold(def.ID, q) || def.Name == strings.ToLower(q)
}

func unknownMetricErr(name string) error {
	return fmt.Errorf(
		"unknown metric %q (available: %s)",
		name,
		strings.Join(availableNames(), ", "),
	)
}

func availableNames() []string {
	defs := All()
	names := make([]string, 0, len(defs))
	for _, def := range defs {
		names = append(names, def.Name)
	}
	sort.Strings(names)
	return names
}
