// Package style applies the rule-based prose heuristics: passive-voice
// detection, sentence-structure classification, and weak-word counting.
// These are pattern matches over tokens plus fixed word lists, not grammar.
// Known failure modes are accepted: adjectival participles ("the door was
// shut") read as passive, "that" counts as a relative pronoun even when it
// is a demonstrative, and clause coordination without a comma or pronoun
// subject is missed.
package style

import (
	"strings"

	"github.com/jeduden/prosemeter/internal/segment"
	"github.com/jeduden/prosemeter/internal/wordlist"
)

// Structure is the sentence-structure classification.
type Structure int

// Structure values.
const (
	Simple Structure = iota
	Compound
	Complex
	CompoundComplex
)

// String returns the lowercase name of the structure.
func (s Structure) String() string {
	switch s {
	case Compound:
		return "compound"
	case Complex:
		return "complex"
	case CompoundComplex:
		return "compound-complex"
	default:
		return "simple"
	}
}

// Counts aggregates the style measurements for one document.
type Counts struct {
	// Passive counts sentences flagged by the passive-voice heuristic.
	Passive int
	// Simple, Compound, Complex, and CompoundComplex partition the
	// sentence count.
	Simple          int
	Compound        int
	Complex         int
	CompoundComplex int
	// WeakWords counts weak-word and -ly adverb hits.
	WeakWords int
}

// auxiliary "be" forms that open a passive construction.
var beForms = map[string]struct{}{
	"is": {}, "was": {}, "were": {}, "be": {},
	"been": {}, "being": {}, "are": {},
}

// coordinators join independent clauses.
var coordinators = map[string]struct{}{
	"and": {}, "but": {}, "or": {}, "so": {},
	"yet": {}, "for": {}, "nor": {},
}

// subordinators introduce dependent clauses.
var subordinators = map[string]struct{}{
	"because": {}, "although": {}, "though": {}, "since": {},
	"while": {}, "if": {}, "when": {}, "whenever": {},
	"unless": {}, "until": {}, "whereas": {}, "wherever": {},
	"before": {}, "after": {},
}

// relativePronouns also introduce dependent clauses.
var relativePronouns = map[string]struct{}{
	"which": {}, "that": {}, "who": {}, "whom": {}, "whose": {},
}

// subjectPronouns mark a clause subject after a coordinator.
var subjectPronouns = map[string]struct{}{
	"i": {}, "he": {}, "she": {}, "it": {},
	"we": {}, "they": {}, "you": {},
}

// passiveWindow is how many tokens after a "be" form may hold the
// participle, so interposed adverbs still match.
const passiveWindow = 3

// Analyze computes style counts over annotated paragraphs.
func Analyze(paragraphs []segment.Paragraph, tables *wordlist.Tables) Counts {
	var c Counts
	for _, p := range paragraphs {
		for _, s := range p.Sentences {
			if isPassive(s.Tokens, tables.Participles) {
				c.Passive++
			}
			switch Classify(s) {
			case Compound:
				c.Compound++
			case Complex:
				c.Complex++
			case CompoundComplex:
				c.CompoundComplex++
			default:
				c.Simple++
			}
			for _, tok := range s.Tokens {
				if tok.Weak || tok.Adverb {
					c.WeakWords++
				}
			}
		}
	}
	return c
}

// isPassive reports whether the tokens contain a "be" form followed within
// passiveWindow tokens by a participle-shaped word.
func isPassive(tokens []segment.Token, participles wordlist.Set) bool {
	for i, tok := range tokens {
		if _, ok := beForms[tok.Text]; !ok {
			continue
		}
		end := i + 1 + passiveWindow
		if end > len(tokens) {
			end = len(tokens)
		}
		for j := i + 1; j < end; j++ {
			if isParticiple(tokens[j].Text, participles) {
				return true
			}
		}
	}
	return false
}

// isParticiple matches past-participle-shaped words: -ed endings of
// sufficient length, or the irregular-participle list.
func isParticiple(word string, participles wordlist.Set) bool {
	if len(word) >= 4 && strings.HasSuffix(word, "ed") {
		return true
	}
	return participles.Has(word)
}

// Classify determines the sentence structure from its clause counts.
func Classify(s segment.Sentence) Structure {
	independent, dependent := countClauses(s)
	switch {
	case independent >= 2 && dependent >= 1:
		return CompoundComplex
	case independent >= 2:
		return Compound
	case dependent >= 1:
		return Complex
	default:
		return Simple
	}
}

// countClauses counts independent and dependent clauses from the raw
// sentence text. A coordinator starts a new independent clause when it
// follows a comma or is followed by a subject pronoun; a semicolon always
// does. Each subordinator or relative pronoun counts one dependent clause.
func countClauses(s segment.Sentence) (independent, dependent int) {
	fields := strings.Fields(s.Raw)
	independent = 1

	prevComma := false
	prevSemi := false
	for i, f := range fields {
		core := segment.Normalize(f)
		if core == "" {
			if strings.Contains(f, ";") {
				independent++
				prevSemi = true
			}
			prevComma = strings.HasSuffix(f, ",")
			continue
		}

		if _, ok := coordinators[core]; ok && i > 0 {
			// A semicolon already opened this clause; do not count the
			// coordinator again ("; and she ...").
			if !prevSemi && (prevComma || nextIsSubject(fields, i)) {
				independent++
			}
		}
		if _, ok := subordinators[core]; ok {
			dependent++
		} else if _, ok := relativePronouns[core]; ok {
			dependent++
		}

		prevSemi = strings.HasSuffix(f, ";")
		if prevSemi {
			independent++
		}
		prevComma = strings.HasSuffix(f, ",")
	}
	return independent, dependent
}

// nextIsSubject reports whether the field after index i is a subject
// pronoun.
func nextIsSubject(fields []string, i int) bool {
	if i+1 >= len(fields) {
		return false
	}
	_, ok := subjectPronouns[segment.Normalize(fields[i+1])]
	return ok
}
