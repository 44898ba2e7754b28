// Package analyze is the aggregator: it segments a document, annotates every
// token, and merges the readability, lexical, and style measurements into a
// single immutable Result. Analyze is a pure function of its input text and
// the analyzer's read-only tables; calling it twice with the same text
// yields identical results, and one Analyzer may serve concurrent calls.
package analyze

import (
	"github.com/jeduden/prosemeter/internal/lexical"
	"github.com/jeduden/prosemeter/internal/readability"
	"github.com/jeduden/prosemeter/internal/segment"
	"github.com/jeduden/prosemeter/internal/style"
	"github.com/jeduden/prosemeter/internal/syllable"
	"github.com/jeduden/prosemeter/internal/wordlist"
)

// DefaultTopWords is the default frequency-table size.
const DefaultTopWords = 20

// Options tune an Analyzer.
type Options struct {
	// TopWords truncates the word-frequency table. Zero means
	// DefaultTopWords; negative keeps every word.
	TopWords int
	// Stem groups inflected forms in the frequency table.
	Stem bool
}

// Analyzer analyzes documents against a fixed set of reference tables.
type Analyzer struct {
	tables *wordlist.Tables
	opts   Options
}

// New returns an Analyzer over the given tables.
func New(tables *wordlist.Tables, opts Options) *Analyzer {
	if opts.TopWords == 0 {
		opts.TopWords = DefaultTopWords
	}
	return &Analyzer{tables: tables, opts: opts}
}

// StructureCounts partitions the sentence count by structure. The four
// fields always sum to the sentence count.
type StructureCounts struct {
	Simple          int
	Compound        int
	Complex         int
	CompoundComplex int
}

// Result is the complete set of statistics for one document. It is created
// once per Analyze call and never mutated.
type Result struct {
	WordCount      int
	ParagraphCount int
	SentenceCount  int

	AvgSentenceLength float64

	FleschReadingEase  float64
	FleschKincaidGrade float64
	GunningFog         float64
	SMOGIndex          float64
	DaleChall          float64

	LexicalDensity   float64
	LexicalDiversity float64
	WordFrequency    []lexical.WordCount

	PassiveVoiceCount int
	SentenceStructure StructureCounts
	WeakWordCount     int
}

// Analyze computes every statistic for text. Any UTF-8 string is valid
// input; empty or whitespace-only text yields a Result with all counts and
// scores zero.
func (a *Analyzer) Analyze(text string) Result {
	paragraphs := segment.Split(text, a.tables.Abbreviations)
	a.annotate(paragraphs)

	stats := readability.Stats{}
	for _, p := range paragraphs {
		stats.Sentences += len(p.Sentences)
		for _, s := range p.Sentences {
			for _, tok := range s.Tokens {
				stats.Words++
				stats.Syllables += tok.Syllables
				if tok.Syllables >= 3 && !a.tables.ComplexExceptions.Has(tok.Text) {
					stats.ComplexWords++
				}
				if !a.tables.Familiar.Has(tok.Text) {
					stats.DifficultWords++
				}
			}
		}
	}

	scores := readability.Calculate(stats)
	lex := lexical.Analyze(paragraphs, lexical.Options{
		TopN: a.opts.TopWords,
		Stem: a.opts.Stem,
	})
	st := style.Analyze(paragraphs, a.tables)

	avg := 0.0
	if stats.Sentences > 0 {
		avg = float64(stats.Words) / float64(stats.Sentences)
	}

	return Result{
		WordCount:      stats.Words,
		ParagraphCount: len(paragraphs),
		SentenceCount:  stats.Sentences,

		AvgSentenceLength: avg,

		FleschReadingEase:  scores.FleschReadingEase,
		FleschKincaidGrade: scores.FleschKincaidGrade,
		GunningFog:         scores.GunningFog,
		SMOGIndex:          scores.SMOGIndex,
		DaleChall:          scores.DaleChall,

		LexicalDensity:   lex.Density,
		LexicalDiversity: lex.Diversity,
		WordFrequency:    lex.TopWords,

		PassiveVoiceCount: st.Passive,
		SentenceStructure: StructureCounts{
			Simple:          st.Simple,
			Compound:        st.Compound,
			Complex:         st.Complex,
			CompoundComplex: st.CompoundComplex,
		},
		WeakWordCount: st.WeakWords,
	}
}

// annotate fills in syllable counts and word-class flags on every token.
func (a *Analyzer) annotate(paragraphs []segment.Paragraph) {
	for pi := range paragraphs {
		for si := range paragraphs[pi].Sentences {
			tokens := paragraphs[pi].Sentences[si].Tokens
			for ti := range tokens {
				tok := &tokens[ti]
				tok.Syllables = syllable.Count(tok.Text)
				tok.Stopword = a.tables.Stopwords.Has(tok.Text)
				tok.Content = !tok.Stopword
				tok.Weak = a.tables.WeakWords.Has(tok.Text)
				tok.Adverb = isLyAdverb(tok.Text, a.tables.LyExceptions)
			}
		}
	}
}

// isLyAdverb matches -ly words not on the non-adverb exclusion list.
func isLyAdverb(word string, exceptions wordlist.Set) bool {
	if len(word) < 4 || word[len(word)-2:] != "ly" {
		return false
	}
	return !exceptions.Has(word)
}
