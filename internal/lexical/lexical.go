// Package lexical measures vocabulary: lexical density (content words as a
// share of all words), lexical diversity (corrected type-token ratio), and
// the ranked word-frequency table. All three work on the annotated token
// structure and are deterministic: the frequency sort breaks count ties by
// first occurrence, never by map order.
package lexical

import (
	"math"
	"sort"

	"github.com/kljensen/snowball"

	"github.com/jeduden/prosemeter/internal/segment"
)

// WordCount is one frequency-table entry.
type WordCount struct {
	Word  string
	Count int
}

// Options tune the frequency table.
type Options struct {
	// TopN truncates the frequency table. Zero or negative keeps
	// everything.
	TopN int
	// Stem groups inflected forms under a shared Snowball stem. The
	// displayed word is the first-seen surface form. Density and
	// diversity are unaffected.
	Stem bool
}

// Summary holds the lexical measurements for one document.
type Summary struct {
	// Density is the content-word percentage of all words (0-100).
	Density float64
	// Diversity is the corrected type-token ratio,
	// distinct / sqrt(2*words).
	Diversity float64
	// TopWords is the ranked frequency table, stopwords excluded,
	// descending by count with first-occurrence tie-break.
	TopWords []WordCount
}

// Analyze computes the lexical summary over annotated paragraphs.
func Analyze(paragraphs []segment.Paragraph, opts Options) Summary {
	var (
		words    int
		content  int
		distinct = make(map[string]struct{})
	)

	type entry struct {
		word  string
		count int
	}
	var order []*entry
	index := make(map[string]*entry)

	for _, p := range paragraphs {
		for _, s := range p.Sentences {
			for _, tok := range s.Tokens {
				words++
				if tok.Content {
					content++
				}
				distinct[tok.Text] = struct{}{}

				if tok.Stopword {
					continue
				}
				key := tok.Text
				if opts.Stem {
					key = stem(key)
				}
				if e, ok := index[key]; ok {
					e.count++
					continue
				}
				e := &entry{word: tok.Text, count: 1}
				index[key] = e
				order = append(order, e)
			}
		}
	}

	if words == 0 {
		return Summary{TopWords: []WordCount{}}
	}

	// Stable sort keeps the first-occurrence order among equal counts.
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].count > order[j].count
	})

	n := len(order)
	if opts.TopN > 0 && opts.TopN < n {
		n = opts.TopN
	}
	top := make([]WordCount, n)
	for i := 0; i < n; i++ {
		top[i] = WordCount{Word: order[i].word, Count: order[i].count}
	}

	return Summary{
		Density:   float64(content) / float64(words) * 100,
		Diversity: float64(len(distinct)) / math.Sqrt(2*float64(words)),
		TopWords:  top,
	}
}

// stem reduces a word to its English Snowball stem, falling back to the
// surface form when stemming fails.
func stem(word string) string {
	s, err := snowball.Stem(word, "english", true)
	if err != nil || s == "" {
		return word
	}
	return s
}
