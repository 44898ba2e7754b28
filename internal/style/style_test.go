package style

import (
	"strings"
	"testing"

	"github.com/jeduden/prosemeter/internal/segment"
	"github.com/jeduden/prosemeter/internal/wordlist"
)

var testTables = &wordlist.Tables{
	Participles: wordlist.Set{
		"thrown": {}, "broken": {}, "written": {}, "done": {},
	},
}

// sentence builds a Sentence from raw text with tokens derived the same way
// the segmenter does.
func sentence(raw string) segment.Sentence {
	var tokens []segment.Token
	for _, f := range strings.Fields(raw) {
		if w := segment.Normalize(f); w != "" {
			tokens = append(tokens, segment.Token{Text: w})
		}
	}
	return segment.Sentence{Raw: raw, Tokens: tokens}
}

func doc(raws ...string) []segment.Paragraph {
	var sents []segment.Sentence
	for _, r := range raws {
		sents = append(sents, sentence(r))
	}
	return []segment.Paragraph{{Sentences: sents}}
}

func TestAnalyze_Passive(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"The ball was thrown by John.", 1},
		{"John threw the ball.", 0},
		{"The window was quickly broken.", 1}, // adverb inside the window
		{"The cake was baked yesterday.", 1},  // -ed participle
		{"The results are written down.", 1},
		{"She is happy.", 0},
	}
	for _, tt := range tests {
		got := Analyze(doc(tt.raw), testTables)
		if got.Passive != tt.want {
			t.Errorf("%q: passive got %d, want %d", tt.raw, got.Passive, tt.want)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		raw  string
		want Structure
	}{
		{"John threw the ball.", Simple},
		{"I ran, and she jumped.", Compound},
		{"I ran; she walked.", Compound},
		{"We stayed because it rained.", Complex},
		{"Because it rained, we stayed.", Complex},
		{"The book that I read was long.", Complex},
		{"I ran, and she jumped because it was fun.", CompoundComplex},
		{"She sang and he danced.", Compound}, // pronoun subject after "and"
		{"The cat and the dog slept.", Simple},
	}
	for _, tt := range tests {
		if got := Classify(sentence(tt.raw)); got != tt.want {
			t.Errorf("%q: got %s, want %s", tt.raw, got, tt.want)
		}
	}
}

func TestAnalyze_StructurePartition(t *testing.T) {
	paras := doc(
		"John threw the ball.",
		"I ran, and she jumped.",
		"We stayed because it rained.",
		"I ran, and she jumped because it was fun.",
	)
	got := Analyze(paras, testTables)
	if got.Simple != 1 || got.Compound != 1 || got.Complex != 1 || got.CompoundComplex != 1 {
		t.Errorf("got %+v, want one of each", got)
	}
	total := got.Simple + got.Compound + got.Complex + got.CompoundComplex
	if total != 4 {
		t.Errorf("partition total %d, want 4", total)
	}
}

func TestAnalyze_WeakWords(t *testing.T) {
	tok := func(text string, weak, adverb bool) segment.Token {
		return segment.Token{Text: text, Weak: weak, Adverb: adverb}
	}
	paras := []segment.Paragraph{{
		Sentences: []segment.Sentence{{
			Raw: "This is very really just fine.",
			Tokens: []segment.Token{
				tok("this", false, false),
				tok("is", false, false),
				tok("very", true, false),
				tok("really", true, false),
				tok("just", true, false),
				tok("fine", false, false),
			},
		}},
	}}
	got := Analyze(paras, testTables)
	if got.WeakWords != 3 {
		t.Errorf("weak words: got %d, want 3", got.WeakWords)
	}
}

func TestStructureString(t *testing.T) {
	tests := []struct {
		s    Structure
		want string
	}{
		{Simple, "simple"},
		{Compound, "compound"},
		{Complex, "complex"},
		{CompoundComplex, "compound-complex"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}
