// Package segment splits raw text into paragraphs, sentences, and word
// tokens. It is the foundation every analyzer builds on: paragraphs break on
// blank lines, sentences break on terminal punctuation with abbreviation,
// decimal, and ellipsis exceptions, and tokens are case-folded words with
// edge punctuation stripped. Empty or whitespace-only input yields an empty
// slice, never an error.
package segment

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/jeduden/prosemeter/internal/wordlist"
)

// Token is a single normalized word. The syllable count and flags are zero
// until the aggregator annotates them; segmentation itself only produces
// the text.
type Token struct {
	// Text is the case-folded word with leading and trailing punctuation
	// stripped. Internal hyphens and apostrophes are preserved.
	Text string
	// Syllables is the estimated syllable count.
	Syllables int
	// Content marks a non-stopword token.
	Content bool
	// Stopword marks a function word.
	Stopword bool
	// Weak marks a token on the weak-word list.
	Weak bool
	// Adverb marks an -ly adverb not on the exclusion list.
	Adverb bool
}

// Sentence is an ordered token sequence. Raw keeps the original sentence
// text (punctuation included) for the style heuristics, which need commas,
// semicolons, and word order.
type Sentence struct {
	Raw    string
	Tokens []Token
}

// Paragraph is an ordered sentence sequence.
type Paragraph struct {
	Sentences []Sentence
}

var blankLine = regexp.MustCompile(`\n[ \t]*\n`)

// Split segments text into paragraphs. A trailing period after a token in
// abbrevs does not end a sentence; neither does a period inside a decimal
// number or an ellipsis. Content without terminal punctuation becomes a
// single sentence.
func Split(text string, abbrevs wordlist.Set) []Paragraph {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var paragraphs []Paragraph
	for _, block := range blankLine.Split(text, -1) {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}

		var sentences []Sentence
		for _, raw := range splitSentences(block, abbrevs) {
			tokens := tokenize(raw)
			if len(tokens) == 0 {
				continue
			}
			sentences = append(sentences, Sentence{
				Raw:    strings.TrimSpace(raw),
				Tokens: tokens,
			})
		}
		if len(sentences) > 0 {
			paragraphs = append(paragraphs, Paragraph{Sentences: sentences})
		}
	}
	return paragraphs
}

// splitSentences scans block for terminal punctuation. The delimiters are
// all ASCII, so a byte scan is safe for arbitrary UTF-8 input.
func splitSentences(block string, abbrevs wordlist.Set) []string {
	var out []string
	start := 0
	i := 0
	for i < len(block) {
		c := block[i]
		if c != '.' && c != '!' && c != '?' {
			i++
			continue
		}

		if c == '.' {
			// An ellipsis is not a boundary; consume the dot run and
			// keep scanning for the next terminal mark.
			if i+1 < len(block) && block[i+1] == '.' {
				for i < len(block) && block[i] == '.' {
					i++
				}
				continue
			}
			// A period inside a decimal number is not a boundary.
			if i > 0 && i+1 < len(block) &&
				isDigit(block[i-1]) && isDigit(block[i+1]) {
				i++
				continue
			}
			// A period after a known abbreviation or a single-letter
			// initial (J. K. Rowling, e.g.) is not a boundary.
			if w := precedingWord(block, i); len(w) == 1 || abbrevs.Has(w) {
				i++
				continue
			}
		}

		// Consume the whole terminal cluster (e.g. "?!", "!!").
		i++
		for i < len(block) && (block[i] == '.' || block[i] == '!' || block[i] == '?') {
			i++
		}
		out = append(out, block[start:i])
		start = i
	}

	if strings.TrimSpace(block[start:]) != "" {
		out = append(out, block[start:])
	}
	return out
}

// precedingWord returns the run of letters immediately before byte offset i,
// lowercased. Used for abbreviation lookup.
func precedingWord(s string, i int) string {
	end := i
	start := i
	for start > 0 {
		c := s[start-1]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			start--
			continue
		}
		break
	}
	return strings.ToLower(s[start:end])
}

// tokenize splits a raw sentence on whitespace and normalizes each word.
func tokenize(raw string) []Token {
	fields := strings.Fields(raw)
	tokens := make([]Token, 0, len(fields))
	for _, f := range fields {
		w := Normalize(f)
		if w == "" {
			continue
		}
		tokens = append(tokens, Token{Text: w})
	}
	return tokens
}

// Normalize case-folds a word and strips leading and trailing punctuation,
// keeping internal hyphens and apostrophes. Returns "" when nothing
// word-like remains.
func Normalize(w string) string {
	w = strings.ToLower(w)
	w = strings.ReplaceAll(w, "’", "'")

	runes := []rune(w)
	start := 0
	for start < len(runes) && !isWordRune(runes[start]) {
		start++
	}
	end := len(runes)
	for end > start && !isWordRune(runes[end-1]) {
		end--
	}
	return string(runes[start:end])
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
