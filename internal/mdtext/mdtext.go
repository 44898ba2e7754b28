// Package mdtext extracts plain prose from Markdown and provides the basic
// text counts. It is the extraction collaborator in front of the analysis
// engine: the engine itself only ever sees the plain UTF-8 text produced
// here.
package mdtext

import (
	"strings"
	"unicode"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/jeduden/prosemeter/internal/segment"
	"github.com/jeduden/prosemeter/internal/wordlist"
)

// ExtractPlainText returns the plain text beneath n, with inline markup
// (emphasis, links, code spans, images) reduced to its visible text.
func ExtractPlainText(n ast.Node, source []byte) string {
	var b strings.Builder
	extract(n, source, &b)
	return b.String()
}

func extract(n ast.Node, source []byte, b *strings.Builder) {
	switch t := n.(type) {
	case *ast.Text:
		b.Write(t.Segment.Value(source))
		if t.SoftLineBreak() || t.HardLineBreak() {
			b.WriteByte(' ')
		}
		return
	case *ast.String:
		b.Write(t.Value)
		return
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		extract(c, source, b)
	}
}

// ExtractFromSource parses source as Markdown and returns its prose with
// block boundaries preserved as blank lines, so paragraph segmentation
// downstream still sees them. Code blocks and raw HTML are skipped.
func ExtractFromSource(source []byte) string {
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))
	var parts []string
	collectBlocks(doc, source, &parts)
	return strings.Join(parts, "\n\n")
}

func collectBlocks(n ast.Node, source []byte, parts *[]string) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch c.(type) {
		case *ast.List, *ast.ListItem, *ast.Blockquote:
			collectBlocks(c, source, parts)
		case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.HTMLBlock,
			*ast.ThematicBreak:
			// Not prose.
		default:
			s := strings.TrimSpace(ExtractPlainText(c, source))
			if s != "" {
				*parts = append(*parts, s)
			}
		}
	}
}

// CountWords counts whitespace-separated words in plain text.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// CountSentences counts sentence-terminal runs in plain text. A terminal
// mark only counts when followed by whitespace or the end of the text, so
// interior dots ("e.g", "3.14") do not split. Content without terminal
// punctuation counts as one sentence.
func CountSentences(text string) int {
	count := 0
	sawContent := false
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '.' && r != '!' && r != '?' {
			if !unicode.IsSpace(r) {
				sawContent = true
			}
			continue
		}
		// Consume the terminal cluster.
		j := i
		for j < len(runes) && (runes[j] == '.' || runes[j] == '!' || runes[j] == '?') {
			j++
		}
		if (j == len(runes) || unicode.IsSpace(runes[j])) && sawContent {
			count++
			sawContent = false
		}
		i = j - 1
	}
	if sawContent {
		count++
	}
	return count
}

// SplitSentences splits plain text into trimmed sentences using the same
// segmentation rules as the analysis engine, abbreviation and decimal
// exceptions included.
func SplitSentences(text string) []string {
	var abbrevs wordlist.Set
	if tables, err := wordlist.Default(); err == nil {
		abbrevs = tables.Abbreviations
	}

	var out []string
	for _, p := range segment.Split(text, abbrevs) {
		for _, s := range p.Sentences {
			out = append(out, s.Raw)
		}
	}
	return out
}

// CountCharacters counts letters and digits only.
func CountCharacters(text string) int {
	count := 0
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			count++
		}
	}
	return count
}
