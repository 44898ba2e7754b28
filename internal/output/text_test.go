package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jeduden/prosemeter/internal/analyze"
	"github.com/jeduden/prosemeter/internal/delta"
	"github.com/jeduden/prosemeter/internal/lexical"
	"github.com/jeduden/prosemeter/internal/metrics"
)

func testDefs(t *testing.T, names ...string) []metrics.Definition {
	t.Helper()
	defs, err := metrics.Resolve(names)
	if err != nil {
		t.Fatal(err)
	}
	return defs
}

func TestTextFormatter_Format(t *testing.T) {
	reports := []Report{{
		Path: "draft.md",
		Result: analyze.Result{
			WordCount:     10,
			SentenceCount: 2,
			WordFrequency: []lexical.WordCount{
				{Word: "cat", Count: 3},
				{Word: "mat", Count: 1},
			},
		},
	}}

	var buf bytes.Buffer
	f := &TextFormatter{}
	if err := f.Format(&buf, reports, testDefs(t, "words", "sentences")); err != nil {
		t.Fatal(err)
	}

	got := buf.String()
	for _, want := range []string{
		"draft.md\n",
		"words",
		"sentences",
		"top words:",
		"cat 3",
		"mat 1",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "\033[") {
		t.Errorf("uncolored output contains escape codes:\n%s", got)
	}
}

func TestTextFormatter_FormatColor(t *testing.T) {
	var buf bytes.Buffer
	f := &TextFormatter{Color: true}
	err := f.Format(&buf, []Report{{Path: "a.txt"}}, testDefs(t, "words"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\033[36ma.txt\033[0m") {
		t.Errorf("expected cyan path:\n%q", buf.String())
	}
}

func TestTextFormatter_MultipleReportsSeparated(t *testing.T) {
	var buf bytes.Buffer
	f := &TextFormatter{}
	reports := []Report{{Path: "one.txt"}, {Path: "two.txt"}}
	if err := f.Format(&buf, reports, testDefs(t, "words")); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\n\ntwo.txt") {
		t.Errorf("reports not blank-line separated:\n%q", buf.String())
	}
}

func TestTextFormatter_NoFrequencyTable(t *testing.T) {
	var buf bytes.Buffer
	f := &TextFormatter{}
	if err := f.Format(&buf, []Report{{Path: "x.txt"}}, testDefs(t, "words")); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "top words") {
		t.Errorf("empty frequency should omit the table:\n%s", buf.String())
	}
}

func TestTextFormatter_FormatComparison(t *testing.T) {
	wordsDef := testDefs(t, "words")[0]
	passiveDef := testDefs(t, "passive-sentences")[0]
	changes := []delta.Change{
		{Metric: wordsDef, Before: 100, After: 80, Absolute: -20, Percent: -20, PercentOK: true},
		{Metric: passiveDef, Before: 0, After: 3, Absolute: 3},
	}

	var buf bytes.Buffer
	f := &TextFormatter{}
	err := f.FormatComparison(&buf, Report{Path: "v1.md"}, Report{Path: "v2.md"}, changes)
	if err != nil {
		t.Fatal(err)
	}

	got := buf.String()
	for _, want := range []string{
		"v1.md -> v2.md",
		"100 -> 80 (-20.0%)",
		"0 -> 3 (n/a)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}
