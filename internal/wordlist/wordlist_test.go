package wordlist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault_TablesPopulated(t *testing.T) {
	tables, err := Default()
	if err != nil {
		t.Fatal(err)
	}

	for name, set := range map[string]Set{
		"stopwords":          tables.Stopwords,
		"familiar":           tables.Familiar,
		"weakwords":          tables.WeakWords,
		"participles":        tables.Participles,
		"abbreviations":      tables.Abbreviations,
		"complex-exceptions": tables.ComplexExceptions,
		"ly-exceptions":      tables.LyExceptions,
	} {
		if set.Len() == 0 {
			t.Errorf("%s: empty list", name)
		}
	}
}

func TestDefault_KnownEntries(t *testing.T) {
	tables, err := Default()
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		set  Set
		word string
		want bool
	}{
		{tables.Stopwords, "the", true},
		{tables.Stopwords, "The", true}, // case-folded
		{tables.Stopwords, "elephant", false},
		{tables.Familiar, "cat", true},
		{tables.Familiar, "ball", true},
		{tables.WeakWords, "very", true},
		{tables.WeakWords, "really", true},
		{tables.Participles, "thrown", true},
		{tables.Abbreviations, "dr", true},
		{tables.Abbreviations, "etc", true},
		{tables.LyExceptions, "family", true},
		{tables.LyExceptions, "quickly", false},
	}
	for _, tt := range tests {
		if got := tt.set.Has(tt.word); got != tt.want {
			t.Errorf("Has(%q): got %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestLoad_Override(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stop.txt")
	content := "# custom stopwords\nfoo\nBAR\n\n  baz  \n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	tables, err := Load(map[string]string{ListStopwords: path})
	if err != nil {
		t.Fatal(err)
	}
	if tables.Stopwords.Len() != 3 {
		t.Errorf("got %d stopwords, want 3", tables.Stopwords.Len())
	}
	for _, w := range []string{"foo", "bar", "baz", "BAR"} {
		if !tables.Stopwords.Has(w) {
			t.Errorf("override stopwords missing %q", w)
		}
	}
	// Other lists still come from the embedded data.
	if !tables.WeakWords.Has("very") {
		t.Error("weakwords should stay embedded")
	}
}

func TestLoad_UnknownListName(t *testing.T) {
	_, err := Load(map[string]string{"mystery": "x.txt"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "mystery") {
		t.Errorf("error should name the list: %v", err)
	}
	if !strings.Contains(err.Error(), ListStopwords) {
		t.Errorf("error should list available names: %v", err)
	}
}

func TestLoad_MissingOverrideFile(t *testing.T) {
	_, err := Load(map[string]string{
		ListFamiliar: filepath.Join(t.TempDir(), "absent.txt"),
	})
	if err == nil {
		t.Fatal("expected error for missing override file")
	}
}

func TestParseList(t *testing.T) {
	set, err := parseList(strings.NewReader("one\n# skip\n\nTwo\n"))
	if err != nil {
		t.Fatal(err)
	}
	if set.Len() != 2 || !set.Has("one") || !set.Has("two") {
		t.Errorf("got %v", set)
	}
}
