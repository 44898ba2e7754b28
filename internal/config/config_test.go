package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	writeFile(t, path, strings.Join([]string{
		"top-words: 10",
		"stem: true",
		"metrics:",
		"  - words",
		"  - flesch-reading-ease",
		"ignore:",
		"  - '**/drafts/**'",
	}, "\n"))

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.TopWords != 10 {
		t.Errorf("top-words: got %d, want 10", cfg.TopWords)
	}
	if !cfg.Stem {
		t.Error("stem: got false, want true")
	}
	if len(cfg.Metrics) != 2 || cfg.Metrics[0] != "words" {
		t.Errorf("metrics: got %v", cfg.Metrics)
	}
	if len(cfg.Ignore) != 1 || cfg.Ignore[0] != "**/drafts/**" {
		t.Errorf("ignore: got %v", cfg.Ignore)
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "none.yml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	writeFile(t, path, "top-words: [broken")
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"defaults", Config{}, ""},
		{"negative top-words", Config{TopWords: -1}, "top-words"},
		{"unknown metric", Config{Metrics: []string{"nope"}}, "unknown metric"},
		{"unknown wordlist", Config{Wordlists: map[string]string{"x": "y"}}, "unknown wordlist"},
	}
	for _, tt := range tests {
		err := tt.cfg.Validate()
		if tt.wantErr == "" {
			if err != nil {
				t.Errorf("%s: unexpected error %v", tt.name, err)
			}
			continue
		}
		if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
			t.Errorf("%s: got %v, want error containing %q", tt.name, err, tt.wantErr)
		}
	}
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "docs", "chapters")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	cfgPath := filepath.Join(root, configFileName)
	writeFile(t, cfgPath, "top-words: 5\n")

	got, err := Discover(sub)
	if err != nil {
		t.Fatal(err)
	}
	if got != cfgPath {
		t.Errorf("got %q, want %q", got, cfgPath)
	}
}

func TestDiscover_StopsAtGitRoot(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, configFileName), "top-words: 5\n")

	repo := filepath.Join(root, "repo")
	sub := filepath.Join(repo, "docs")
	if err := os.MkdirAll(filepath.Join(repo, ".git"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := Discover(sub)
	if err != nil {
		t.Fatal(err)
	}
	if got != "" {
		t.Errorf("config above the repository root should not be found, got %q", got)
	}
}

func TestDiscover_NoConfig(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, ".git"), 0o755); err != nil {
		t.Fatal(err)
	}
	got, err := Discover(dir)
	if err != nil {
		t.Fatal(err)
	}
	if got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestDumpDefault_RoundTrips(t *testing.T) {
	data, err := DumpDefault()
	if err != nil {
		t.Fatal(err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("default config does not parse: %v", err)
	}
	if cfg.TopWords != 20 {
		t.Errorf("top-words: got %d, want 20", cfg.TopWords)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
}
