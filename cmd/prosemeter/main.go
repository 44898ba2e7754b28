package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	flag "github.com/spf13/pflag"

	"github.com/jeduden/prosemeter/internal/analyze"
	"github.com/jeduden/prosemeter/internal/config"
	"github.com/jeduden/prosemeter/internal/delta"
	"github.com/jeduden/prosemeter/internal/log"
	"github.com/jeduden/prosemeter/internal/metrics"
	"github.com/jeduden/prosemeter/internal/output"
	"github.com/jeduden/prosemeter/internal/textio"
	"github.com/jeduden/prosemeter/internal/wordlist"
)

func main() {
	os.Exit(run())
}

const usageText = `Usage: prosemeter <command> [flags] [files...]

Commands:
  analyze   Compute readability, lexical, and style metrics for documents
  compare   Compare two document versions metric by metric
  metrics   List available metrics
  init      Generate a default .prosemeter.yml config file
  version   Print version and exit

Global flags:
  -h, --help      Show this help

Run 'prosemeter <command> --help' for more information on a command.
`

func run() int {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usageText)
		return 0
	}

	first := os.Args[1]

	switch first {
	case "--help", "-h":
		fmt.Fprint(os.Stderr, usageText)
		return 0
	}

	switch first {
	case "analyze":
		return runAnalyze(os.Args[2:])
	case "compare":
		return runCompare(os.Args[2:])
	case "metrics":
		return runMetrics(os.Args[2:])
	case "init":
		return runInit(os.Args[2:])
	case "version":
		printVersion()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "prosemeter: unknown command %q\n\n%s", first, usageText)
		return 2
	}
}

func printVersion() {
	version := "(devel)"
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		version = info.Main.Version
	}
	fmt.Printf("prosemeter %s\n", version)
}

// analysisFlags are the flags shared by analyze and compare.
type analysisFlags struct {
	configPath string
	format     string
	metricList string
	topWords   int
	stem       bool
	noColor    bool
	verbose    bool
}

func (af *analysisFlags) register(fs *flag.FlagSet) {
	fs.StringVarP(&af.configPath, "config", "c", "", "Override config file path")
	fs.StringVarP(&af.format, "format", "f", "text", "Output format: text, json")
	fs.StringVarP(&af.metricList, "metrics", "m", "", "Comma-separated metric names or IDs")
	fs.IntVar(&af.topWords, "top-words", 0, "Word-frequency table size")
	fs.BoolVar(&af.stem, "stem", false, "Group inflected forms in the frequency table")
	fs.BoolVar(&af.noColor, "no-color", false, "Disable ANSI colors")
	fs.BoolVarP(&af.verbose, "verbose", "v", false, "Log progress to stderr")
}

// session is everything the analyze and compare commands need once flags
// and config are resolved.
type session struct {
	analyzer  *analyze.Analyzer
	defs      []metrics.Definition
	formatter output.Formatter
	cfg       *config.Config
	logger    *log.Logger
}

// newSession loads config, wordlists, and metric selection from flags.
func newSession(fs *flag.FlagSet, af *analysisFlags) (*session, error) {
	logger := &log.Logger{Enabled: af.verbose, W: os.Stderr}

	cfg := config.Default()
	path := af.configPath
	if path == "" {
		discovered, err := config.Discover(".")
		if err != nil {
			return nil, err
		}
		path = discovered
	}
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
		logger.Printf("config: %s", path)
	}

	tables, err := wordlist.Load(cfg.Wordlists)
	if err != nil {
		return nil, err
	}

	selection := metrics.SplitList(af.metricList)
	if len(selection) == 0 {
		selection = cfg.Metrics
	}
	defs, err := metrics.Resolve(selection)
	if err != nil {
		return nil, err
	}

	topWords := cfg.TopWords
	if fs.Changed("top-words") {
		topWords = af.topWords
	}
	stem := cfg.Stem
	if fs.Changed("stem") {
		stem = af.stem
	}

	var formatter output.Formatter
	switch af.format {
	case "text":
		formatter = &output.TextFormatter{Color: !af.noColor && isTerminal(os.Stdout)}
	case "json":
		formatter = &output.JSONFormatter{}
	default:
		return nil, fmt.Errorf("unknown format %q (supported: text, json)", af.format)
	}

	return &session{
		analyzer:  analyze.New(tables, analyze.Options{TopWords: topWords, Stem: stem}),
		defs:      defs,
		formatter: formatter,
		cfg:       cfg,
		logger:    logger,
	}, nil
}

// analyzeFile reads one document and analyzes it.
func (s *session) analyzeFile(path string) (output.Report, error) {
	text, err := textio.ReadDocument(path)
	if err != nil {
		return output.Report{}, err
	}
	s.logger.Printf("file: %s (%d bytes)", path, len(text))
	return output.Report{Path: path, Result: s.analyzer.Analyze(text)}, nil
}

// runAnalyze implements the "analyze" subcommand.
func runAnalyze(args []string) int {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	var af analysisFlags
	af.register(fs)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: prosemeter analyze [flags] [files...]\n\n"+
			"Compute readability, lexical, and style metrics.\n\n"+
			"Files can be paths, directories (walked recursively for text and\n"+
			"Markdown documents), or glob patterns. With no file arguments,\n"+
			"reads from stdin if piped.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	s, err := newSession(fs, &af)
	if err != nil {
		fmt.Fprintf(os.Stderr, "prosemeter: %v\n", err)
		return 1
	}

	files := fs.Args()
	var reports []output.Report

	if len(files) == 0 {
		if !isStdinPipe() {
			fs.Usage()
			return 2
		}
		text, err := readAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "prosemeter: reading stdin: %v\n", err)
			return 1
		}
		reports = append(reports, output.Report{
			Path:   "(stdin)",
			Result: s.analyzer.Analyze(text),
		})
	} else {
		paths, err := textio.Resolve(files, s.cfg.Ignore)
		if err != nil {
			fmt.Fprintf(os.Stderr, "prosemeter: %v\n", err)
			return 1
		}
		for _, path := range paths {
			report, err := s.analyzeFile(path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "prosemeter: %v\n", err)
				return 1
			}
			reports = append(reports, report)
		}
	}

	if err := s.formatter.Format(os.Stdout, reports, s.defs); err != nil {
		fmt.Fprintf(os.Stderr, "prosemeter: %v\n", err)
		return 1
	}
	return 0
}

// runCompare implements the "compare" subcommand.
func runCompare(args []string) int {
	fs := flag.NewFlagSet("compare", flag.ContinueOnError)
	var af analysisFlags
	af.register(fs)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: prosemeter compare [flags] <original> <revised>\n\n"+
			"Analyze two document versions and report metric changes.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	files := fs.Args()
	if len(files) != 2 {
		fs.Usage()
		return 2
	}

	s, err := newSession(fs, &af)
	if err != nil {
		fmt.Fprintf(os.Stderr, "prosemeter: %v\n", err)
		return 1
	}

	before, err := s.analyzeFile(files[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "prosemeter: %v\n", err)
		return 1
	}
	after, err := s.analyzeFile(files[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "prosemeter: %v\n", err)
		return 1
	}

	changes := delta.Compare(&before.Result, &after.Result, s.defs)
	if err := s.formatter.FormatComparison(os.Stdout, before, after, changes); err != nil {
		fmt.Fprintf(os.Stderr, "prosemeter: %v\n", err)
		return 1
	}
	return 0
}

// runMetrics implements the "metrics" subcommand: list the registry.
func runMetrics(args []string) int {
	fs := flag.NewFlagSet("metrics", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: prosemeter metrics\n\n"+
			"List every available metric with its ID and description.\n")
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	width := 0
	for _, def := range metrics.All() {
		if len(def.Name) > width {
			width = len(def.Name)
		}
	}
	for _, def := range metrics.All() {
		marker := " "
		if def.Default {
			marker = "*"
		}
		fmt.Printf("%s %s  %-*s  %s\n", marker, def.ID, width, def.Name, def.Description)
	}
	fmt.Println("\n* included by default")
	return 0
}

// runInit implements the "init" subcommand: write a default config file.
func runInit(args []string) int {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	force := fs.BoolP("force", "f", false, "Overwrite an existing config file")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: prosemeter init [--force]\n\n"+
			"Generate a default .prosemeter.yml in the current directory.\n")
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	const name = ".prosemeter.yml"
	if _, err := os.Stat(name); err == nil && !*force {
		fmt.Fprintf(os.Stderr, "prosemeter: %s already exists (use --force to overwrite)\n", name)
		return 1
	}

	data, err := config.DumpDefault()
	if err != nil {
		fmt.Fprintf(os.Stderr, "prosemeter: %v\n", err)
		return 1
	}
	if err := os.WriteFile(name, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "prosemeter: %v\n", err)
		return 1
	}
	fmt.Printf("wrote %s\n", name)
	return 0
}

// isStdinPipe reports whether stdin is a pipe or redirect.
func isStdinPipe() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice == 0
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// readAll reads f to EOF.
func readAll(f *os.File) (string, error) {
	data, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
