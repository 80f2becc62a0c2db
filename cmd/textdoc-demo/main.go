// Command textdoc-demo is a small terminal editor exercising the document
// core: typing, line and rectangle selections, grouped undo/redo, per-line
// dirty markers and bracket matching.
//
//	textdoc-demo [options] [file]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/quindle/textdoc/internal/classify"
	"github.com/quindle/textdoc/internal/document"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath  string
		language    string
		debug       bool
		showVersion bool
	)
	flag.StringVar(&configPath, "config", "", "Path to configuration file")
	flag.StringVar(&language, "lang", "", "Language for character classes (overrides config)")
	flag.BoolVar(&debug, "debug", false, "Enable debug logging")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("textdoc-demo %s\n", version)
		return 0
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if language != "" {
		cfg.Language = language
	}

	log, closeLog, err := newLogger(cfg, debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeLog()

	var content string
	path := flag.Arg(0)
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		content = string(data)
	}

	doc := document.New(
		document.WithContent(content),
		document.WithLogger(log),
		document.WithEolCode(cfg.EolCode()),
	)

	tagger := newTagger(cfg, path)
	doc.SetHighlighter(tagger)
	if err := tagger.Highlight(doc, 0, doc.Length()); err != nil {
		log.Warn().Err(err).Msg("initial highlight failed")
	}
	doc.OnContentChanged(func(document.ContentChangedEvent) {
		if h := doc.Highlighter(); h != nil {
			_ = h.Highlight(doc, 0, doc.Length())
		}
	})

	editor, err := NewEditor(doc, cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if err := editor.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newTagger(cfg Config, path string) *classify.ChromaTagger {
	if cfg.Language != "" {
		return classify.NewChromaTagger(cfg.Language)
	}
	return classify.NewChromaTaggerForFile(path)
}

// newLogger builds the logger. The terminal belongs to the editor, so logs
// go to the configured file, or nowhere.
func newLogger(cfg Config, debug bool) (zerolog.Logger, func(), error) {
	if cfg.LogFile == "" {
		return zerolog.Nop(), func() {}, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("opening log file: %w", err)
	}
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: f, NoColor: true}).
		Level(level).
		With().Timestamp().Logger()
	return log, func() { _ = f.Close() }, nil
}
